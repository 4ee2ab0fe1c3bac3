package main

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sf-domain-reports/infrastructure/integrator/airtable"
	"github.com/vfg2006/sf-domain-reports/infrastructure/integrator/airtable/airtableclient"
	"github.com/vfg2006/sf-domain-reports/infrastructure/integrator/ghpages"
	"github.com/vfg2006/sf-domain-reports/infrastructure/integrator/ghpages/githubclient"
	"github.com/vfg2006/sf-domain-reports/internal/api"
	"github.com/vfg2006/sf-domain-reports/internal/config"
	"github.com/vfg2006/sf-domain-reports/internal/rendering"
	"github.com/vfg2006/sf-domain-reports/internal/usecases/reporting"
	"github.com/vfg2006/sf-domain-reports/pkg/log"
	"github.com/vfg2006/sf-domain-reports/pkg/middleware"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato, nível e arquivo de log com base na configuração
	logCloser, err := log.Configure(cfg.App.LogLevel, log.FileOutput{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	if problems := cfg.Validate(); len(problems) > 0 {
		logrus.WithField("problems", strings.Join(problems, "; ")).Fatal("Configuração inválida")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	verifier := middleware.NewTokenVerifier(cfg.Webhook.Token, cfg.Webhook.TokenHash)
	if !verifier.Enabled() {
		logrus.Warn("WEBHOOK_TOKEN não configurado: o endpoint /webhook está aberto")
	}

	airtableClient := airtableclient.NewClient(cfg)
	airtableIntegrator := airtable.New(cfg, airtableClient)

	githubClient, err := githubclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o cliente do GitHub")
	}
	publisher := ghpages.New(cfg, githubClient)

	renderer, err := rendering.NewRenderer()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o template do relatório")
	}

	reportService := reporting.NewService(airtableIntegrator, airtableIntegrator, renderer, publisher)

	logrus.WithFields(logrus.Fields{
		"airtable_table": cfg.Airtable.ReportsTable,
		"github_repo":    cfg.GitHub.Repo,
		"github_branch":  cfg.GitHub.Branch,
		"publish_url":    cfg.GitHub.PublishBaseURL,
	}).Info("Serviço de relatórios configurado")

	server, err := api.New(cfg, reportService, verifier)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
