package ghpages

import (
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sf-domain-reports/infrastructure/integrator/ghpages/githubclient"
	"github.com/vfg2006/sf-domain-reports/internal/config"
	"github.com/vfg2006/sf-domain-reports/internal/domain"
)

var fileNameReplacer = strings.NewReplacer(" ", "_", "/", "_")

type GitHubPagesPublisher struct {
	cfg    *config.Config
	Client githubclient.Client
}

func New(cfg *config.Config, client githubclient.Client) *GitHubPagesPublisher {
	return &GitHubPagesPublisher{
		cfg:    cfg,
		Client: client,
	}
}

// Publish grava o HTML no repositório do GitHub Pages, sobrescrevendo o arquivo
// quando ele já existe, e devolve a URL pública do relatório.
func (p *GitHubPagesPublisher) Publish(ctx context.Context, fileName, html string) (*domain.PublishedReport, error) {
	safeName := sanitizeFileName(fileName)
	if safeName == "" {
		return nil, errors.Wrap(domain.ErrUpload, "github: nome de arquivo vazio")
	}

	filePath := path.Join(p.cfg.GitHub.ReportsPath, safeName)

	sha, err := p.Client.GetFileSHA(ctx, filePath)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  filePath,
			"error": err.Error(),
		}).Error("github: failed to check existing report")
		return nil, errors.Wrapf(domain.ErrUpload, "%v", err)
	}

	message := "Add report: " + safeName
	if sha != "" {
		message = "Update report: " + safeName
	}

	commitSHA, err := p.Client.PutFile(ctx, filePath, []byte(html), message, sha)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  filePath,
			"error": err.Error(),
		}).Error("github: failed to upload report")
		return nil, errors.Wrapf(domain.ErrUpload, "%v", err)
	}

	reportURL := p.cfg.GitHub.PublishBaseURL + "/" + escapePath(filePath)

	logrus.WithFields(logrus.Fields{
		"path":       filePath,
		"commit":     commitSHA,
		"overwrite":  sha != "",
		"report_url": reportURL,
	}).Info("github: report published")

	return &domain.PublishedReport{
		URL:     reportURL,
		Path:    filePath,
		Content: html,
	}, nil
}

// escapePath escapa cada segmento do caminho para uso na URL pública
func escapePath(filePath string) string {
	segments := strings.Split(filePath, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

func sanitizeFileName(name string) string {
	safe := fileNameReplacer.Replace(strings.TrimSpace(name))
	if safe == "" {
		return ""
	}
	if !strings.HasSuffix(safe, ".html") {
		safe += ".html"
	}
	return safe
}
