package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Log      Log      `mapstructure:",squash"`
	Airtable Airtable `mapstructure:",squash"`
	GitHub   GitHub   `mapstructure:",squash"`
	Webhook  Webhook  `mapstructure:",squash"`
}

type App struct {
	Name     string `mapstructure:"app_name"`
	Version  string `mapstructure:"app_version"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Log struct {
	File       string `mapstructure:"log_file"`
	MaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	MaxBackups int    `mapstructure:"log_max_backups"`
	MaxAgeDays int    `mapstructure:"log_max_age_days"`
}

type Airtable struct {
	URL            string        `mapstructure:"airtable_url"`
	APIKey         string        `mapstructure:"airtable_api_key"`
	BaseID         string        `mapstructure:"airtable_base_id"`
	ReportsTable   string        `mapstructure:"airtable_reports_table"`
	ReportURLField string        `mapstructure:"airtable_report_url_field"`
	TimeoutSeconds int           `mapstructure:"airtable_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

type GitHub struct {
	APIURL         string        `mapstructure:"github_api_url"`
	Token          string        `mapstructure:"github_token"`
	Repo           string        `mapstructure:"github_repo"`
	Branch         string        `mapstructure:"github_branch"`
	ReportsPath    string        `mapstructure:"github_reports_path"`
	PublishBaseURL string        `mapstructure:"publish_base_url"`
	TimeoutSeconds int           `mapstructure:"github_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	Owner          string        `mapstructure:"-"`
	RepoName       string        `mapstructure:"-"`
}

type Webhook struct {
	Token     string `mapstructure:"webhook_token"`
	TokenHash string `mapstructure:"webhook_token_hash"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "sf-domain-reports")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 5000)

	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 50)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)

	v.SetDefault("AIRTABLE_URL", "https://api.airtable.com/v0")
	v.SetDefault("AIRTABLE_API_KEY", "")
	v.SetDefault("AIRTABLE_BASE_ID", "")
	v.SetDefault("AIRTABLE_REPORTS_TABLE", "My SF Domain Reports")
	v.SetDefault("AIRTABLE_REPORT_URL_FIELD", "Monthly Performance Report URL")
	v.SetDefault("AIRTABLE_TIMEOUT_SECONDS", 30)

	v.SetDefault("GITHUB_API_URL", "")
	v.SetDefault("GITHUB_TOKEN", "")
	v.SetDefault("GITHUB_REPO", "")
	v.SetDefault("GITHUB_BRANCH", "main")
	v.SetDefault("GITHUB_REPORTS_PATH", "reports")
	v.SetDefault("PUBLISH_BASE_URL", "") // vazio = https://<owner>.github.io/<repo>
	v.SetDefault("GITHUB_TIMEOUT_SECONDS", 30)

	v.SetDefault("WEBHOOK_TOKEN", "")
	v.SetDefault("WEBHOOK_TOKEN_HASH", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	v := viper.GetViper()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load(v)
}

// Load decodifica a configuração de uma instância do viper e deriva os campos calculados
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Airtable.URL = strings.TrimRight(config.Airtable.URL, "/")
	config.Airtable.Timeout = time.Duration(config.Airtable.TimeoutSeconds) * time.Second
	config.GitHub.Timeout = time.Duration(config.GitHub.TimeoutSeconds) * time.Second
	config.GitHub.ReportsPath = strings.Trim(config.GitHub.ReportsPath, "/")

	if owner, repo, ok := strings.Cut(config.GitHub.Repo, "/"); ok {
		config.GitHub.Owner = owner
		config.GitHub.RepoName = repo
	}

	if config.GitHub.PublishBaseURL == "" && config.GitHub.Owner != "" {
		config.GitHub.PublishBaseURL = fmt.Sprintf("https://%s.github.io/%s", config.GitHub.Owner, config.GitHub.RepoName)
	}
	config.GitHub.PublishBaseURL = strings.TrimRight(config.GitHub.PublishBaseURL, "/")

	return config, nil
}

// Validate retorna todos os problemas de configuração encontrados
func (c *Config) Validate() []string {
	var problems []string

	if c.Airtable.APIKey == "" {
		problems = append(problems, "AIRTABLE_API_KEY is required")
	}
	if c.Airtable.BaseID == "" {
		problems = append(problems, "AIRTABLE_BASE_ID is required")
	}
	if c.GitHub.Token == "" {
		problems = append(problems, "GITHUB_TOKEN is required")
	}
	if c.GitHub.Repo == "" {
		problems = append(problems, "GITHUB_REPO is required")
	} else if c.GitHub.Owner == "" || c.GitHub.RepoName == "" || strings.Contains(c.GitHub.RepoName, "/") {
		problems = append(problems, "GITHUB_REPO must be in format 'username/repo'")
	}
	if c.Airtable.TimeoutSeconds <= 0 {
		problems = append(problems, "AIRTABLE_TIMEOUT_SECONDS must be positive")
	}
	if c.GitHub.TimeoutSeconds <= 0 {
		problems = append(problems, "GITHUB_TIMEOUT_SECONDS must be positive")
	}

	return problems
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
