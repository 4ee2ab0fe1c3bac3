package githubclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v61/github"
	"github.com/pkg/errors"
	"github.com/vfg2006/sf-domain-reports/internal/config"
	"golang.org/x/oauth2"
)

const userAgent = "sf-domain-reports/1.0"

//go:generate mockgen -source=client.go -destination=../mocks/githubclient.go -package=mocks

// Client expõe as operações da API de conteúdos do GitHub usadas na publicação
type Client interface {
	// GetFileSHA devolve o SHA do blob existente ou "" quando o arquivo não existe
	GetFileSHA(ctx context.Context, path string) (string, error)
	// PutFile cria (sha vazio) ou sobrescreve o arquivo e devolve o SHA do commit
	PutFile(ctx context.Context, path string, content []byte, message, sha string) (string, error)
}

type GitHubClient struct {
	client *github.Client
	owner  string
	repo   string
	branch string
}

// NewClient cria o cliente autenticado por token para o repositório configurado
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	baseHTTP := &http.Client{Timeout: cfg.GitHub.Timeout}

	httpClient := baseHTTP
	if cfg.GitHub.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHub.Token})
		httpClient = oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, baseHTTP), ts)
		httpClient.Timeout = cfg.GitHub.Timeout
	}

	client := github.NewClient(httpClient)
	client.UserAgent = userAgent

	if cfg.GitHub.APIURL != "" {
		baseURL, err := url.Parse(strings.TrimRight(cfg.GitHub.APIURL, "/") + "/")
		if err != nil {
			return nil, errors.Wrap(err, "github: GITHUB_API_URL inválida")
		}
		client.BaseURL = baseURL
	}

	return &GitHubClient{
		client: client,
		owner:  cfg.GitHub.Owner,
		repo:   cfg.GitHub.RepoName,
		branch: cfg.GitHub.Branch,
	}, nil
}

func (c *GitHubClient) GetFileSHA(ctx context.Context, path string) (string, error) {
	file, _, resp, err := c.client.Repositories.GetContents(ctx, c.owner, c.repo, path, &github.RepositoryContentGetOptions{
		Ref: c.branch,
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", errors.Wrapf(err, "github: erro ao consultar %s", path)
	}

	if file == nil {
		return "", errors.Errorf("github: %s é um diretório", path)
	}

	return file.GetSHA(), nil
}

func (c *GitHubClient) PutFile(ctx context.Context, path string, content []byte, message, sha string) (string, error) {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		Branch:  github.String(c.branch),
	}

	var (
		res *github.RepositoryContentResponse
		err error
	)
	if sha == "" {
		res, _, err = c.client.Repositories.CreateFile(ctx, c.owner, c.repo, path, opts)
	} else {
		opts.SHA = github.String(sha)
		res, _, err = c.client.Repositories.UpdateFile(ctx, c.owner, c.repo, path, opts)
	}
	if err != nil {
		return "", errors.Wrapf(err, "github: erro ao gravar %s", path)
	}

	return res.Commit.GetSHA(), nil
}
