// GitHub contents API [Store] implementation
//
// Reads and commits the CSV dataset held in a private repository. The file's
// blob SHA is the revision token for optimistic concurrency.
package store

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/avolette/jobtrack/internal/models"
	"github.com/avolette/jobtrack/internal/shared"
)

const defaultAPIBaseURL = "https://api.github.com"

// requestsPerSecond keeps bursts of UI mutations inside the contents API budget.
const requestsPerSecond = 2

// GitHubStore implements [Store] on top of the GitHub repository contents API.
type GitHubStore struct {
	baseURL    string
	owner      string
	repo       string
	branch     string
	path       string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Store = (*GitHubStore)(nil)

// NewGitHubStore creates a store client for the configured data repository.
//
// An empty baseURL selects the public GitHub API. A nil client gets replaced
// by an oauth2 static-token client built from the configured token.
func NewGitHubStore(baseURL string, cfg shared.GitHubConfig, client *http.Client) *GitHubStore {
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	if client == nil {
		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		client = oauth2.NewClient(context.Background(), source)
	}

	return &GitHubStore{
		baseURL:    baseURL,
		owner:      cfg.Owner,
		repo:       cfg.DataRepo,
		branch:     cfg.Branch,
		path:       cfg.FilePath,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

// contentURL is the contents API endpoint for the configured file.
func (g *GitHubStore) contentURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", g.baseURL, g.owner, g.repo, g.path)
}

// Fetch downloads and decodes the current remote dataset.
func (g *GitHubStore) Fetch(ctx context.Context) (*Snapshot, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrTransient, err)
	}

	apiURL := g.contentURL()
	if g.branch != "" {
		apiURL += "?ref=" + url.QueryEscape(g.branch)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, g.statusError(resp)
	}

	var content struct {
		Content string `json:"content"`
		SHA     string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// The API returns base64 broken into newline-separated chunks.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to decode file content: %w", err)
	}

	rows, err := DecodeCSV(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	return &Snapshot{Applications: rows, Revision: Revision(content.SHA)}, nil
}

// Commit serializes rows and uploads them against the prior revision token.
func (g *GitHubStore) Commit(ctx context.Context, rows []models.Application, rev Revision, message string) (Revision, error) {
	data, err := EncodeCSV(rows)
	if err != nil {
		return "", fmt.Errorf("failed to encode dataset: %w", err)
	}

	payload := struct {
		Message string `json:"message"`
		Content string `json:"content"`
		Branch  string `json:"branch,omitempty"`
		SHA     string `json:"sha,omitempty"`
	}{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(data),
		Branch:  g.branch,
		SHA:     string(rev),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal commit payload: %w", err)
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrTransient, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, g.contentURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", g.statusError(resp)
	}

	var result struct {
		Content struct {
			SHA string `json:"sha"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode commit response: %w", err)
	}

	return Revision(result.Content.SHA), nil
}

// statusError maps a non-success API response onto the store error taxonomy.
func (g *GitHubStore) statusError(resp *http.Response) error {
	detail := fmt.Sprintf("status %d", resp.StatusCode)

	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
		detail = fmt.Sprintf("%s: %s", detail, errResp.Message)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s/%s/%s (%s)", shared.ErrNotFound, g.owner, g.repo, g.path, detail)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: check the configured access token (%s)", shared.ErrAuth, detail)
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
		// The contents API reports a stale SHA as 409, or 422 in edge cases.
		return fmt.Errorf("%w: %s", shared.ErrConflict, detail)
	default:
		return fmt.Errorf("%w: GitHub API error (%s)", shared.ErrTransient, detail)
	}
}
