// Package selfupdate checks GitHub releases for newer builds and can
// replace the running binary in place.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
)

// Checker queries release metadata for one GitHub repository.
type Checker struct {
	owner           string
	repo            string
	client          *http.Client
	apiBaseURL      string
	downloadBaseURL string
	execPath        func() (string, error)
}

// Option customizes a Checker.
type Option func(*Checker)

// WithBaseURLs overrides the GitHub endpoints, for tests.
func WithBaseURLs(api, download string) Option {
	return func(c *Checker) {
		c.apiBaseURL = api
		c.downloadBaseURL = download
	}
}

// WithExecPath overrides how the running binary path is resolved.
func WithExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

// NewChecker creates a Checker for owner/repo.
func NewChecker(owner, repo string, opts ...Option) *Checker {
	c := &Checker{
		owner:           owner,
		repo:            repo,
		client:          &http.Client{Timeout: 30 * time.Second},
		apiBaseURL:      defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput carries the currently running version.
type CheckInput struct {
	Version string
}

// CheckResult reports the latest release and whether it is newer.
type CheckResult struct {
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it against the
// running version using semver ordering.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching latest release", resp.StatusCode)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("latest release has no tag")
	}

	return &CheckResult{
		LatestVersion:   release.TagName,
		UpdateAvailable: isNewer(release.TagName, input.Version),
		ReleaseURL:      release.HTMLURL,
	}, nil
}

// isNewer reports whether the latest tag is strictly newer than the
// current version. Non-semver current versions (dev builds) always
// count as outdated.
func isNewer(latest, current string) bool {
	lv := ensureV(latest)
	cv := ensureV(current)
	if !semver.IsValid(lv) {
		return false
	}
	if !semver.IsValid(cv) {
		return true
	}
	return semver.Compare(lv, cv) > 0
}

func ensureV(v string) string {
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
