package gist

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/gistenv/internal/errors"

	"github.com/go-resty/resty/v2"
)

// DefaultAPIURL is the GitHub REST API root.
const DefaultAPIURL = "https://api.github.com"

const defaultTimeout = 30 * time.Second

// Document is the env file found in a Gist.
type Document struct {
	Filename string
	Content  string
}

// Store fetches and replaces the env document.
type Store interface {
	Fetch(ctx context.Context) (*Document, error)
	Update(ctx context.Context, filename, content string) error
}

// Options configures a Client.
type Options struct {
	GistID  string
	Token   string
	APIURL  string
	Timeout time.Duration

	// Transport replaces the HTTP transport, mainly for tests.
	Transport http.RoundTripper
}

// Client is a Store backed by the GitHub Gists API.
type Client struct {
	id   string
	http *resty.Client
}

var _ Store = (*Client)(nil)

type gistFile struct {
	Filename  string `json:"filename"`
	Content   string `json:"content"`
	Truncated bool   `json:"truncated"`
	RawURL    string `json:"raw_url"`
}

type gistResponse struct {
	ID    string              `json:"id"`
	Files map[string]gistFile `json:"files"`
}

type apiError struct {
	Message string `json:"message"`
}

type fileUpdate struct {
	Content string `json:"content"`
}

type updateRequest struct {
	Files map[string]fileUpdate `json:"files"`
}

// NewClient returns a Client for opts.GistID. It fails with ErrGistIDNotSet
// when no ID is given.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.GistID) == "" {
		return nil, kerrors.ErrGistIDNotSet
	}

	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	r := resty.New().
		SetBaseURL(strings.TrimSuffix(apiURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("User-Agent", "gistenv")
	if opts.Token != "" {
		r.SetHeader("Authorization", "token "+opts.Token)
	}
	if opts.Transport != nil {
		r.SetTransport(opts.Transport)
	}

	return &Client{id: strings.TrimSpace(opts.GistID), http: r}, nil
}

// Fetch downloads the Gist and returns its env file.
func (c *Client) Fetch(ctx context.Context) (*Document, error) {
	var body gistResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", c.id).
		SetResult(&body).
		SetError(&apiError{}).
		Get("/gists/{id}")
	if err != nil {
		return nil, fmt.Errorf("fetching gist %s: %w", c.id, err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	file, ok := selectEnvFile(body.Files)
	if !ok {
		return nil, kerrors.ErrNoEnvFile
	}

	content := file.Content
	if file.Truncated && file.RawURL != "" {
		content, err = c.fetchRaw(ctx, file.RawURL)
		if err != nil {
			return nil, err
		}
	}

	return &Document{Filename: file.Filename, Content: content}, nil
}

// Update replaces the content of filename in the Gist.
func (c *Client) Update(ctx context.Context, filename, content string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", c.id).
		SetBody(updateRequest{Files: map[string]fileUpdate{filename: {Content: content}}}).
		SetError(&apiError{}).
		Patch("/gists/{id}")
	if err != nil {
		return fmt.Errorf("updating gist %s: %w", c.id, err)
	}
	return checkResponse(resp)
}

// fetchRaw downloads a file the API truncated (content over 1 MB).
func (c *Client) fetchRaw(ctx context.Context, rawURL string) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("fetching raw gist file: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return "", err
	}
	return resp.String(), nil
}

func checkResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return kerrors.ErrGistNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return kerrors.ErrUnauthorized
	}

	msg := resp.Status()
	if e, ok := resp.Error().(*apiError); ok && e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	return fmt.Errorf("%w: %s", kerrors.ErrRemoteRequest, msg)
}

// selectEnvFile prefers a file named exactly ".env", then the first name
// ending in ".env".
func selectEnvFile(files map[string]gistFile) (gistFile, bool) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name == ".env" {
			return withName(files[name], name), true
		}
	}
	for _, name := range names {
		if strings.HasSuffix(name, ".env") {
			return withName(files[name], name), true
		}
	}
	return gistFile{}, false
}

func withName(f gistFile, name string) gistFile {
	if f.Filename == "" {
		f.Filename = name
	}
	return f
}
