package wordlist

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/vytor/phonicsplay/internal/logger"
)

// maxResourceBytes caps a manifest or word list; real lists are a few KB.
const maxResourceBytes = 4 << 20

// Fetcher retrieves the raw text of a named resource.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (string, error)
}

func checkName(name string) error {
	if name == "" || !fs.ValidPath(name) {
		return fmt.Errorf("invalid resource name %q", name)
	}
	return nil
}

// DirFetcher reads resources from a file system, normally os.DirFS(WORDS_DIR).
type DirFetcher struct {
	fsys fs.FS
}

func NewDirFetcher(fsys fs.FS) *DirFetcher {
	return &DirFetcher{fsys: fsys}
}

// NewDirFetcherFromPath is shorthand for NewDirFetcher(os.DirFS(dir)).
func NewDirFetcherFromPath(dir string) *DirFetcher {
	return NewDirFetcher(os.DirFS(dir))
}

func (f *DirFetcher) Fetch(ctx context.Context, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	file, err := f.fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer file.Close()

	b, err := io.ReadAll(io.LimitReader(file, maxResourceBytes))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// HTTPFetcher downloads resources relative to a base URL.
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	log := logger.FromContext(ctx).WithPrefix("wordlist").WithField("resource", name)

	target, err := url.JoinPath(f.baseURL, path.Clean(name))
	if err != nil {
		return "", err
	}

	log.Debug("fetching %s", target)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		log.Warn("fetch failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	log.Debug("response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("fetch %s: status %d: %s", name, resp.StatusCode, string(body))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceBytes))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
