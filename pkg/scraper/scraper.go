// Package scraper loads raw record lines from local files and URLs
package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/myusername/batting-report/pkg/parser"
)

// ErrUnsupportedSource is returned for URLs with a scheme other than http or https
var ErrUnsupportedSource = errors.New("unsupported source")

// Source kinds, chosen from the file extension
const (
	KindText = "text"
	KindHTML = "html"
	KindPDF  = "pdf"
)

// Loader reads record lines from a path or URL
type Loader struct {
	client *http.Client
	logger *zap.Logger
}

// NewLoader creates a Loader whose HTTP requests give up after timeout
func NewLoader(timeout time.Duration, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// KindOf picks the source kind from the extension of a path or URL path
func KindOf(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm":
		return KindHTML
	case ".pdf":
		return KindPDF
	}
	return KindText
}

// IsURL reports whether location should be fetched rather than opened
func IsURL(location string) bool {
	return strings.Contains(location, "://")
}

// Load returns the record lines found at location.
// Plain text keeps every line so that a blank line is reported by the parser;
// HTML and PDF sources only yield lines that carry data.
func (l *Loader) Load(location string) ([]string, error) {
	if IsURL(location) {
		return l.loadURL(location)
	}
	return l.loadFile(location)
}

func (l *Loader) loadFile(filename string) ([]string, error) {
	kind := KindOf(filename)
	l.logger.Debug("loading file", zap.String("path", filename), zap.String("kind", kind))

	if kind == KindPDF {
		text, err := parser.ReadPDFText(filename)
		if err != nil {
			return nil, err
		}
		return parser.NonBlankLines(text), nil
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return linesFrom(kind, string(content))
}

func (l *Loader) loadURL(location string) ([]string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", location, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, location)
	}

	kind := KindOf(u.Path)
	if kind == KindPDF {
		return l.loadPDFURL(location)
	}

	content, err := l.FetchURL(location)
	if err != nil {
		return nil, err
	}
	return linesFrom(kind, content)
}

func (l *Loader) loadPDFURL(location string) ([]string, error) {
	dir, err := os.MkdirTemp("", "batting-report-")
	if err != nil {
		return nil, fmt.Errorf("error creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	localPath := filepath.Join(dir, "source.pdf")
	if err := l.DownloadPDF(location, localPath); err != nil {
		return nil, err
	}
	return l.loadFile(localPath)
}

func linesFrom(kind, content string) ([]string, error) {
	if kind == KindHTML {
		return parser.ExtractRecordLines(content)
	}
	return parser.SplitLines(content), nil
}

// FetchURL downloads the content of a URL and returns it as a string
func (l *Loader) FetchURL(url string) (string, error) {
	l.logger.Info("fetching URL", zap.String("url", url))

	resp, err := l.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("error fetching URL: %w", err)
	}
	defer resp.Body.Close()

	l.logger.Debug("HTTP response", zap.Int("status", resp.StatusCode),
		zap.String("content_type", resp.Header.Get("Content-Type")))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("non-200 status code: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	return string(body), nil
}

// DownloadPDF downloads a PDF file from a URL and saves it locally
func (l *Loader) DownloadPDF(url string, localPath string) error {
	l.logger.Info("downloading PDF", zap.String("url", url), zap.String("path", localPath))

	resp, err := l.client.Get(url)
	if err != nil {
		return fmt.Errorf("error fetching PDF: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("non-200 status code: %d %s", resp.StatusCode, resp.Status)
	}

	out, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("error saving PDF to file: %w", err)
	}

	return out.Close()
}
