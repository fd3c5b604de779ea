package res

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxSize caps how much an input may hold
const maxSize = 32 << 20

// Resource is a loaded input document
type Resource struct {
	Source   string
	Data     []byte
	MimeType string
}

// Loader reads request documents from a file, stdin ("-"), an http(s) URL
// or a data: URL.
type Loader struct {
	// Stdin is read when the source is "-"
	Stdin io.Reader

	searchPaths []string
	client      *http.Client
}

// NewLoader creates a new resource loader
func NewLoader() *Loader {
	return &Loader{
		Stdin:  os.Stdin,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// AddSearchPath adds a directory tried when a relative file is not found
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Load loads a resource from a URL, file path or stdin
func (l *Loader) Load(ctx context.Context, source string) (*Resource, error) {
	switch {
	case source == "":
		return nil, errors.New("empty source")
	case source == "-":
		data, err := readLimited(l.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return &Resource{Source: source, Data: data, MimeType: "application/json"}, nil
	case strings.HasPrefix(source, "data:"):
		return parseDataURL(source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return l.loadRemote(ctx, source)
	default:
		return l.loadLocal(source)
	}
}

// parseDataURL parses a data URL (RFC 2397).
// Examples:
//
//	data:application/json;base64,<base64>
//	data:application/json,%7B%22ingredients%22%3A%5B%5D%7D
func parseDataURL(u string) (*Resource, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(u, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("invalid data URL")
	}

	mime := "text/plain"
	isBase64 := false
	if meta != "" {
		comps := strings.Split(meta, ";")
		if comps[0] != "" {
			mime = comps[0]
		}
		for _, c := range comps[1:] {
			if strings.EqualFold(strings.TrimSpace(c), "base64") {
				isBase64 = true
			}
		}
	}

	var data []byte
	if isBase64 {
		d, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data URL: %w", err)
		}
		data = d
	} else if d, err := url.PathUnescape(payload); err == nil {
		data = []byte(d)
	} else {
		data = []byte(payload)
	}

	return &Resource{Source: "data:", Data: data, MimeType: mime}, nil
}

// loadRemote fetches a resource over http(s)
func (l *Loader) loadRemote(ctx context.Context, source string) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	data, err := readLimited(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Resource{Source: source, Data: data, MimeType: resp.Header.Get("Content-Type")}, nil
}

// loadLocal reads a file, falling back to the search paths
func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := readFile(path)
	if err == nil {
		return &Resource{Source: path, Data: data, MimeType: mimeFor(path)}, nil
	}
	if !errors.Is(err, os.ErrNotExist) || filepath.IsAbs(path) {
		return nil, err
	}

	for _, dir := range l.searchPaths {
		candidate := filepath.Join(dir, path)
		if data, err := readFile(candidate); err == nil {
			return &Resource{Source: candidate, Data: data, MimeType: mimeFor(candidate)}, nil
		}
	}
	return nil, fmt.Errorf("resource not found: %s", path)
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLimited(f)
}

func readLimited(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, errors.New("no reader")
	}
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxSize {
		return nil, fmt.Errorf("input exceeds %d bytes", maxSize)
	}
	return data, nil
}

func mimeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	default:
		return "application/octet-stream"
	}
}
