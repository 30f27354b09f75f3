package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
	"github.com/MKhiriev/go-pleasure-utils/models"
)

// Decoder turns raw file contents into a document.
type Decoder func(data []byte) (models.Document, error)

// FileLoader loads configuration files and caches the parsed documents.
// Callers always receive copies; the cache is never exposed.
type FileLoader struct {
	mu       sync.Mutex
	cache    map[string]models.Document
	decoders map[string]Decoder
	logger   *logger.Logger
}

// NewFileLoader returns a loader that understands YAML and JSON files.
func NewFileLoader(log *logger.Logger) *FileLoader {
	return &FileLoader{
		cache: make(map[string]models.Document),
		decoders: map[string]Decoder{
			".yml":  DecodeYAML,
			".yaml": DecodeYAML,
			".json": DecodeJSON,
		},
		logger: logger.OrNop(log),
	}
}

// Load returns the document stored at path. A missing file reports
// found=false with no error, whatever its extension.
func (l *FileLoader) Load(path string) (models.Document, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if doc, ok := l.cache[path]; ok {
		return doc.Clone(), true, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrRead, err)
	}

	decode, ok := l.decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, false, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	if doc == nil {
		doc = models.Document{}
	}

	l.cache[path] = doc
	l.logger.Debug().Str("path", path).Int("keys", len(doc)).Msg("configuration file loaded")

	return doc.Clone(), true, nil
}

// Forget discards the cached document of path.
func (l *FileLoader) Forget(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.cache, path)
}

// DecodeYAML decodes a YAML mapping. An empty file is an empty document.
func DecodeYAML(data []byte) (models.Document, error) {
	var doc models.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeJSON decodes a JSON object. Numbers keep their float64 precision.
func DecodeJSON(data []byte) (models.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return models.Document{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var doc models.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}
	return doc, nil
}
