package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/ports/output"
)

// Ensure Loader implements the output.DocumentLoader port.
var _ output.DocumentLoader = (*Loader)(nil)

// UnmarshalFunc decodes raw bytes into v.
type UnmarshalFunc func(data []byte, v any) error

// Decoders maps a file extension (without the dot) to its decoder.
var Decoders = map[string]UnmarshalFunc{
	"json": json.Unmarshal,
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

// Loader reads a single localization document. When the path is a
// directory, loading is delegated to dir (if set).
type Loader struct {
	dir output.DocumentLoader
}

// NewLoader returns a Loader. dir may be nil, in which case directories are
// rejected.
func NewLoader(dir output.DocumentLoader) *Loader {
	return &Loader{dir: dir}
}

func (l *Loader) Load(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return nil, &domain.MissingFileError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("document: stat %s: %w", path, err)
	}

	if info.IsDir() {
		if l.dir == nil {
			return nil, fmt.Errorf("document: %s is a directory", path)
		}
		return l.dir.Load(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes data with the decoder registered for path's extension,
// falling back to JSON.
func Parse(data []byte, path string) (domain.Document, error) {
	unmarshal, ok := Decoders[strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")]
	if !ok {
		unmarshal = json.Unmarshal
	}

	var raw map[string]any
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("document: parse %s: %w", path, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("document: parse %s: top-level value is not a mapping", path)
	}
	doc, err := domain.DocumentFromValues(raw)
	if err != nil {
		return nil, fmt.Errorf("document: parse %s: %w", path, err)
	}
	return doc, nil
}
