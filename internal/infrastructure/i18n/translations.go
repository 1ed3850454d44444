package i18n

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/ports/output"
)

// Ensure MessageLoader implements the output.DocumentLoader port.
var _ output.DocumentLoader = (*MessageLoader)(nil)

// MessageLoader reads a directory of go-i18n message files
// (e.g. active.en.toml, active.pt.toml) as one localization document.
// Each file's language tag is the language code and each message ID is a
// leaf key.
type MessageLoader struct {
	unmarshalFuncs map[string]i18n.UnmarshalFunc
}

func NewMessageLoader() *MessageLoader {
	return &MessageLoader{
		unmarshalFuncs: map[string]i18n.UnmarshalFunc{
			"toml": toml.Unmarshal,
			"yaml": yaml.Unmarshal,
			"yml":  yaml.Unmarshal,
		},
	}
}

func (l *MessageLoader) Load(ctx context.Context, dir string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read dir %s: %w", dir, err)
	}

	ids := map[string][]string{}
	for _, f := range files {
		if f.IsDir() || !l.supports(f.Name()) {
			continue
		}

		path := filepath.Join(dir, f.Name())
		tag, ok := tagFromName(f.Name())
		if !ok {
			log.Printf("i18n: skipping %s: no language tag in file name", path)
			continue
		}

		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}
		mf, err := i18n.ParseMessageFileBytes(buf, path, l.unmarshalFuncs)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", path, err)
		}

		code := tag.String()
		if _, ok := ids[code]; !ok {
			ids[code] = []string{}
		}
		for _, m := range mf.Messages {
			ids[code] = append(ids[code], m.ID)
		}
	}

	doc := make(domain.Document, len(ids))
	for code, list := range ids {
		slices.Sort(list)
		entries := make([]domain.Entry, 0, len(list))
		for _, id := range list {
			entries = append(entries, domain.Entry{Key: id, Node: domain.Leaf()})
		}
		doc[code] = domain.Mapping(entries...)
	}
	return doc, nil
}

func (l *MessageLoader) supports(name string) bool {
	format := strings.TrimPrefix(filepath.Ext(name), ".")
	if format == "json" {
		return true
	}
	_, ok := l.unmarshalFuncs[format]
	return ok
}

// tagFromName reads the language tag from the segment before the extension,
// the same segment go-i18n uses: active.pt-BR.toml yields pt-BR. Names like
// package.json or config.toml carry no tag.
func tagFromName(name string) (language.Tag, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	segment := base[strings.LastIndex(base, ".")+1:]
	if segment == "" {
		return language.Und, false
	}
	tag, err := language.Parse(segment)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}
