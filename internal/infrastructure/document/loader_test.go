package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18ncheck/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "ux/i18n_keys.json",
			content: `{"pt": {"home": {"title": "Início"}}, "en": {"home": {"title": "Home"}}}`,
		},
		{
			name:    "toml",
			file:    "keys.toml",
			content: "[pt.home]\ntitle = \"Início\"\n\n[en.home]\ntitle = \"Home\"\n",
		},
		{
			name:    "yaml",
			file:    "keys.yaml",
			content: "pt:\n  home:\n    title: Início\nen:\n  home:\n    title: Home\n",
		},
		{
			name:    "unknown extension decodes as json",
			file:    "keys.txt",
			content: `{"pt": {"home": {"title": ""}}, "en": {"home": {"title": ""}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			doc, err := NewLoader(nil).Load(context.Background(), path)
			require.NoError(t, err)

			require.Contains(t, doc, "pt")
			require.Contains(t, doc, "en")
			assert.Equal(t, []string{"home.title"}, domain.Flatten(doc["pt"], "").Sorted())
			assert.Equal(t, []string{"home.title"}, domain.Flatten(doc["en"], "").Sorted())
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ux", "i18n_keys.json")

	_, err := NewLoader(nil).Load(context.Background(), path)

	require.ErrorIs(t, err, domain.ErrMissingFile)
	var target *domain.MissingFileError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, path, target.Path)
}

func TestLoader_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ux", "not a directory")
	path := filepath.Join(dir, "ux", "i18n_keys.json")

	_, err := NewLoader(nil).Load(context.Background(), path)

	var target *domain.MissingFileError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, path, target.Path)
}

func TestLoader_MalformedInput(t *testing.T) {
	path := writeFile(t, t.TempDir(), "keys.json", `{"pt": {`)

	_, err := NewLoader(nil).Load(context.Background(), path)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMissingFile)
	assert.Contains(t, err.Error(), "document: parse")
}

func TestLoader_YAMLKeyCollision(t *testing.T) {
	path := writeFile(t, t.TempDir(), "keys.yaml", "pt:\n  1: um\n  \"1\": one\nen:\n  \"1\": one\n")

	_, err := NewLoader(nil).Load(context.Background(), path)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMissingFile)
	assert.ErrorContains(t, err, `duplicate key "1"`)
}

func TestLoader_TopLevelNotMapping(t *testing.T) {
	path := writeFile(t, t.TempDir(), "keys.json", `null`)

	_, err := NewLoader(nil).Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a mapping")
}

type stubLoader struct {
	path string
	doc  domain.Document
}

func (s *stubLoader) Load(_ context.Context, path string) (domain.Document, error) {
	s.path = path
	return s.doc, nil
}

func TestLoader_DirectoryDelegates(t *testing.T) {
	dir := t.TempDir()
	stub := &stubLoader{doc: domain.Document{"en": domain.Leaf()}}

	doc, err := NewLoader(stub).Load(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, dir, stub.path)
	assert.Equal(t, stub.doc, doc)

	_, err = NewLoader(nil).Load(context.Background(), dir)
	assert.ErrorContains(t, err, "is a directory")
}

func TestLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(nil).Load(ctx, "does-not-matter.json")

	assert.ErrorIs(t, err, context.Canceled)
}
