package output

import (
	"context"

	"i18ncheck/internal/domain"
)

// DocumentLoader reads a localization document from path.
// Implementations return a *domain.MissingFileError when path does not exist.
type DocumentLoader interface {
	Load(ctx context.Context, path string) (domain.Document, error)
}
