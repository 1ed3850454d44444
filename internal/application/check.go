package application

import (
	"context"
	"fmt"
	"slices"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/ports/input"
	"i18ncheck/internal/ports/output"
)

var _ input.KeyCheckUseCase = (*CheckService)(nil)

// CheckService compares the flattened key sets of the required language
// blocks of one localization document.
type CheckService struct {
	loader    output.DocumentLoader
	path      string
	languages []string
}

func NewCheckService(loader output.DocumentLoader, path string, languages []string) *CheckService {
	return &CheckService{
		loader:    loader,
		path:      path,
		languages: slices.Clone(languages),
	}
}

// Check loads the document and compares its language blocks. The returned
// error wraps domain.ErrMissingFile, domain.ErrMissingLanguageBlock or
// domain.ErrKeyMismatch; any other error comes from the loader.
func (s *CheckService) Check(ctx context.Context) (domain.Result, error) {
	var res domain.Result
	if len(s.languages) == 0 {
		return res, fmt.Errorf("check: no languages to compare")
	}

	doc, err := s.loader.Load(ctx, s.path)
	if err != nil {
		return res, err
	}

	if missing := doc.Missing(s.languages); len(missing) > 0 {
		res.Missing = missing
		return res, &domain.MissingLanguagesError{Codes: missing}
	}

	sets := make([]domain.KeySet, len(s.languages))
	for i, code := range s.languages {
		sets[i] = domain.Flatten(doc[code], "")
	}
	res.KeyCount = sets[0].Len()
	res.Diffs = diff(s.languages, sets)

	if !res.Matched() {
		return res, domain.ErrKeyMismatch
	}
	return res, nil
}

// diff returns, per language, the keys that at least one other language lacks.
// With two languages this is the plain set difference in each direction.
func diff(languages []string, sets []domain.KeySet) []domain.Diff {
	diffs := make([]domain.Diff, len(languages))
	for i, code := range languages {
		only := domain.NewKeySet()
		for j, other := range sets {
			if i == j {
				continue
			}
			for _, k := range sets[i].Minus(other) {
				only.Add(k)
			}
		}
		diffs[i] = domain.Diff{Language: code, Only: only.Sorted()}
	}
	return diffs
}
