package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/ports/input"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Reporter writes the outcome of a key check as plain text status lines.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Run executes the check and reports it. Errors outside the reported
// failure kinds (unparseable input, I/O failures) are returned unreported
// for the caller to treat as fatal.
func Run(ctx context.Context, uc input.KeyCheckUseCase, out io.Writer) (int, error) {
	res, err := uc.Check(ctx)
	if err != nil && !Reportable(err) {
		return ExitFailure, err
	}
	return NewReporter(out).Report(res, err), nil
}

// Reportable reports whether err is one of the failures with a status line.
func Reportable(err error) bool {
	return errors.Is(err, domain.ErrMissingFile) ||
		errors.Is(err, domain.ErrMissingLanguageBlock) ||
		errors.Is(err, domain.ErrKeyMismatch)
}

// Report prints exactly one OK or ERROR status line, followed by the
// mismatched keys if any, and returns the process exit code.
func (r *Reporter) Report(res domain.Result, err error) int {
	var missingFile *domain.MissingFileError
	var missingLangs *domain.MissingLanguagesError

	switch {
	case err == nil:
		r.printf("OK: i18n keys matched (%d keys)\n", res.KeyCount)
		return ExitOK
	case errors.As(err, &missingFile):
		r.printf("ERROR: %s not found\n", missingFile.Path)
	case errors.As(err, &missingLangs):
		r.printf("ERROR: missing language blocks: %s\n", strings.Join(missingLangs.Codes, ", "))
	case errors.Is(err, domain.ErrKeyMismatch):
		r.printf("ERROR: %s\n", domain.ErrKeyMismatch)
		for _, d := range res.Diffs {
			if len(d.Only) == 0 {
				continue
			}
			r.printf("  keys only in %s:\n", d.Language)
			for _, k := range d.Only {
				r.printf("    - %s\n", k)
			}
		}
	default:
		// Run never gets here; direct callers may pass any error.
		r.printf("ERROR: %v\n", err)
	}
	return ExitFailure
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
