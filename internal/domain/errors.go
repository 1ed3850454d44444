package domain

import (
	"errors"
	"strings"
)

// Domain errors.
var (
	ErrMissingFile          = errors.New("localization file not found")
	ErrMissingLanguageBlock = errors.New("missing language blocks")
	ErrKeyMismatch          = errors.New("i18n key mismatch")
)

// MissingLanguagesError lists the required language codes absent from a document,
// in the order they were checked.
type MissingLanguagesError struct {
	Codes []string
}

func (e *MissingLanguagesError) Error() string {
	return ErrMissingLanguageBlock.Error() + ": " + strings.Join(e.Codes, ", ")
}

func (e *MissingLanguagesError) Unwrap() error { return ErrMissingLanguageBlock }

// MissingFileError carries the path that could not be found.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string { return e.Path + " not found" }

func (e *MissingFileError) Unwrap() error { return ErrMissingFile }
