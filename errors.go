package ankigreek

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is; the wrapped message
// names the offending word, path or tag.
var (
	// ErrConflict is returned when a category path is written twice.
	ErrConflict = errors.New("conflict")
	// ErrUnresolvable is returned for a tag outside its closed vocabulary.
	ErrUnresolvable = errors.New("unresolvable tag")
	// ErrValidation is returned for malformed paradigm input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned by paradigm stores for an unknown key.
	ErrNotFound = errors.New("not found")
	// ErrNoParadigm is returned when markup yields no usable cells.
	ErrNoParadigm = errors.New("no paradigm")
)

// WordError records why one word of a run produced no cards.
type WordError struct {
	Word string
	Err  error
}

func (e *WordError) Error() string {
	return fmt.Sprintf("bad definition for %s: %v", e.Word, e.Err)
}

func (e *WordError) Unwrap() error { return e.Err }
