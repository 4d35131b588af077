package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Error kinds. Workflows wrap these with context via %w so handlers can
// map them to response codes with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

// MissingDishesError reports the exact set of requested dish IDs that do
// not exist in the catalog. It unwraps to ErrNotFound.
type MissingDishesError struct {
	MissingIDs []uuid.UUID
}

func (e *MissingDishesError) Error() string {
	ids := make([]string, len(e.MissingIDs))
	for i, id := range e.MissingIDs {
		ids[i] = id.String()
	}
	sort.Strings(ids)
	return fmt.Sprintf("could not find all dishes, missing ids: [%s]", strings.Join(ids, ", "))
}

func (e *MissingDishesError) Unwrap() error {
	return ErrNotFound
}
