package dataprep

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDataset is returned when the input has a header but no rows.
var ErrEmptyDataset = errors.New("dataset has no rows")

// MissingColumnError reports columns a step needs that the dataset does not have.
type MissingColumnError struct {
	Step    string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing column(s): %s", e.Step, strings.Join(e.Columns, ", "))
}

// EncodingMismatchError reports values of a fixed-category column that fall
// outside its declared classes.
type EncodingMismatchError struct {
	Column   string
	Expected []string
	Found    []string
}

func (e *EncodingMismatchError) Error() string {
	return fmt.Sprintf(
		"column %q: unexpected value(s) %s, expected one of %s",
		e.Column,
		quoteAll(e.Found),
		quoteAll(e.Expected),
	)
}

// DuplicateColumnError reports two columns that end up with the same name.
type DuplicateColumnError struct {
	Name string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column name %q", e.Name)
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
