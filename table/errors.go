package table

import "errors"

var (
	// ErrEmpty is returned when the input holds no data rows.
	ErrEmpty = errors.New("table: no data rows")
	// ErrTooFewColumns is returned when rows have fewer than two fields.
	ErrTooFewColumns = errors.New("table: need at least two columns")
	// ErrRagged is returned when a row's field count differs from the first row.
	ErrRagged = errors.New("table: inconsistent number of columns")
	// ErrMalformed is returned for tokens that are not numbers.
	ErrMalformed = errors.New("table: malformed number")
)
