package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// CommentPrefix starts a comment that runs to the end of the line.
const CommentPrefix = '#'

const maxLineBytes = 16 << 20

// Table is a row-major numeric table with at least one row and two columns.
type Table struct {
	data *mat.Dense
}

// New builds a Table from rows. The data is copied.
func New(rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	cols := len(rows[0])
	if cols < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewColumns, cols)
	}

	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrRagged, i, len(row), cols)
		}
		data = append(data, row...)
	}

	return &Table{data: mat.NewDense(len(rows), cols, data)}, nil
}

// Load opens path and parses it with Read.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses whitespace-delimited numeric rows from r.
// Blank lines and comments are skipped. Every data row must have the same
// number of fields as the first one.
func Read(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		data []float64
		rows int
		cols int
		line int
	)

	for sc.Scan() {
		line++
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}

		if rows == 0 {
			cols = len(fields)
			if cols < 2 {
				return nil, fmt.Errorf("line %d: %w: got %d", line, ErrTooFewColumns, cols)
			}
		} else if len(fields) != cols {
			return nil, fmt.Errorf("line %d: %w: got %d fields, want %d", line, ErrRagged, len(fields), cols)
		}

		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w %q: %w", line, j+1, ErrMalformed, tok, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, ErrEmpty
	}

	return &Table{data: mat.NewDense(rows, cols, data)}, nil
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, CommentPrefix); i >= 0 {
		return s[:i]
	}
	return s
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (rows, cols int) {
	return t.data.Dims()
}

// Matrix returns the full table. It shares storage with t.
func (t *Table) Matrix() mat.Matrix {
	return t.data
}

// Independent returns a copy of column 0.
func (t *Table) Independent() []float64 {
	return mat.Col(nil, 0, t.data)
}

// Dependent returns columns 1..C-1 as a view sharing storage with t.
// Writes through the view modify the table.
func (t *Table) Dependent() *mat.Dense {
	rows, cols := t.data.Dims()
	return t.data.Slice(0, rows, 1, cols).(*mat.Dense)
}
