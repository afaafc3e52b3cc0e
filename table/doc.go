// Package table loads whitespace-delimited numeric data files into a dense
// matrix and splits it into an independent column and dependent series.
//
// The accepted format is the one written by simple simulation tools: one
// sample per line, fields separated by spaces or tabs, and `#` starting a
// comment that runs to the end of the line.
//
//	# volume  epot
//	60.0 -3.21
//	61.5 -3.30   # trailing comments are ignored
//
// Column 0 is the independent variable; columns 1..C-1 are dependent series.
// Dependent returns a view that shares storage with the table, so in-place
// transforms (see package smooth) are visible through the table afterwards.
package table
