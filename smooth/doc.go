// Package smooth implements the forward moving average used to take the
// noise out of long simulation traces before plotting.
//
// The window length is derived from the number of rows (rows / 50, integer
// division). Row i is replaced by the column-wise mean of rows i..i+win-1.
// The last win rows have no full window ahead of them and are left as they
// are, so the tail of a smoothed trace keeps its raw values:
//
//	rows:   0 1 2 3 ... N-win-1 | N-win ... N-1
//	        averaged forward    | untouched
//
// Short inputs (fewer than 50 rows) give a window of zero and are returned
// unchanged.
package smooth
