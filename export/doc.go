// Package export serialises friendship edges.
//
// The on-disk format is TSV: one edge per line, the two names separated by a
// single TAB, no header, lines in the order the edges were produced.
//
//	Alice Anderson<TAB>Bob Brown
//
// WriteFile writes atomically (temp file + rename) and creates parent
// directories. ReadTSV is the inverse of WriteTSV and is used to verify
// output. Preview renders the first edges for human inspection.
package export
