package export

import (
	"fmt"
	"io"

	"github.com/katalvlaran/socialnet/core"
)

// DefaultPreviewRows is the number of rows Preview shows by default.
const DefaultPreviewRows = 10

// Preview writes a short human-readable listing of the first n edges:
//
//	Head (n=2):
//	("Alice Anderson", "Bob Brown")
//	("Bob Brown", "Eve Evans")
//
// n <= 0 writes nothing. If fewer than n edges exist, all are shown and the
// header reports the number actually shown.
func Preview(w io.Writer, edges []core.Edge, n int) error {
	if n <= 0 {
		return nil
	}
	if n > len(edges) {
		n = len(edges)
	}

	if _, err := fmt.Fprintf(w, "Head (n=%d):\n", n); err != nil {
		return err
	}
	for _, e := range edges[:n] {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}

	return nil
}
