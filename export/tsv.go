package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/socialnet/core"
)

// Method names for error prefixes.
const (
	MethodWriteTSV = "WriteTSV"
	MethodReadTSV  = "ReadTSV"
	MethodWrite    = "WriteFile"
)

// Field and record separators.
const (
	Separator  = "\t"
	Terminator = "\n"
)

var (
	// ErrMalformedRow indicates a TSV line that is not exactly two non-empty fields.
	ErrMalformedRow = errors.New("export: malformed row")

	// ErrInvalidField indicates a name that cannot be written as a TSV field.
	ErrInvalidField = errors.New("export: name is empty or contains TAB or newline")
)

// WriteTSV writes one "A<TAB>B" line per edge, in slice order.
// Names are written verbatim, without quoting; a name that is empty or
// contains TAB, CR or LF is rejected with ErrInvalidField.
func WriteTSV(w io.Writer, edges []core.Edge) error {
	var sb strings.Builder
	for i, e := range edges {
		if !plainField(e.A) || !plainField(e.B) {
			return fmt.Errorf("%s: edge %d %s: %w", MethodWriteTSV, i, e, ErrInvalidField)
		}
		sb.Reset()
		sb.Grow(len(e.A) + len(e.B) + 2)
		sb.WriteString(e.A)
		sb.WriteString(Separator)
		sb.WriteString(e.B)
		sb.WriteString(Terminator)
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("%s: %w", MethodWriteTSV, err)
		}
	}

	return nil
}

// ReadTSV parses the format produced by WriteTSV. CRLF line endings are
// accepted; blank lines are not. Lines have no length limit. Endpoints are
// returned as read, not canonicalised.
func ReadTSV(r io.Reader) ([]core.Edge, error) {
	br := bufio.NewReader(r)
	var out []core.Edge
	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: line %d: %w", MethodReadTSV, line, err)
		}
		if text == "" && err != nil {
			return out, nil
		}

		text = strings.TrimSuffix(strings.TrimSuffix(text, Terminator), "\r")
		fields := strings.Split(text, Separator)
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("%s: line %d: %d fields: %w", MethodReadTSV, line, len(fields), ErrMalformedRow)
		}
		out = append(out, core.Edge{A: fields[0], B: fields[1]})

		if err != nil {
			return out, nil
		}
	}
}

// plainField reports whether s can be written as a single unquoted field.
func plainField(s string) bool {
	return s != "" && !strings.ContainsAny(s, "\t\r\n")
}
