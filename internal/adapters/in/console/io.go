package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

const dateLayout = "02-01-2006 15:04"

var zeroTime time.Time

// inputError is a failure reading the cashier's input other than EOF.
type inputError struct {
	err error
}

func (e *inputError) Error() string {
	return "failed to read input: " + e.err.Error()
}

func (e *inputError) Unwrap() error {
	return e.err
}

// prompt shows label and reads one trimmed line. It returns io.EOF when the
// input is exhausted.
func (t *Till) prompt(label string) (string, error) {
	t.print(label)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", &inputError{err: err}
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

func (t *Till) print(s string) {
	_, _ = io.WriteString(t.out, s)
}

func (t *Till) println(s string) {
	_, _ = io.WriteString(t.out, s+"\n")
}

func (t *Till) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}

func (t *Till) table() *tabwriter.Writer {
	return tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
}
