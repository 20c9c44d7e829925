// Package report emits trial records to an output stream.
//
// Two formats are supported: the tab-separated table the tool has always
// printed (one header line, one data line per trial), and JSON lines for
// machine consumption. Records are written as they arrive — the harness
// never retains them.
package report

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"parcount/internal/bench/trial"
)

// Header is the column row of the tab-separated format.
const Header = "Strategy\tFinal Counter Value\tWorkers\tIncrements/Millisecond\tSeconds"

// Format selects the output encoding.
type Format int

const (
	// TSV is the tab-separated table format, the default.
	TSV Format = iota

	// JSON emits one JSON object per trial, newline-delimited.
	JSON
)

// Writer streams trial records in one format.
type Writer struct {
	out    io.Writer
	format Format
}

// NewWriter returns a Writer emitting to out in the given format.
func NewWriter(out io.Writer, format Format) *Writer {
	return &Writer{out: out, format: format}
}

// Begin writes whatever precedes the records: the header line for TSV,
// nothing for JSON.
func (w *Writer) Begin() error {
	if w.format == JSON {
		return nil
	}
	_, err := fmt.Fprintln(w.out, Header)
	return err
}

// Write emits one trial record.
func (w *Writer) Write(res trial.Result) error {
	if w.format == JSON {
		line, err := sonic.Marshal(res)
		if err != nil {
			return fmt.Errorf("encoding %s record: %w", res.Strategy, err)
		}
		_, err = fmt.Fprintf(w.out, "%s\n", line)
		return err
	}

	_, err := fmt.Fprintf(w.out, "%s\t%d\t%d\t%g\t%g\n",
		res.Strategy, res.FinalValue, res.Workers, res.PerMillisecond, res.Seconds)
	return err
}
