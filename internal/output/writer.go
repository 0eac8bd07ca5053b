// Package output writes replay reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/oolong/internal/config"
	"github.com/lgbarn/oolong/internal/replay"
)

// ReportWriter is the interface for writing replay reports.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(report *replay.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes and releases any resources.
	Close() error
}

// NewWriter returns the writer for cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) ReportWriter {
	if cfg.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one line per move followed by a summary.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(report *replay.Report) error {
	fmt.Fprintf(tw.w, "== %s (%s)\n", report.Script, report.SessionID)
	if tw.cfg.IncludeFEN {
		fmt.Fprintf(tw.w, "start: %s\n", report.StartFEN)
	}

	if tw.cfg.IncludeMoves {
		for _, o := range report.Outcomes {
			fmt.Fprintf(tw.w, "%4d. %-7s %s\n", o.Ply, o.Move, describe(o))
		}
	}

	if tw.cfg.IncludeFEN {
		fmt.Fprintf(tw.w, "final: %s\n", report.FinalFEN)
	}
	_, err := fmt.Fprintf(tw.w, "applied %d, rejected %d", report.Applied, report.Rejected)
	if err != nil {
		return err
	}
	if report.Stopped {
		fmt.Fprint(tw.w, ", stopped early")
	}
	_, err = fmt.Fprintln(tw.w)
	return err
}

// describe renders the result column of a move line.
func describe(o replay.Outcome) string {
	if !o.Applied {
		return fmt.Sprintf("rejected after %s: %s", o.Stage, o.Error)
	}
	s := o.Piece
	if o.Captured != "" {
		s += " takes " + o.Captured
		if o.EnPassant {
			s += " en passant"
		}
	}
	if o.Promoted != "" {
		s += ", promotes to " + o.Promoted
	}
	return s
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput is the top-level JSON document.
type JSONOutput struct {
	Reports []*replay.Report `json:"reports"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as one document on Flush or Close.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	reports []*replay.Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		reports: make([]*replay.Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(report *replay.Report) error {
	report = jw.trim(report)
	if jw.single {
		return jw.encode(report)
	}
	jw.reports = append(jw.reports, report)
	return nil
}

// trim drops the parts of a report the config excludes.
func (jw *JSONWriter) trim(report *replay.Report) *replay.Report {
	if jw.cfg.IncludeMoves && jw.cfg.IncludeFEN {
		return report
	}
	trimmed := *report
	if !jw.cfg.IncludeMoves {
		trimmed.Outcomes = nil
	}
	if !jw.cfg.IncludeFEN {
		trimmed.FinalFEN = ""
	}
	return &trimmed
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Flush writes all buffered reports as a single JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	err := jw.encode(&JSONOutput{Reports: jw.reports})
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
