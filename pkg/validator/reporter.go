package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/validation/pkg/result"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces YAML output.
	FormatYAML Format = "yaml"
	// FormatTOML produces TOML output.
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the supported report formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// Report is the serialisable form of a validation result.
type Report struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Valid  bool     `json:"valid" yaml:"valid" toml:"valid"`
	Target string   `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty" toml:"errors,omitempty"`
}

// NewReport describes r under name. A successful target is rendered with
// its String method (or %v).
func NewReport[T any](name string, r result.Result[[]string, T]) Report {
	if target, ok := r.Get(); ok {
		return Report{Name: name, Valid: true, Target: fmt.Sprint(target)}
	}
	return Report{Name: name, Errors: r.Err()}
}

// Reporter formats and writes validation reports.
type Reporter struct {
	out    io.Writer
	format Format
	green  *color.Color
	red    *color.Color
}

// NewReporter creates a new Reporter. Text output is coloured only when out
// is a terminal and colours are not globally disabled.
func NewReporter(out io.Writer, format Format) *Reporter {
	r := &Reporter{
		out:    out,
		format: format,
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
	}
	if !isTerminal(out) {
		r.green.DisableColor()
		r.red.DisableColor()
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Report writes the report to the output.
func (r *Reporter) Report(report Report) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(report)
	case FormatYAML:
		return r.reportYAML(report)
	case FormatTOML:
		return r.reportTOML(report)
	default:
		return r.reportText(report)
	}
}

func (r *Reporter) reportJSON(report Report) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(report), "encoding JSON report")
}

func (r *Reporter) reportYAML(report Report) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return errors.Wrap(err, "encoding YAML report")
	}
	return errors.Wrap(encoder.Close(), "flushing YAML report")
}

func (r *Reporter) reportTOML(report Report) error {
	return errors.Wrap(toml.NewEncoder(r.out).Encode(report), "encoding TOML report")
}

func (r *Reporter) reportText(report Report) error {
	if report.Valid {
		fmt.Fprintln(r.out, r.green.Sprintf("✓ %s is valid", report.Name))
		if report.Target != "" {
			fmt.Fprintf(r.out, "  %s\n", report.Target)
		}
		return nil
	}

	fmt.Fprintf(r.out, "%s %s\n\n",
		r.red.Sprintf("✗ %s validation failed:", report.Name),
		r.red.Sprintf("%d error(s)", len(report.Errors)))

	fmt.Fprintln(r.out, "Errors:")
	for _, msg := range report.Errors {
		fmt.Fprintf(r.out, "  • %s\n", msg)
	}
	fmt.Fprintln(r.out)

	return nil
}
