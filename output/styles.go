// Package output provides styling helpers for terminal output of receipts and
// timing reports.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles colors text for the terminal behind a writer. When the writer is not
// a terminal the color profile degrades to plain ASCII and every helper
// returns its input unchanged.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// NewStylesWithProfile creates Styles with a fixed color profile, ignoring
// terminal detection.
func NewStylesWithProfile(w io.Writer, profile termenv.Profile) *Styles {
	return &Styles{
		output: termenv.NewOutput(w, termenv.WithProfile(profile)),
	}
}

// Item returns a styled item line (default color).
func (s *Styles) Item(text string) string {
	return text
}

// Discount returns a styled discount line (green).
func (s *Styles) Discount(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		String()
}

// Voided returns a styled voided line (red).
func (s *Styles) Voided(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		String()
}

// Total returns a styled total line (bold).
func (s *Styles) Total(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text (separators and secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}
