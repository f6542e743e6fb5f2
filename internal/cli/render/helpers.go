// Package render turns use case results into console output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	faint  = color.New(color.FgHiBlack)
	bold   = color.New(color.FgCyan, color.Bold)
)

// FormatError formats an error message with the error icon, keeping only
// the innermost cause of a wrapped chain
func FormatError(message string) string {
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return red.Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return green.Sprintf("✅ %s", message)
}

// PrintError writes the full error chain the way main reports failures
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, red.Sprintf("Error: %v", err))
}

// title capitalizes a heading word
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// newTable returns a borderless table writer in the house style
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	return t
}
