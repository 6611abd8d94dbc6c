package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ava12/salgol"
	"github.com/ava12/salgol/lang"
	"github.com/ava12/salgol/source"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorAccent  = lipgloss.Color("#F59E0B")
)

var (
	okStyle = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	gutterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	caretStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)

// diagnostic renders program error as a message line followed by source excerpt
// with a caret under error position. Errors without position get the message only.
func diagnostic(text string, e error) string {
	msg := lang.FormatError(text, e)
	parts := strings.SplitN(msg, ":", 2)
	res := errorStyle.Render(parts[0]+":") + parts[1]

	var se *salgol.Error
	if !errors.As(e, &se) || se.Offset < 0 || se.SourceName == lang.PreludeName {
		return res
	}

	src := source.NewString("", text)
	line, col := src.LineCol(se.Offset)
	start := src.Pos(line, 1)
	lineText := text[start:]
	if nl := strings.IndexByte(lineText, '\n'); nl >= 0 {
		lineText = lineText[:nl]
	}
	lineText = strings.TrimRight(lineText, "\r")

	number := fmt.Sprintf("%4d", line)
	gutter := gutterStyle.Render(number + " | ")
	blank := gutterStyle.Render(strings.Repeat(" ", len(number)) + " | ")
	runes := []rune(lineText)
	caretPad := strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		return ' '
	}, string(runes[:min(col-1, len(runes))]))

	return res + "\n" + gutter + lineText + "\n" + blank + caretPad + caretStyle.Render("^")
}
