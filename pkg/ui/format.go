package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks terminal or text output based on where output goes
	FormatAuto Format = iota
	// FormatTerminal renders ANSI styled text
	FormatTerminal
	// FormatText renders the plain projection only
	FormatText
	// FormatJSON renders the styled tree as JSON
	FormatJSON
	// FormatXML renders the styled tree as an XML document
	FormatXML
	// FormatIRC renders mIRC control codes
	FormatIRC
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
	FormatXML:      "xml",
	FormatIRC:      "irc",
}

// String returns the string representation of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// FormatNames lists the names accepted by ParseFormat, in declaration order
func FormatNames() []string {
	names := make([]string, 0, len(formatNames))
	for f := FormatAuto; f <= FormatIRC; f++ {
		names = append(names, f.String())
	}
	return names
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal", "ansi":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "irc", "mirc":
		return FormatIRC, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
