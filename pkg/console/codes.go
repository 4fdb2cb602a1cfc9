// Package console prints consistently styled terminal output for CLI tools.
//
// Styles are composed from semantic format names (heading, primary, danger, ...)
// that resolve to ANSI escape sequences through CommandLineFormat, a pure lookup
// and fold. A Presenter writes styled messages, reads a line of input and runs
// shell commands, capturing their output instead of failing.
package console

// Code is a raw ANSI escape sequence.
type Code string

// ANSI color and style codes
const (
	Reset      Code = "\033[0m"
	Bright     Code = "\033[1m"
	Dim        Code = "\033[2m"
	Underscore Code = "\033[4m"
	Blink      Code = "\033[5m"
	Reverse    Code = "\033[7m"
	Hidden     Code = "\033[8m"

	FgBlack   Code = "\033[30m"
	FgRed     Code = "\033[31m"
	FgGreen   Code = "\033[32m"
	FgYellow  Code = "\033[33m"
	FgBlue    Code = "\033[34m"
	FgMagenta Code = "\033[35m"
	FgCyan    Code = "\033[36m"
	FgWhite   Code = "\033[37m"

	BgBlack   Code = "\033[40m"
	BgRed     Code = "\033[41m"
	BgGreen   Code = "\033[42m"
	BgYellow  Code = "\033[43m"
	BgBlue    Code = "\033[44m"
	BgMagenta Code = "\033[45m"
	BgCyan    Code = "\033[46m"
	BgWhite   Code = "\033[47m"
)

// Format is a semantic style name.
type Format string

// Semantic format names understood by CommandLineFormat
const (
	FormatHeading    Format = "heading"
	FormatSubHeading Format = "subHeading"
	FormatDefault    Format = "default"
	FormatPrimary    Format = "primary"
	FormatSecondary  Format = "secondary"
	FormatSuccess    Format = "success"
	FormatDanger     Format = "danger"
	FormatWarning    Format = "warning"
	FormatInfo       Format = "info"
	FormatLight      Format = "light"
	FormatDark       Format = "dark"
	FormatTerminal   Format = "terminal"
)

// formatCodes maps each format name to the codes it contributes, in order.
// FormatDefault is recognised but adds nothing beyond the leading reset.
var formatCodes = map[Format][]Code{
	FormatHeading:    {Bright},
	FormatSubHeading: {Underscore},
	FormatDefault:    nil,
	FormatPrimary:    {FgBlue},
	FormatSecondary:  {FgMagenta},
	FormatSuccess:    {FgGreen},
	FormatDanger:     {FgRed},
	FormatWarning:    {FgYellow},
	FormatInfo:       {FgCyan},
	FormatLight:      {FgWhite},
	FormatDark:       {FgBlack},
	FormatTerminal:   {FgGreen, BgBlack},
}

// Formats returns every known format name in declaration order.
func Formats() []Format {
	return []Format{
		FormatHeading, FormatSubHeading, FormatDefault, FormatPrimary,
		FormatSecondary, FormatSuccess, FormatDanger, FormatWarning,
		FormatInfo, FormatLight, FormatDark, FormatTerminal,
	}
}

// Known reports whether f is a recognised format name.
func Known(f Format) bool {
	_, ok := formatCodes[f]
	return ok
}

// CommandLineFormat resolves a sequence of format names to an escape string.
// The result always starts with Reset; codes follow in argument order and
// unknown names are ignored.
func CommandLineFormat(formats ...Format) string {
	style := string(Reset)
	for _, f := range formats {
		for _, c := range formatCodes[f] {
			style += string(c)
		}
	}
	return style
}

// Wrap returns s wrapped in the style for formats followed by a reset.
func Wrap(s string, formats ...Format) string {
	return CommandLineFormat(formats...) + s + string(Reset)
}
