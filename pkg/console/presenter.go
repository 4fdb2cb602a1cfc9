package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// Presenter writes styled messages to a single text stream.
//
// The zero value is not usable; create one with New.
type Presenter struct {
	out    io.Writer
	errOut io.Writer
	in     *bufio.Reader
	width  func() int
	shell  []string
	logger *zerolog.Logger
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithOutput sets the stream styled messages are written to.
func WithOutput(w io.Writer) Option {
	return func(p *Presenter) { p.out = w }
}

// WithErrorOutput sets the stream progress spinners are drawn on.
func WithErrorOutput(w io.Writer) Option {
	return func(p *Presenter) { p.errOut = w }
}

// WithInput sets the reader Input reads lines from.
func WithInput(r io.Reader) Option {
	return func(p *Presenter) { p.in = bufio.NewReader(r) }
}

// WithWidth overrides the separator width used by headings.
func WithWidth(width func() int) Option {
	return func(p *Presenter) { p.width = width }
}

// WithShell overrides the shell used by ExecuteCommand, e.g. []string{"bash", "-c"}.
func WithShell(shell ...string) Option {
	return func(p *Presenter) {
		if len(shell) > 0 {
			p.shell = shell
		}
	}
}

// WithLogger attaches a logger for debug events.
func WithLogger(l *zerolog.Logger) Option {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Presenter writing to stdout and reading from stdin unless
// overridden by opts.
func New(opts ...Option) *Presenter {
	nop := zerolog.Nop()
	p := &Presenter{
		out:    os.Stdout,
		errOut: os.Stderr,
		shell:  defaultShell(),
		logger: &nop,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.in == nil {
		p.in = bufio.NewReader(os.Stdin)
	}
	if p.width == nil {
		out := p.out
		p.width = func() int { return TerminalWidth(out) }
	}
	return p
}

func defaultShell() []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C"}
	}
	return []string{"sh", "-c"}
}

// Writer returns the output stream.
func (p *Presenter) Writer() io.Writer {
	return p.out
}

// Log prints message wrapped in style and a trailing reset. Extra values are
// printed after it unformatted, separated by spaces.
func (p *Presenter) Log(message string, style string, extra ...any) {
	args := make([]any, 0, len(extra)+1)
	args = append(args, style+message+string(Reset))
	args = append(args, extra...)
	fmt.Fprintln(p.out, args...)
}

// PrintFormatted prints message using the layout for formatType and the style
// CommandLineFormat(formatType, formatColor).
//
//   - heading: separator, upper-cased message, separator
//   - subHeading: message, separator
//   - terminal: message surrounded by ": " and " "
//   - anything else: message as is
func (p *Presenter) PrintFormatted(message string, formatType, formatColor Format, extra ...any) {
	style := CommandLineFormat(formatType, formatColor)

	switch formatType {
	case FormatHeading:
		sep := p.separator()
		p.Log(sep, style)
		p.Log(strings.ToUpper(message), style, extra...)
		p.Log(sep, style)
	case FormatSubHeading:
		p.Log(message, style, extra...)
		p.Log(p.separator(), style)
	case FormatTerminal:
		p.Log(": "+message+" ", style, extra...)
	default:
		p.Log(message, style, extra...)
	}
}

func (p *Presenter) separator() string {
	width := p.width()
	if width <= 0 {
		width = DefaultWidth
	}
	return strings.Repeat("-", width)
}

// Error prints message in the danger color.
func (p *Presenter) Error(message string, extra ...any) {
	p.PrintFormatted(message, FormatDefault, FormatDanger, extra...)
}

// Warning prints message in the warning color.
func (p *Presenter) Warning(message string, extra ...any) {
	p.PrintFormatted(message, FormatDefault, FormatWarning, extra...)
}

// Info prints message in the info color.
func (p *Presenter) Info(message string, extra ...any) {
	p.PrintFormatted(message, FormatDefault, FormatInfo, extra...)
}

// Success prints message in the success color.
func (p *Presenter) Success(message string, extra ...any) {
	p.PrintFormatted(message, FormatDefault, FormatSuccess, extra...)
}

// Heading prints a full-width primary heading.
func (p *Presenter) Heading(message string, extra ...any) {
	p.PrintFormatted(message, FormatHeading, FormatPrimary, extra...)
}

// SubHeading prints message underlined in the secondary color, followed by a separator.
func (p *Presenter) SubHeading(message string, extra ...any) {
	p.PrintFormatted(message, FormatSubHeading, FormatSecondary, extra...)
}

// Terminal prints message styled like terminal output.
func (p *Presenter) Terminal(message string, extra ...any) {
	p.PrintFormatted(message, FormatTerminal, FormatTerminal, extra...)
}
