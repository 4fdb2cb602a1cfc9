package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Input writes prompt and blocks until one line is read. The trailing line
// ending is removed. A final line without a newline is returned as is; io.EOF
// is returned only when nothing was read.
func (p *Presenter) Input(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}
