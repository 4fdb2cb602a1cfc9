//go:build !integration

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandLineFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []Format
		want    string
	}{
		{
			name: "empty sequence is reset only",
			want: string(Reset),
		},
		{
			name:    "unknown name is ignored",
			formats: []Format{"unknown-name"},
			want:    string(Reset),
		},
		{
			name:    "default adds nothing",
			formats: []Format{FormatDefault},
			want:    string(Reset),
		},
		{
			name:    "heading then primary",
			formats: []Format{FormatHeading, FormatPrimary},
			want:    string(Reset) + string(Bright) + string(FgBlue),
		},
		{
			name:    "argument order is kept",
			formats: []Format{FormatPrimary, FormatHeading},
			want:    string(Reset) + string(FgBlue) + string(Bright),
		},
		{
			name:    "terminal is a foreground and background pair",
			formats: []Format{FormatTerminal},
			want:    string(Reset) + string(FgGreen) + string(BgBlack),
		},
		{
			name:    "unknown names between known ones",
			formats: []Format{"nope", FormatDanger, "", FormatSubHeading},
			want:    string(Reset) + string(FgRed) + string(Underscore),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommandLineFormat(tt.formats...))
		})
	}
}

func TestCommandLineFormatDeterministic(t *testing.T) {
	seq := []Format{FormatHeading, FormatWarning, FormatTerminal}
	first := CommandLineFormat(seq...)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CommandLineFormat(seq...), "same sequence should give the same style")
	}
}

func TestFormatsAreKnown(t *testing.T) {
	formats := Formats()
	assert.Len(t, formats, 12)
	for _, f := range formats {
		assert.True(t, Known(f), "%s should be known", f)
	}
	assert.False(t, Known("bogus"))
}

func TestWrap(t *testing.T) {
	got := Wrap("ok", FormatSuccess)
	assert.Equal(t, string(Reset)+string(FgGreen)+"ok"+string(Reset), got)
}
