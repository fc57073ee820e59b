package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestColorizeLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"section header", "Available Commands:", []string{"Available Commands:"}},
		{"command listing", "  add         Log a run", []string{"add", "Log a run"}},
		{"flag line", "  -d, --date string   run date", []string{"--date", "run date"}},
		{"footer", `Use "runlog [command] --help" for more information about a command.`, []string{"runlog"}},
		{"plain text", "A personal running log", []string{"A personal running log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := colorizeLine(tt.line)
			for _, want := range tt.want {
				assert.Contains(t, result, want)
			}
		})
	}
}

func TestColorizedHelpFuncProducesOutput(t *testing.T) {
	// standalone command so shared subcommands are not re-parented
	cmd := &cobra.Command{
		Use:   "test-app",
		Short: "A test CLI app",
	}
	cmd.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}})

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	colorizedHelpFunc()(cmd, []string{})

	output := buf.String()
	assert.Contains(t, output, "A test CLI app")
	assert.Contains(t, output, "test-app")
	assert.Contains(t, output, "sub")
	assert.Contains(t, output, "Flags:")
}

func TestColorizedHelpFuncRestoresWriter(t *testing.T) {
	cmd := &cobra.Command{
		Use:   "test-app",
		Short: "A test CLI app",
	}

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	colorizedHelpFunc()(cmd, []string{})

	buf.Reset()
	cmd.Print("test")
	assert.Equal(t, "test", buf.String())
}
