package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// shellTarget is where and how a shell loads runlog's completions.
type shellTarget struct {
	rcFile   string // relative to the home directory
	loadLine string
}

var shellTargets = map[string]shellTarget{
	"bash":       {".bashrc", `eval "$(runlog completion generate bash)"`},
	"zsh":        {".zshrc", `eval "$(runlog completion generate zsh)"`},
	"fish":       {".config/fish/config.fish", `runlog completion generate fish | source`},
	"powershell": {".config/powershell/Microsoft.PowerShell_profile.ps1", `runlog completion generate powershell | Out-String | Invoke-Expression`},
}

const completionMarker = "runlog completion"

var completionCmd = GroupCommand{
	Use:   "completion",
	Short: "Manage shell completions",
	Subcommands: []*cobra.Command{
		completionGenerateCmd,
		completionInstallCmd,
	},
}.Build()

var completionGenerateCmd = LeafCommand{
	Use:   "generate [SHELL]",
	Short: "Print the shell completion script",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shell, err := shellArg(args)
		if err != nil {
			return err
		}
		return runCompletion(cmd, shell)
	},
}.Build()

var completionInstallCmd = LeafCommand{
	Use:   "install [SHELL]",
	Short: "Load completions from your shell config",
	Args:  cobra.RangeArgs(0, 1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell, err := shellArg(args)
		if err != nil {
			return err
		}

		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		confirm := NewConfirmFunc()
		if yes {
			confirm = AlwaysYes()
		}
		return runCompletionInstall(cmd, shell, homeDir, confirm)
	},
}.Build()

func init() {
	completionGenerateCmd.ValidArgs = []string{"bash", "zsh", "fish", "powershell"}
	completionInstallCmd.ValidArgs = completionGenerateCmd.ValidArgs
}

// shellArg returns the shell named in args, falling back to $SHELL.
func shellArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if shell := detectShell(); shell != "" {
		return shell, nil
	}
	return "", fmt.Errorf("could not detect shell from $SHELL; pass one of bash, zsh, fish, powershell")
}

// detectShell maps $SHELL to a supported shell name, or "".
func detectShell() string {
	switch base := filepath.Base(os.Getenv("SHELL")); base {
	case "bash", "zsh", "fish":
		return base
	default:
		return ""
	}
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: bash, zsh, fish, powershell)", shell)
	}
}

func runCompletionInstall(cmd *cobra.Command, shell, homeDir string, confirm ConfirmFunc) error {
	target, ok := shellTargets[shell]
	if !ok {
		return fmt.Errorf("unsupported shell: %s (valid: bash, zsh, fish, powershell)", shell)
	}
	rcPath := filepath.Join(homeDir, target.rcFile)
	display := filepath.Join("~", target.rcFile)
	w := cmd.OutOrStdout()

	if data, err := os.ReadFile(rcPath); err == nil && strings.Contains(string(data), completionMarker) {
		_, _ = fmt.Fprintf(w, "shell completions already installed for %s in %s\n", Primary(shell), Primary(display))
		return nil
	}

	confirmed, err := confirm(fmt.Sprintf("Install shell completions for %s into %s?", shell, display))
	if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, writeErr := fmt.Fprintf(f, "\n# runlog shell completion\n%s\n", target.loadLine)
	if closeErr := f.Close(); closeErr != nil {
		return closeErr
	}
	if writeErr != nil {
		return writeErr
	}

	_, _ = fmt.Fprintf(w, "shell completions installed for %s in %s\n", Primary(shell), Primary(display))
	return nil
}
