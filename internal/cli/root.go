package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/icp/internal/command"
	"github.com/rileyhilliard/icp/internal/config"
	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/logger"
	"github.com/rileyhilliard/icp/internal/mode"
	"github.com/rileyhilliard/icp/internal/ops"
	"github.com/rileyhilliard/icp/internal/ui"
	"github.com/rileyhilliard/icp/internal/util"
	"github.com/rileyhilliard/icp/internal/validate"
	"github.com/spf13/cobra"
)

// Global flags
var (
	projectDirFlag string
	globalFlag     bool
	verboseFlag    bool
	quietFlag      bool
	noColorFlag    bool
)

// opsInitializers builds the operations a command invokes. Tests replace it
// with recording fakes.
var opsInitializers = ops.Default

var rootCmd = &cobra.Command{
	Use:   "icp",
	Short: "Manage canisters and tokens on the Internet Computer",
	Long: `icp starts and stops canisters and moves tokens, either inside a project
(a directory tree with an icp.yaml) or globally against explicit principals and URLs.

Inside a project, canisters and networks can be referred to by name:
  icp canister start backend
  icp canister stop backend --environment staging

Outside a project, use principals and network URLs:
  icp canister start ryjl3-tyaaa-aaaaa-aaaba-cai --network https://icp-api.io`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verboseFlag && quietFlag {
			return errors.New(errors.ErrConfig,
				"--verbose and --quiet cannot be used together",
				"Pick one of them")
		}
		if globalFlag && projectDirFlag != "" {
			return errors.New(errors.ErrConfig,
				"--global and --project-dir cannot be used together",
				"Use --global to ignore projects, or --project-dir to pick one")
		}
		applyColorMode()
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&projectDirFlag, "project-dir", "", "look for icp.yaml starting from this directory")
	pf.BoolVar(&globalFlag, "global", false, "ignore any icp.yaml and run in global mode")
	pf.BoolVarP(&verboseFlag, "verbose", "v", false, "show debug output")
	pf.BoolVarP(&quietFlag, "quiet", "q", false, "only print errors")
	pf.BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	pf.BoolVar(&machineMode, "json", false, "print machine-readable JSON")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if MachineMode() {
		_ = WriteJSONFromError(os.Stdout, err)
	} else {
		reportError(os.Stderr, err)
	}
	os.Exit(1)
}

// reportError prints err for a human. Validation failures are a single
// diagnostic line.
func reportError(w io.Writer, err error) {
	var verr *validate.ValidationError
	var icpErr *errors.Error
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(w, "%s %s\n", ui.ErrorStyle().Render("✗"), verr.Error())
	case errors.As(err, &icpErr):
		fmt.Fprint(w, icpErr.Error())
	case isUnknownCommandError(err):
		fmt.Fprintf(w, "✗ %s\n\n  Run 'icp --help' to see available commands\n", err)
		name := extractUnknownCommand(err)
		switch {
		case name == "":
		case isCanisterName(name):
			fmt.Fprintf(w, "  Did you mean: icp canister start %s?\n", name)
		default:
			if hint := util.DidYouMean(name, commandNames()); hint != "" {
				fmt.Fprintf(w, "  %s\n", hint)
			}
		}
	default:
		fmt.Fprintf(w, "✗ %s\n", err)
	}
}

// applyColorMode honours --no-color, --json, NO_COLOR and output.color, in that order.
func applyColorMode() {
	if noColorFlag || machineMode || os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
		return
	}
	// A broken global config is reported by the command that loads it.
	if g, err := config.LoadGlobal(); err == nil {
		ui.SetColorMode(g.Output.Color)
		return
	}
	ui.SetColorMode(ui.ColorAuto)
}

// currentMode decides project vs global from the global flags and the
// filesystem.
func currentMode() (mode.Mode, error) {
	if globalFlag {
		return mode.NewGlobal(), nil
	}
	if projectDirFlag != "" {
		abs, err := filepath.Abs(projectDirFlag)
		if err != nil {
			return mode.Mode{}, errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't resolve --project-dir "+projectDirFlag,
				"Pass an existing directory")
		}
		return mode.Locate(abs)
	}
	return mode.LocateFromWd()
}

// newContext builds the per-invocation command context.
func newContext(dryRun bool) (*command.Context, error) {
	m, err := currentMode()
	if err != nil {
		return nil, err
	}
	log := logger.NewWriterLogger(os.Stderr, "icp", verboseFlag)
	log.Debug("mode: %s", m)
	return &command.Context{
		Mode:   m,
		Ops:    opsInitializers(),
		Logger: log,
		DryRun: dryRun,
	}, nil
}

// isUnknownCommandError checks if the error is about an unknown command or flag.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "icp"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// commandNames lists the root's visible subcommands.
func commandNames() []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return names
}

// isCanisterName reports whether name is a canister in the current project.
func isCanisterName(name string) bool {
	m, err := currentMode()
	if err != nil || !m.IsProject() {
		return false
	}
	cfg, err := config.Load(m.ConfigPath())
	if err != nil {
		return false
	}
	_, ok := cfg.Canisters[name]
	return ok
}
