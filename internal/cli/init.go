package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/icp/internal/config"
	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/mode"
	"github.com/rileyhilliard/icp/internal/ui"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an icp.yaml project file",
	Long: `Create an icp.yaml in the current directory (or --project-dir).

The starter file defines the built-in local and ic networks, a staging
environment on ic, and no canisters. Record canister ids with
'icp canister set-id'.

Examples:
  icp init
  icp init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd.OutOrStdout(), InitOptions{
			Dir:            projectDirFlag,
			Overwrite:      initForce,
			NonInteractive: !ui.IsTerminal(os.Stdin),
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing icp.yaml")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to create icp.yaml in; empty means the working directory
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Never prompt
}

func initCommand(out io.Writer, opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, mode.ProjectFileName)

	overwrite := opts.Overwrite
	if _, err := os.Stat(path); err == nil && !overwrite && !opts.NonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("'%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Use --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	written, err := config.InitProject(dir, overwrite)
	if err != nil {
		return err
	}

	if MachineMode() {
		return WriteJSONSuccess(out, map[string]string{"path": written})
	}
	if quietFlag {
		return nil
	}
	fmt.Fprintf(out, "%s Created %s\n\n", ui.SuccessStyle().Render(ui.SymbolSuccess), written)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  icp canister set-id <name> <principal>  - Record a canister id")
	fmt.Fprintln(out, "  icp canister start <name>               - Start it on the default network")
	return nil
}
