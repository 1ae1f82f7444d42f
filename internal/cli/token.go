package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/icp/internal/command"
	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/principal"
	"github.com/rileyhilliard/icp/internal/token"
	"github.com/rileyhilliard/icp/internal/ui"
	"github.com/spf13/cobra"
)

var (
	transferFlags  TargetFlags
	transferYes    bool
	transferDryRun bool
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Move tokens between principals",
}

var tokenTransferCmd = &cobra.Command{
	Use:   "transfer <from> <to>",
	Short: "Transfer tokens from one principal to another",
	Long: `Transfer tokens between two principals.

Asks for confirmation when run in a terminal. Without a terminal, pass --yes.

Examples:
  icp token transfer rrkah-fqaaa-aaaaa-aaaaq-cai ryjl3-tyaaa-aaaaa-aaaba-cai
  icp token transfer <from> <to> --network ic --yes`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, a []string) error {
		from, err := parsePrincipalArg("from", a[0])
		if err != nil {
			return err
		}
		to, err := parsePrincipalArg("to", a[1])
		if err != nil {
			return err
		}
		c, err := newContext(transferDryRun)
		if err != nil {
			return err
		}
		targs := token.TransferArgs{From: from, To: to, Network: transferFlags.Network}
		return tokenTransferCommand(cmd.Context(), cmd.OutOrStdout(), c, targs, terminalConfirmer(transferYes))
	},
}

func init() {
	AddNetworkFlag(tokenTransferCmd, &transferFlags)
	tokenTransferCmd.Flags().BoolVarP(&transferYes, "yes", "y", false, "skip the confirmation prompt")
	tokenTransferCmd.Flags().BoolVar(&transferDryRun, "dry-run", false, "validate and resolve without transferring")

	tokenCmd.AddCommand(tokenTransferCmd)
	rootCmd.AddCommand(tokenCmd)
}

// confirmer asks whether to go ahead with a transfer.
type confirmer func(plan token.Plan) (bool, error)

// terminalConfirmer prompts with huh when stdin is a terminal. With --yes it
// always confirms; without a terminal and without --yes it refuses.
func terminalConfirmer(yes bool) confirmer {
	return func(plan token.Plan) (bool, error) {
		if yes {
			return true, nil
		}
		if !ui.IsTerminal(os.Stdin) {
			return false, errors.New(errors.ErrExec,
				"Refusing to transfer without confirmation",
				"No terminal to prompt on; pass --yes to confirm")
		}

		var proceed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Transfer from %s to %s?", plan.From, plan.To)).
					Description("Network: " + plan.URL).
					Value(&proceed),
			),
		)
		if err := form.Run(); err != nil {
			return false, errors.WrapWithCode(err, errors.ErrExec,
				"Failed to get user input",
				"Pass --yes to skip the prompt")
		}
		return proceed, nil
	}
}

func tokenTransferCommand(ctx context.Context, out io.Writer, c *command.Context, a token.TransferArgs, confirm confirmer) error {
	if err := token.CheckTransfer(c, a); err != nil {
		return err
	}

	if !c.DryRun {
		// Resolve first so the prompt can show the actual endpoint.
		probe := *c
		probe.DryRun = true
		preview, err := token.Transfer(ctx, &probe, a)
		if err != nil {
			return err
		}
		ok, err := confirm(preview)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(errors.ErrExec, "Transfer cancelled", "")
		}
	}

	var plan token.Plan
	err := runOperation(c, "Transferring", func() error {
		var err error
		plan, err = token.Transfer(ctx, c, a)
		return err
	})
	if err != nil {
		return err
	}

	if MachineMode() {
		return WriteJSONSuccess(out, plan)
	}
	if quietFlag {
		return nil
	}
	title := fmt.Sprintf("%s Transferred", ui.SuccessStyle().Render(ui.SymbolSuccess))
	if plan.DryRun {
		title = fmt.Sprintf("%s Dry run: token transfer", ui.WarningStyle().Render(ui.SymbolSkipped))
	}
	fmt.Fprint(out, ui.RenderFields(title, []ui.Field{
		{Key: "from", Value: plan.From.String()},
		{Key: "to", Value: plan.To.String()},
		{Key: "network", Value: plan.Network},
		{Key: "url", Value: plan.URL},
	}))
	return nil
}

// parsePrincipalArg parses a positional principal argument.
func parsePrincipalArg(name, text string) (principal.Principal, error) {
	p, err := principal.Parse(text)
	if err != nil {
		return principal.Principal{}, errors.WrapWithCode(err, errors.ErrValidation,
			fmt.Sprintf("<%s> must be a principal", name),
			"Principals look like rrkah-fqaaa-aaaaa-aaaaq-cai")
	}
	return p, nil
}
