package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rileyhilliard/icp/internal/args"
	"github.com/rileyhilliard/icp/internal/canister"
	"github.com/rileyhilliard/icp/internal/command"
	"github.com/rileyhilliard/icp/internal/ui"
	"github.com/spf13/cobra"
)

var (
	canisterStartFlags TargetFlags
	canisterStopFlags  TargetFlags
	canisterStartDry   bool
	canisterStopDry    bool
	canisterSetIDNet   string
)

var canisterCmd = &cobra.Command{
	Use:   "canister",
	Short: "Start, stop and locate canisters",
}

var canisterStartCmd = &cobra.Command{
	Use:   "start <canister>",
	Short: "Start a canister",
	Long: `Start a stopped canister.

The canister is a name from icp.yaml or a principal. Outside a project only
principals are accepted, and --network must be a URL.

Examples:
  icp canister start backend
  icp canister start backend --environment staging
  icp canister start ryjl3-tyaaa-aaaaa-aaaba-cai --network https://icp-api.io --global`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, a []string) error {
		c, err := newContext(canisterStartDry)
		if err != nil {
			return err
		}
		return canisterStartCommand(cmd.Context(), cmd.OutOrStdout(), c, lifecycleArgs(a[0], canisterStartFlags))
	},
}

var canisterStopCmd = &cobra.Command{
	Use:   "stop <canister>",
	Short: "Stop a canister",
	Long: `Stop a running canister.

Arguments and flags are the same as for 'icp canister start'.

Examples:
  icp canister stop backend
  icp canister stop backend --network ic`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, a []string) error {
		c, err := newContext(canisterStopDry)
		if err != nil {
			return err
		}
		return canisterStopCommand(cmd.Context(), cmd.OutOrStdout(), c, lifecycleArgs(a[0], canisterStopFlags))
	},
}

var canisterSetIDCmd = &cobra.Command{
	Use:   "set-id <canister> <principal>",
	Short: "Record a canister id in icp.yaml",
	Long: `Record which principal a named canister has on a network.

Comments and formatting in icp.yaml are preserved.

Examples:
  icp canister set-id backend rrkah-fqaaa-aaaaa-aaaaq-cai
  icp canister set-id backend ryjl3-tyaaa-aaaaa-aaaba-cai --network ic`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, a []string) error {
		id, err := parsePrincipalArg("principal", a[1])
		if err != nil {
			return err
		}
		c, err := newContext(false)
		if err != nil {
			return err
		}
		return canisterSetIDCommand(cmd.OutOrStdout(), c, canister.SetIDArgs{Name: a[0], ID: id, Network: canisterSetIDNet})
	},
}

func init() {
	AddTargetFlags(canisterStartCmd, &canisterStartFlags)
	canisterStartCmd.Flags().BoolVar(&canisterStartDry, "dry-run", false, "validate and resolve without starting")

	AddTargetFlags(canisterStopCmd, &canisterStopFlags)
	canisterStopCmd.Flags().BoolVar(&canisterStopDry, "dry-run", false, "validate and resolve without stopping")

	canisterSetIDCmd.Flags().StringVarP(&canisterSetIDNet, "network", "n", "", "network name (default \"local\")")

	canisterCmd.AddCommand(canisterStartCmd)
	canisterCmd.AddCommand(canisterStopCmd)
	canisterCmd.AddCommand(canisterSetIDCmd)
	rootCmd.AddCommand(canisterCmd)
}

func lifecycleArgs(target string, flags TargetFlags) canister.LifecycleArgs {
	return canister.LifecycleArgs{
		Canister:    args.ParseCanister(target),
		Network:     flags.Network,
		Environment: flags.Environment,
	}
}

func canisterStartCommand(ctx context.Context, out io.Writer, c *command.Context, a canister.LifecycleArgs) error {
	sa := canister.StartArgs{LifecycleArgs: a}
	if err := canister.CheckStart(c, sa); err != nil {
		return err
	}

	var plan canister.Plan
	err := runOperation(c, "Starting "+a.Canister.Text(), func() error {
		var err error
		plan, err = canister.Start(ctx, c, sa)
		return err
	})
	if err != nil {
		return err
	}
	return printCanisterPlan(out, plan)
}

func canisterStopCommand(ctx context.Context, out io.Writer, c *command.Context, a canister.LifecycleArgs) error {
	sa := canister.StopArgs{LifecycleArgs: a}
	if err := canister.CheckStop(c, sa); err != nil {
		return err
	}

	var plan canister.Plan
	err := runOperation(c, "Stopping "+a.Canister.Text(), func() error {
		var err error
		plan, err = canister.Stop(ctx, c, sa)
		return err
	})
	if err != nil {
		return err
	}
	return printCanisterPlan(out, plan)
}

func canisterSetIDCommand(out io.Writer, c *command.Context, a canister.SetIDArgs) error {
	if err := canister.SetID(c, a); err != nil {
		return err
	}
	if MachineMode() {
		return WriteJSONSuccess(out, map[string]string{"canister": a.Name, "id": a.ID.String()})
	}
	if !quietFlag {
		fmt.Fprintf(out, "%s Recorded %s as %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), a.Name, a.ID)
	}
	return nil
}

func printCanisterPlan(out io.Writer, plan canister.Plan) error {
	if MachineMode() {
		return WriteJSONSuccess(out, plan)
	}
	if quietFlag {
		return nil
	}

	title := fmt.Sprintf("%s Canister %s", ui.SuccessStyle().Render(ui.SymbolSuccess), plan.Operation)
	if plan.DryRun {
		title = fmt.Sprintf("%s Dry run: canister %s", ui.WarningStyle().Render(ui.SymbolSkipped), plan.Operation)
	}
	fmt.Fprint(out, ui.RenderFields(title, []ui.Field{
		{Key: "canister", Value: plan.Canister.String()},
		{Key: "network", Value: plan.Network},
		{Key: "url", Value: plan.URL},
	}))
	return nil
}
