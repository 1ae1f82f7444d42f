package cli

import (
	"github.com/rileyhilliard/icp/internal/args"
	"github.com/spf13/cobra"
)

// TargetFlags holds --network and --environment. Nil means the flag was not given.
type TargetFlags struct {
	Network     *args.Network
	Environment *string
}

// AddNetworkFlag registers --network on a command.
func AddNetworkFlag(cmd *cobra.Command, flags *TargetFlags) {
	cmd.Flags().VarP(args.NetworkFlag{Target: &flags.Network}, "network", "n",
		"network name from icp.yaml, or an http(s) URL")
}

// AddTargetFlags registers --network and --environment on a command.
func AddTargetFlags(cmd *cobra.Command, flags *TargetFlags) {
	AddNetworkFlag(cmd, flags)
	cmd.Flags().VarP(args.OptionalString{Target: &flags.Environment}, "environment", "e",
		"environment name from icp.yaml")
}
