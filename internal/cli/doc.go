// Package cli implements the icp command-line interface.
//
// Each cobra command parses its arguments into an argument bundle, then
// hands it to the package that owns the operation (canister, token). Those
// packages validate the bundle against the execution mode before loading
// any config, resolve names to principals and URLs, and only then invoke
// the networked operation.
//
// # Command Structure
//
//	icp canister start <canister>         - Start a canister
//	icp canister stop <canister>          - Stop a canister
//	icp canister set-id <name> <id>       - Record a canister id in icp.yaml
//	icp token transfer <from> <to>        - Move tokens
//	icp init                              - Create icp.yaml
//	icp version                           - Print build information
//	icp completion <shell>                - Shell completion
//
// # Modes
//
// The execution mode is found once per invocation: project when an icp.yaml
// exists in the working directory or a parent (or under --project-dir),
// global otherwise or with --global. Names of canisters and networks only
// mean something in project mode.
//
// # Flag Handling
//
// Global flags (--project-dir, --global, --verbose, --quiet, --no-color,
// --json) live on the root command. --network and --environment are
// registered per command through AddTargetFlags and AddNetworkFlag, and
// stay nil when not given so "absent" and "empty" are distinguishable.
//
// # Output
//
// Validation failures print a single diagnostic line and exit 1. With --json
// every result and error is wrapped in JSONEnvelope.
package cli
