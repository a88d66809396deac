package cmd

import (
	"fmt"

	"github.com/harshx-2005/linkup-sub001/pkg/cli"
	"github.com/spf13/cobra"
)

func newRemoteCommand() *cobra.Command {
	var apiAddress string

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Query a running linkup probe server",
		Long:  "These commands talk to `linkup serve`, over TCP (http://host:port) or a unix socket (unix:///path.sock).",
	}
	cmd.PersistentFlags().StringVar(&apiAddress, "api-address", cli.DefaultAPIAddress, "address of the probe server")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the status of every configured probe",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				resp := cli.NewAPIClient(apiAddress).Status()
				if resp.Err() != nil {
					return fmt.Errorf("failed to get probe status: %w", resp.Err())
				}
				return resp.Print(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:        "probe <name>",
			Args:       cobra.ExactArgs(1),
			ArgAliases: []string{"name"},
			Short:      "Run a single configured probe",
			RunE: func(cmd *cobra.Command, args []string) error {
				resp := cli.NewAPIClient(apiAddress).Probe(args[0])
				if resp.Err() != nil {
					return fmt.Errorf("failed to run probe %s: %w", args[0], resp.Err())
				}
				return resp.Print(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Stream probe reports as the server runs them",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return cli.NewAPIClient(apiAddress).Stream().Print(cmd.OutOrStdout())
			},
		},
	)

	return cmd
}
