package cmd

import (
	"fmt"
	"strings"

	"github.com/harshx-2005/linkup-sub001/pkg/probe"
	"github.com/spf13/cobra"
)

func newProbeCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Send single HTTP probes",
		Long:  "This command sends HEAD or POST probes and reports their outcome. A failing probe does not make the command fail.",
	}

	cmd.AddCommand(
		buildSingleProbeCommand(probe.MethodHead, "Send a HEAD probe", "Reports the status code and the content-type and location headers."),
		buildSingleProbeCommand(probe.MethodPost, "Send a POST probe", "Reports the status code and, unless it is 200, the first characters of the response body."),
		newProbeRunCommand(root),
	)

	return cmd
}

func buildSingleProbeCommand(method, shortDesc, longDesc string) *cobra.Command {
	var (
		label string
		data  string
	)

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <url>", strings.ToLower(method)),
		Args:  cobra.ExactArgs(1),
		Short: shortDesc,
		Long:  longDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := probe.NewHTTP(label, method, args[0], []byte(data))
			if err != nil {
				return err
			}

			probe.RunSequence(cmd.Context(), cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "label prefixed to every report line")
	if method == probe.MethodPost {
		cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload to send")
	}

	return cmd
}

func newProbeRunCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [probe...]",
		Short: "Run configured probes one after another",
		Long:  "This command runs the probes declared in the config directory, in declaration order or in the order given as arguments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := root.loadCatalog()
			if err != nil {
				return err
			}

			selected, missing := catalog.Select(args...)
			if len(missing) > 0 {
				return fmt.Errorf("unknown probes: %s (configured: %s)", strings.Join(missing, ", "), strings.Join(catalog.Names(), ", "))
			}

			probes, err := probe.BuildFromCatalog(selected)
			if err != nil {
				return err
			}

			probe.RunSequence(cmd.Context(), cmd.OutOrStdout(), probes...)
			return nil
		},
	}
}
