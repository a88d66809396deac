package cmd

import (
	"os/signal"
	"syscall"

	"github.com/harshx-2005/linkup-sub001/pkg/probe"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the configured probes over HTTP",
		Long: "This command serves /status, /v1/probe/{name} and the websocket /v1/stream.\n" +
			"Every request runs the configured probes one after another.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := root.loadCatalog()
			if err != nil {
				return err
			}

			handler, err := probe.NewProbeHandler(catalog)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if err := probe.RunProbeServer(ctx, handler, listenAddr); err != nil {
				return err
			}

			log.Info("probe server stopped without error")
			return nil
		},
	}

	cmd.Flags().StringVarP(&listenAddr, "listen", "l", ":9102", "address to listen for probe requests")

	return cmd
}
