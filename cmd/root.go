package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/harshx-2005/linkup-sub001/internal/config"
	"github.com/harshx-2005/linkup-sub001/internal/logging"
	"github.com/spf13/cobra"
)

const defaultConfigDir = "/etc/linkup.d"

type rootOptions struct {
	configDir string
	logLevel  string
	logFile   string
}

// loadCatalog reads the probe catalog from the configured directory.
func (o *rootOptions) loadCatalog() (*config.Catalog, error) {
	catalog := &config.Catalog{}
	if err := catalog.GenerateFromConfigDir(o.configDir); err != nil {
		return nil, fmt.Errorf("failed while trying to read probe config from dir %q: %w", o.configDir, err)
	}
	return catalog, nil
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "linkup",
		Short:         "linkup - diagnostic probes for generative-AI endpoints",
		Long:          "linkup sends single HTTP probes to text- and image-generation APIs and reports status, headers and body excerpts.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Configure(opts.logLevel, opts.logFile)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configDir, "config-dir", "c", defaultConfigDir, "set directory to where your .hcl probe configs are located")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "additionally write logs to this file, rotated by size")

	rootCmd.AddCommand(
		newVersionCommand(),
		newProbeCommand(opts),
		newTextCommand(),
		newImageCommand(),
		newDBCommand(),
		newValidateCommand(),
		newServeCommand(opts),
		newRemoteCommand(),
	)

	return rootCmd
}

func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), renderError(err))
		os.Exit(1)
	}
}
