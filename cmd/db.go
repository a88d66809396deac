package cmd

import (
	"database/sql"
	"fmt"

	"github.com/harshx-2005/linkup-sub001/pkg/database"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDBCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database utilities",
		Long:  "These commands connect to the MySQL server given by DB_HOST, DB_PORT, DB_USER, DB_PASS and DB_NAME.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "reset",
			Short: "Drop and recreate the database named by DB_NAME",
			Long:  "This command drops the database if it exists and creates it again, empty. All data in it is lost.",
			Args:  cobra.NoArgs,
			RunE: withDatabase(func(cmd *cobra.Command, cfg *database.Config, db *sql.DB) error {
				if err := database.Reset(cmd.Context(), db, cfg.Name); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), styleSuccessBox.Render(fmt.Sprintf("✅ database %s was reset", styleHighlight.Render(cfg.Name))))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "ping",
			Short: "Check that the database server answers",
			Args:  cobra.NoArgs,
			RunE: withDatabase(func(cmd *cobra.Command, cfg *database.Config, db *sql.DB) error {
				if err := database.Ping(cmd.Context(), db); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is alive\n", cfg.Addr())
				return nil
			}),
		},
	)

	return cmd
}

func withDatabase(run func(*cobra.Command, *database.Config, *sql.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := database.ConfigFromEnv()
		if err != nil {
			return err
		}

		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Warnf("failed to close database connection: %s", err)
			}
		}()

		log.WithFields(log.Fields{"host": cfg.Addr(), "user": cfg.User}).Info("connecting to database server")
		return run(cmd, cfg, db)
	}
}
