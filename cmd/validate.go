package cmd

import (
	"github.com/harshx-2005/linkup-sub001/pkg/jsoncheck"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	var (
		file      string
		printDoc  bool
		withColor bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a file is valid JSON",
		Long:  "This command parses a file as JSON and reports the verdict. It reports, it does not enforce: the exit code is 0 either way.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			data, err := jsoncheck.Validate(file)
			jsoncheck.Report(out, file, err)

			if err == nil && printDoc {
				_, _ = out.Write(jsoncheck.Pretty(data, withColor))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", jsoncheck.DefaultPath, "JSON file to validate")
	cmd.Flags().BoolVar(&printDoc, "print", false, "pretty print the document when it is valid")
	cmd.Flags().BoolVar(&withColor, "color", true, "colour pretty printed output")

	return cmd
}
