package cmd

import (
	"strconv"

	"github.com/harshx-2005/linkup-sub001/pkg/probe"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTextCommand() *cobra.Command {
	var (
		baseURL string
		prompt  string
		models  []string
	)

	cmd := &cobra.Command{
		Use:   "text",
		Short: "Probe the text-generation API for each model",
		Long: "This command sends one generateContent request per model, one after another.\n\n" +
			"The API key is read from " + probe.APIKeyEnv + ". When it is unset the placeholder " +
			probe.PlaceholderAPIKey + " is sent, so the API answers with an authentication error.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := probe.APIKeyFromEnv()
			if apiKey == probe.PlaceholderAPIKey {
				log.Warnf("%s is not set, sending placeholder key", probe.APIKeyEnv)
			}

			probes, err := probe.TextGenerationProbes(baseURL, apiKey, prompt, models...)
			if err != nil {
				return err
			}

			cmd.PrintErrln(heading("probing %s text-generation models", strconv.Itoa(len(probes))))
			probe.RunSequence(cmd.Context(), cmd.OutOrStdout(), probes...)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", probe.TextGenerationBaseURL, "models endpoint of the text-generation API")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", probe.DefaultTextPrompt, "prompt sent as the single user turn")
	cmd.Flags().StringSliceVarP(&models, "model", "m", probe.DefaultTextModels, "model variants to probe, in order")

	return cmd
}

func newImageCommand() *cobra.Command {
	var (
		baseURL string
		prompts []string
	)

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Probe the image-generation API",
		Long:  "This command sends one HEAD request per prompt, one after another, and reports status, content-type and location.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			probes, err := probe.ImageGenerationProbes(baseURL, prompts...)
			if err != nil {
				return err
			}

			cmd.PrintErrln(heading("probing %s image prompts", strconv.Itoa(len(probes))))
			probe.RunSequence(cmd.Context(), cmd.OutOrStdout(), probes...)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", probe.ImageGenerationBaseURL, "prompt endpoint of the image-generation API")
	cmd.Flags().StringArrayVarP(&prompts, "prompt", "p", probe.DefaultImagePrompts, "prompts to probe, in order")

	return cmd
}
