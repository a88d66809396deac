package probe

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/harshx-2005/linkup-sub001/internal/helper"
	"github.com/pkg/errors"
)

const (
	TextGenerationBaseURL  = "https://generativelanguage.googleapis.com/v1beta/models"
	ImageGenerationBaseURL = "https://image.pollinations.ai/prompt"

	APIKeyEnv = "GEMINI_API_KEY"

	// PlaceholderAPIKey is sent when GEMINI_API_KEY is unset, so the API
	// answers with an authentication error right away.
	PlaceholderAPIKey = "YOUR_API_KEY"

	DefaultTextPrompt = "Say hello in one short sentence."
)

var DefaultTextModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-2.0-flash",
}

var DefaultImagePrompts = []string{
	"a red apple on a wooden table",
	"sunset over snowy mountains",
}

// APIKeyFromEnv reads the text-generation API key, falling back to
// PlaceholderAPIKey.
func APIKeyFromEnv() string {
	return helper.EnvOrDefault(APIKeyEnv, PlaceholderAPIKey)
}

type textPart struct {
	Text string `json:"text"`
}

type textTurn struct {
	Role  string     `json:"role"`
	Parts []textPart `json:"parts"`
}

type textRequest struct {
	Contents []textTurn `json:"contents"`
}

// TextGenerationPayload builds a request body holding a single user turn.
func TextGenerationPayload(prompt string) ([]byte, error) {
	out, err := json.Marshal(textRequest{
		Contents: []textTurn{{Role: "user", Parts: []textPart{{Text: prompt}}}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode text-generation payload")
	}
	return out, nil
}

// TextGenerationProbes returns one POST probe per model, in the given order.
func TextGenerationProbes(baseURL, apiKey, prompt string, models ...string) ([]Probe, error) {
	if len(models) == 0 {
		models = DefaultTextModels
	}

	payload, err := TextGenerationPayload(prompt)
	if err != nil {
		return nil, err
	}

	baseURL = strings.TrimRight(baseURL, "/")
	probes := make([]Probe, 0, len(models))

	for _, model := range models {
		target := fmt.Sprintf("%s/%s:generateContent?key=%s", baseURL, url.PathEscape(model), url.QueryEscape(apiKey))

		p, err := NewHTTP(model, MethodPost, target, payload)
		if err != nil {
			return nil, err
		}
		probes = append(probes, p)
	}

	return probes, nil
}

// ImageGenerationProbes returns one HEAD probe per prompt, with the prompt
// URL-encoded into the path.
func ImageGenerationProbes(baseURL string, prompts ...string) ([]Probe, error) {
	if len(prompts) == 0 {
		prompts = DefaultImagePrompts
	}

	baseURL = strings.TrimRight(baseURL, "/")
	probes := make([]Probe, 0, len(prompts))

	for i, prompt := range prompts {
		target := fmt.Sprintf("%s/%s", baseURL, url.PathEscape(prompt))

		p, err := NewHTTP(fmt.Sprintf("image %d", i+1), MethodHead, target, nil)
		if err != nil {
			return nil, err
		}
		probes = append(probes, p)
	}

	return probes, nil
}
