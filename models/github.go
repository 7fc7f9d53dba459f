package models

import (
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms/openai"
)

// GitHubModelsBaseURL is the OpenAI-compatible endpoint of the GitHub Models
// API; chat completions are served under {baseURL}/chat/completions.
const GitHubModelsBaseURL = "https://models.github.ai/inference"

// githubHeaderTransport pins the GitHub API version on every outgoing
// request.
type githubHeaderTransport struct {
	base http.RoundTripper
}

func (t *githubHeaderTransport) RoundTrip(
	req *http.Request,
) (*http.Response, error) {
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	return t.base.RoundTrip(req)
}

// NewGitHubCopilotModel builds an oracle that completes prompts through the
// GitHub Models API.
//
// Authentication uses a fine-grained GitHub Personal Access Token carrying
// the models:read account permission. Model identifiers carry their
// publisher as a prefix:
//
//	"openai/gpt-4.1"
//	"openai/gpt-4o-mini"
//	"meta/llama-4-scout"
//
// Extra openai.Option values are applied after the GitHub defaults, so
// callers can override any of them.
func NewGitHubCopilotModel(
	model string,
	token string,
	opts ...openai.Option,
) (*LCGWrapper, error) {
	if token == "" {
		return nil, fmt.Errorf(
			"missing github token: a fine-grained PAT with the models:read " +
				"permission is required " +
				"(https://github.com/settings/personal-access-tokens/new)")
	}

	baseOpts := []openai.Option{
		openai.WithBaseURL(GitHubModelsBaseURL),
		openai.WithToken(token),
		openai.WithModel(model),
		openai.WithHTTPClient(&http.Client{
			Transport: &githubHeaderTransport{base: http.DefaultTransport},
		}),
	}

	llm, err := openai.New(append(baseOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connect to GitHub Models: %w", err)
	}

	return NewLCGWrapper(llm).WithModelName(model), nil
}
