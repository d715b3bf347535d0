package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"noteswise-be/pkg/summarizer"
)

const defaultBaseURL = "https://api.openai.com/v1/responses"

type OpenAIProvider struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

// Ensure OpenAIProvider implements Provider
var _ summarizer.Provider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		APIKey:  apiKey,
		Model:   "gpt-4o-mini",
		BaseURL: defaultBaseURL,
		Client:  &http.Client{},
	}
}

// --- Request/Response structs (Internal to this package) ---

type openAIRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type openAIContent struct {
	Text string `json:"text"`
}

type openAIOutput struct {
	Content []openAIContent `json:"content"`
}

type openAIResponse struct {
	Output []openAIOutput `json:"output"`
}

// --- Interface Implementation ---

func (o *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	payload := openAIRequest{
		Model: o.Model,
		Input: prompt,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.BaseURL, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+o.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := o.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var openAIRes openAIResponse
	if err := json.Unmarshal(resBody, &openAIRes); err != nil {
		return "", err
	}

	if len(openAIRes.Output) == 0 || len(openAIRes.Output[0].Content) == 0 {
		return "", fmt.Errorf("empty response from openai")
	}

	return openAIRes.Output[0].Content[0].Text, nil
}
