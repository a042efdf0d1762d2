package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GeminiClient calls the generative-language HTTP API. The reply is expected
// under candidates[0].content.parts[0].text; anything else is an error and
// the caller substitutes the fallback string.
type GeminiClient struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewGeminiClient(apiURL, apiKey string) *GeminiClient {
	return &GeminiClient{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) Generate(ctx context.Context, message, language, systemContext string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini: api key not configured")
	}

	prompt := fmt.Sprintf(
		"You are a smart AI assistant for a lab management system. Context: %s. Language: %s. User question: %s. Please provide helpful and accurate responses about lab equipment, booking procedures, and system usage.",
		systemContext, language, message,
	)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL+"?key="+g.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 ||
		len(out.Candidates[0].Content.Parts) == 0 ||
		out.Candidates[0].Content.Parts[0].Text == "" {
		return "", fmt.Errorf("gemini: malformed response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
