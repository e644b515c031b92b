// skillz/llm_processor.go
package skillz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

////////////////////////////////////////////////////////////////////////

// skillExtractionPrompt asks the model for a raw, non-standardized JSON array.
// Canonicalization happens on our side through the alias map.
const skillExtractionPrompt = `
You help people on a skill-exchange platform describe what they can teach and what they want to learn.
Extract the teachable skills mentioned in the text below.

RULES:
1.  A skill is something one person could teach another in a few sessions: a language ("Spanish"),
    an instrument ("Guitar"), a tool or framework ("React"), a craft ("Watercolor Painting").
2.  Do NOT extract goals, moods or one-off activities ("get better at interviews", "moving house").
3.  Keep each skill short, two or three words at most.
4.  Do NOT standardize aliases (if you see 'js' and 'javascript', extract both).
5.  Return the result as a single, flat JSON array of strings and nothing else.

Text: """
%s
"""`

// DefaultGeminiURL is used when no endpoint is configured.
const DefaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

////////////////////////////////////////////////////////////////////////

// LLMClient defines an interface for making LLM calls.
type LLMClient interface {
	CallLLM(ctx context.Context, prompt string) (string, error)
}

////////////////////////////////////////////////////////////////////////

// GeminiLLMClient calls the Gemini generateContent endpoint.
type GeminiLLMClient struct {
	apiKey string
	url    string
	client *http.Client
}

// NewGeminiLLMClient builds a Gemini client. An empty url selects DefaultGeminiURL.
func NewGeminiLLMClient(apiKey, url string, client *http.Client) *GeminiLLMClient {
	if url == "" {
		url = DefaultGeminiURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &GeminiLLMClient{apiKey: apiKey, url: url, client: client}
}

// GeminiResponse maps only the fields needed to pull out the model's text.
type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

////////////////////////////////////////////////////////////////////////
// Struct and Constructor
////////////////////////////////////////////////////////////////////////

// LLMProcessor implements Processor using a Large Language Model.
type LLMProcessor struct {
	aliasMap  map[string]string // normalized alias -> canonical name
	llmClient LLMClient
}

// NewLLMProcessor creates a new LLMProcessor. Alias keys are normalized
// here so callers may pass them in any case.
func NewLLMProcessor(aliasMap map[string]string, llmClient LLMClient) Processor {
	normalized := make(map[string]string, len(aliasMap))
	for alias, canonical := range aliasMap {
		normalized[NormalizeTag(alias)] = canonical
	}
	return &LLMProcessor{
		aliasMap:  normalized,
		llmClient: llmClient,
	}
}

////////////////////////////////////////////////////////////////////////
// Public Methods (Interface Implementation)
////////////////////////////////////////////////////////////////////////

// SuggestSkills asks the LLM for raw skills, then canonicalizes them.
func (p *LLMProcessor) SuggestSkills(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	prompt := fmt.Sprintf(skillExtractionPrompt, text)

	llmResponse, err := p.llmClient.CallLLM(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("skill extraction LLM call failed: %w", err)
	}

	var rawSkills []any
	if err := json.Unmarshal([]byte(stripCodeFence(llmResponse)), &rawSkills); err != nil {
		return nil, fmt.Errorf("failed to parse LLM skill output as JSON array: %s", llmResponse)
	}

	return p.canonicalize(rawSkills), nil
}

////////////////////////////////////////////////////////////////////////
// Private Helper Methods
////////////////////////////////////////////////////////////////////////

// CallLLM implements the LLMClient interface using the Gemini API.
func (g *GeminiLLMClient) CallLLM(ctx context.Context, prompt string) (string, error) {
	requestBody := map[string]any{
		"contents": []map[string]any{{"parts": []map[string]string{{"text": prompt}}}},
	}
	bodyBytes, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned non-200 status: %s", resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp GeminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal api response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("unexpected LLM response format: no content found")
	}

	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}

// canonicalize maps each raw skill through the alias map and returns the
// deduplicated tag list. Unknown skills pass through as plain tags.
func (p *LLMProcessor) canonicalize(rawSkills []any) []string {
	resolved := make([]string, 0, len(rawSkills))
	for _, tag := range NormalizeSkills(rawSkills).Values() {
		if canonical, ok := p.aliasMap[tag]; ok {
			tag = canonical
		}
		resolved = append(resolved, tag)
	}
	// Canonical names are display-cased; fold them back into tags.
	return NormalizeSkills(resolved).Values()
}

// stripCodeFence removes a ```json ... ``` wrapper models sometimes add.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
