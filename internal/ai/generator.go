// Package ai generates internship descriptions through an external
// text-generation endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// FallbackEmpty is shown when the upstream answers with no text.
	FallbackEmpty = "Failed to generate. Please input manually."
	// FallbackError is shown when the call fails outright.
	FallbackError = "Something went wrong with the AI assistant."
)

// Generator calls a Gemini-style generateContent endpoint over HTTP.
// Failures are never surfaced to callers: the result is always a string
// the UI can display, falling back to a fixed placeholder.
type Generator struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     logrus.FieldLogger
}

func NewGenerator(baseURL, apiKey, model string, logger logrus.FieldLogger) *Generator {
	return &Generator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate produces a job description for the given role. One outbound
// request, no retry; both outcomes are plain strings for the caller.
func (g *Generator) Generate(ctx context.Context, title, industry string, skills []string) string {
	prompt := buildPrompt(title, industry, skills)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		g.logger.Warnf("ai generation: encode request: %v", err)
		return FallbackError
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		g.logger.Warnf("ai generation: build request: %v", err)
		return FallbackError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warnf("ai generation: %v", err)
		return FallbackError
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstream, _ := io.ReadAll(resp.Body)
		g.logger.Warnf("ai generation: upstream returned %d: %s", resp.StatusCode, upstream)
		return FallbackError
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		g.logger.Warnf("ai generation: decode response: %v", err)
		return FallbackError
	}

	text := extractText(result)
	if text == "" {
		return FallbackEmpty
	}
	return text
}

func buildPrompt(title, industry string, skills []string) string {
	return fmt.Sprintf(`Act as a senior hiring manager. Write a professional, punchy, and modern job description for an internship.
Role: %s
Industry: %s
Key Skills: %s

Focus on learning outcomes, exciting projects, and clear expectations.
Output only the job description. Keep it concise (under 120 words).`,
		title, industry, strings.Join(skills, ", "))
}

func extractText(result generateResponse) string {
	for _, candidate := range result.Candidates {
		for _, p := range candidate.Content.Parts {
			if strings.TrimSpace(p.Text) != "" {
				return p.Text
			}
		}
	}
	return ""
}
