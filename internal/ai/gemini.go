package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements PlanGenerator and ArtGenerator using Google's
// Gemini models.
type GeminiProvider struct {
	client    *genai.Client
	planModel string
	artModel  string
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey, planModel, artModel string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{
		client:    client,
		planModel: planModel,
		artModel:  artModel,
	}, nil
}

// GenerateTravelPlan asks the text model for a structured itinerary. The call
// enables the Google Search tool so pricing can be grounded against the live
// web, forces JSON output against travelPlanSchema, and collects any web
// grounding chunks from the response metadata as citation sources.
func (p *GeminiProvider) GenerateTravelPlan(ctx context.Context, prompt string) (*PlanResult, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.planModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType: "application/json",
		ResponseSchema:   travelPlanSchema,
		// Creative but structured output.
		Temperature: genai.Ptr[float32](0.4),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}
	candidate := resp.Candidates[0]

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("empty text response from Gemini")
	}

	return &PlanResult{Text: text.String(), Sources: webSources(candidate.GroundingMetadata)}, nil
}

// webSources extracts citation sources from response grounding metadata.
// Entries without a resolvable URI are dropped silently; entries without a
// title keep a generic label.
func webSources(md *genai.GroundingMetadata) []Source {
	if md == nil {
		return nil
	}
	var sources []Source
	for _, chunk := range md.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "External Source"
		}
		sources = append(sources, Source{Title: title, URI: chunk.Web.URI})
	}
	return sources
}

// GenerateLandmarkArt asks the image model for a decorative illustration of a
// single landmark and returns it as an embeddable data URI. No inline image
// in the response is not an error; callers treat "" as "no art".
func (p *GeminiProvider) GenerateLandmarkArt(ctx context.Context, name, destination string) (string, error) {
	prompt := fmt.Sprintf("A clean, high-quality digital travel illustration of %q in %s. Minimalist aesthetic, soft colors, sharp focus, professional travel guide style. White background.", name, destination)

	resp, err := p.client.Models.GenerateContent(ctx, p.artModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: "1:1"},
	})
	if err != nil {
		return "", fmt.Errorf("gemini art error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return fmt.Sprintf("data:%s;base64,%s",
				part.InlineData.MIMEType,
				base64.StdEncoding.EncodeToString(part.InlineData.Data)), nil
		}
	}
	return "", nil
}

// CleanJSONString removes markdown code blocks if present (e.g. ```json ... ```).
// JSON mode should make this unnecessary, but stray fences have been observed.
func CleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
