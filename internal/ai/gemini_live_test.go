package ai

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"
)

// TestGeminiProvider_Live exercises the real Gemini backend. It is skipped
// unless GEMINI_API_KEY is set, and uses a small flash model so the run stays
// cheap regardless of the production defaults.
func TestGeminiProvider_Live(t *testing.T) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set; skipping live Gemini test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	provider, err := NewGeminiProvider(ctx, apiKey, "gemini-2.0-flash", "gemini-2.5-flash-image")
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}

	result, err := provider.GenerateTravelPlan(ctx,
		"Create a 1-day travel itinerary for 1 person visiting Paris. Return a JSON response following the specified schema.")
	if err != nil {
		t.Fatalf("GenerateTravelPlan: %v", err)
	}
	if strings.TrimSpace(result.Text) == "" {
		t.Fatal("empty plan text from live backend")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(CleanJSONString(result.Text)), &payload); err != nil {
		t.Fatalf("live payload is not JSON: %v\nraw: %s", err, result.Text)
	}
	if _, ok := payload["itinerary"]; !ok {
		t.Errorf("live payload missing itinerary: %v", payload)
	}
	for _, src := range result.Sources {
		if src.URI == "" {
			t.Errorf("normalized source with empty URI: %#v", src)
		}
	}
}
