// README: Plan orchestration: prompt -> generator -> parse -> sources -> validate.
package plan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"wandergenie/internal/ai"
)

// Cache stores validated plans keyed by intake fingerprint. Implementations
// must treat misses and backend failures identically (report no hit).
type Cache interface {
	Get(ctx context.Context, key string) (*TravelPlan, bool)
	Set(ctx context.Context, key string, p *TravelPlan)
}

// Service orchestrates plan generation against the external collaborator.
type Service struct {
	generator ai.PlanGenerator
	cache     Cache
}

// NewService creates a Service. cache may be nil to disable caching.
func NewService(generator ai.PlanGenerator, cache Cache) *Service {
	return &Service{generator: generator, cache: cache}
}

// RequestPlan builds the generation instruction from the intake, invokes the
// text collaborator and normalizes its response into a validated TravelPlan.
// The collaborator's output is untrusted input; it never reaches the caller
// without passing Validate. Failures are never retried here — retry is the
// caller's decision.
func (s *Service) RequestPlan(ctx context.Context, form TripFormData) (*TravelPlan, error) {
	key := cacheKey(form)
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, key); ok {
			return p, nil
		}
	}

	result, err := s.generator.GenerateTravelPlan(ctx, BuildPrompt(form))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}

	clean := ai.CleanJSONString(result.Text)
	var payload map[string]any
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		log.Printf("plan: unparseable generation payload: %v; raw: %s", err, clean)
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	// Citations come from response metadata, not the payload itself; merge
	// them in before validation so the validated plan carries them. Entries
	// without a resolvable URI are dropped silently.
	sources := make([]any, 0, len(result.Sources))
	for _, src := range result.Sources {
		if src.URI == "" {
			continue
		}
		sources = append(sources, map[string]any{"title": src.Title, "uri": src.URI})
	}
	payload["sources"] = sources

	plan, err := Validate(payload)
	if err != nil {
		log.Printf("plan: generation payload failed validation: %v; raw: %s", err, clean)
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, plan)
	}
	return plan, nil
}

// cacheKey fingerprints the intake. Struct marshaling has a fixed field
// order, so identical intakes always map to the same key.
func cacheKey(form TripFormData) string {
	raw, err := json.Marshal(form)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
