package plan

import (
	"encoding/json"
	"errors"
	"testing"
)

// minimalPayload returns a payload with only the required fields populated.
func minimalPayload() map[string]any {
	raw := `{
		"destination": "Jaipur",
		"currency": "INR",
		"totalEstimatedBudget": 48000,
		"accommodations": [],
		"itinerary": [
			{
				"day": 1,
				"theme": "Forts",
				"activities": [
					{
						"name": "Amber Fort",
						"description": "Hilltop fort",
						"estimatedCost": "₹500",
						"timeSlot": "09:00 AM - 11:30 AM",
						"coordinates": {"lat": 26.9855, "lng": 75.8513}
					}
				]
			}
		]
	}`
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		panic(err)
	}
	return payload
}

// TestValidate_MinimalPlan verifies a payload with only required fields is
// accepted, with optional fields defaulted.
func TestValidate_MinimalPlan(t *testing.T) {
	p, err := Validate(minimalPayload())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p.Destination != "Jaipur" {
		t.Errorf("destination = %q", p.Destination)
	}
	if p.Sources == nil || len(p.Sources) != 0 {
		t.Errorf("sources should default to an empty slice, got %#v", p.Sources)
	}
	if p.CurrencySymbol != "₹" {
		t.Errorf("currencySymbol = %q, want ₹", p.CurrencySymbol)
	}
	if len(p.Itinerary) != 1 || len(p.Itinerary[0].Activities) != 1 {
		t.Fatalf("itinerary shape wrong: %#v", p.Itinerary)
	}
	act := p.Itinerary[0].Activities[0]
	if act.Coordinates == nil || act.Coordinates.Lat != 26.9855 {
		t.Errorf("coordinates not decoded: %#v", act.Coordinates)
	}
	if act.TransportFromPrevious != nil {
		t.Errorf("transportFromPrevious should be absent, got %#v", act.TransportFromPrevious)
	}
}

func TestValidate_MissingTopLevelField(t *testing.T) {
	for _, field := range []string{"destination", "itinerary", "accommodations", "totalEstimatedBudget", "currency"} {
		payload := minimalPayload()
		delete(payload, field)
		_, err := Validate(payload)
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("missing %s: got %v, want ErrMissingField", field, err)
		}
	}
}

func TestValidate_EmptyItinerary(t *testing.T) {
	payload := minimalPayload()
	payload["itinerary"] = []any{}
	if _, err := Validate(payload); !errors.Is(err, ErrMissingField) {
		t.Errorf("empty itinerary: got %v, want ErrMissingField", err)
	}
}

// TestValidate_IncompleteActivity verifies an activity missing any required
// field fails with ErrInvalidActivity, even when everything else is present.
func TestValidate_IncompleteActivity(t *testing.T) {
	for _, field := range []string{"name", "description", "estimatedCost", "timeSlot", "coordinates"} {
		payload := minimalPayload()
		day := payload["itinerary"].([]any)[0].(map[string]any)
		activity := day["activities"].([]any)[0].(map[string]any)
		delete(activity, field)
		_, err := Validate(payload)
		if !errors.Is(err, ErrInvalidActivity) {
			t.Errorf("activity missing %s: got %v, want ErrInvalidActivity", field, err)
		}
	}
}

func TestValidate_CoordinatesMissingAxis(t *testing.T) {
	for _, axis := range []string{"lat", "lng"} {
		payload := minimalPayload()
		day := payload["itinerary"].([]any)[0].(map[string]any)
		activity := day["activities"].([]any)[0].(map[string]any)
		coords := activity["coordinates"].(map[string]any)
		delete(coords, axis)
		if _, err := Validate(payload); !errors.Is(err, ErrInvalidActivity) {
			t.Errorf("coordinates missing %s: got %v, want ErrInvalidActivity", axis, err)
		}
	}
}

// TestValidate_UnknownFieldsIgnored verifies forward compatibility: extra
// fields anywhere in the payload are dropped, not rejected.
func TestValidate_UnknownFieldsIgnored(t *testing.T) {
	payload := minimalPayload()
	payload["futureFeature"] = map[string]any{"x": 1}
	day := payload["itinerary"].([]any)[0].(map[string]any)
	day["mood"] = "sunny"
	p, err := Validate(payload)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p.Destination != "Jaipur" {
		t.Errorf("destination = %q", p.Destination)
	}
}

func TestValidate_BudgetBreakdownDecoded(t *testing.T) {
	payload := minimalPayload()
	payload["budgetBreakdown"] = []any{
		map[string]any{"category": "Food", "estimatedCost": 8000.0},
		map[string]any{"category": "Local Transport", "estimatedCost": 4000.0},
	}
	p, err := Validate(payload)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(p.BudgetBreakdown) != 2 || p.BudgetBreakdown[1].EstimatedCost != 4000 {
		t.Errorf("budgetBreakdown = %#v", p.BudgetBreakdown)
	}
	// The advisory total/sum relationship is surfaced as given, never enforced.
	if p.TotalEstimatedBudget != 48000 {
		t.Errorf("totalEstimatedBudget = %v", p.TotalEstimatedBudget)
	}
}
