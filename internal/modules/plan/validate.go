// README: All-or-nothing validation of generator payloads into TravelPlan.
package plan

import (
	"encoding/json"
	"fmt"
)

// requiredTopLevel are the fields a payload must carry to be accepted.
var requiredTopLevel = []string{"destination", "itinerary", "accommodations", "totalEstimatedBudget", "currency"}

// requiredActivity are the fields every itinerary activity must carry.
var requiredActivity = []string{"name", "description", "estimatedCost", "timeSlot"}

// Validate coerces a loosely-typed generator payload into a TravelPlan.
// The generator is a trust boundary: required shape is enforced here and
// nowhere else, unknown fields are ignored, and optional fields receive
// defaults. Validation is all-or-nothing; a partially valid plan is an error.
func Validate(payload map[string]any) (*TravelPlan, error) {
	for _, key := range requiredTopLevel {
		if _, ok := payload[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}

	days, ok := payload["itinerary"].([]any)
	if !ok || len(days) == 0 {
		return nil, fmt.Errorf("%w: itinerary is empty", ErrMissingField)
	}
	for di, d := range days {
		day, ok := d.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: itinerary[%d] is not an object", ErrMissingField, di)
		}
		activities, _ := day["activities"].([]any)
		for ai, a := range activities {
			if err := checkActivity(a); err != nil {
				return nil, fmt.Errorf("%w (day %d, activity %d)", err, di+1, ai+1)
			}
		}
	}

	// Shape is acceptable; decode through the typed model. Extra fields
	// drop out here, which keeps the schema forward-compatible.
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	var plan TravelPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	if plan.Sources == nil {
		plan.Sources = []GroundingSource{}
	}
	plan.CurrencySymbol = ResolveSymbol(plan.Currency)
	return &plan, nil
}

func checkActivity(v any) error {
	activity, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: not an object", ErrInvalidActivity)
	}
	for _, key := range requiredActivity {
		if _, ok := activity[key]; !ok {
			return fmt.Errorf("%w: missing %s", ErrInvalidActivity, key)
		}
	}
	coords, ok := activity["coordinates"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: missing coordinates", ErrInvalidActivity)
	}
	if _, ok := coords["lat"]; !ok {
		return fmt.Errorf("%w: coordinates missing lat", ErrInvalidActivity)
	}
	if _, ok := coords["lng"]; !ok {
		return fmt.Errorf("%w: coordinates missing lng", ErrInvalidActivity)
	}
	return nil
}
