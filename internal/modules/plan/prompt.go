// README: Builds the natural-language generation instruction from trip intake.
package plan

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildPrompt constructs the instruction for the text-generation collaborator.
// The response shape itself is declared separately (ai package); the prompt
// carries the requirements the schema cannot express: grounded cab pricing,
// per-hop transport estimates, currency discipline and must-visit handling.
func BuildPrompt(form TripFormData) string {
	budget := formatAmount(form.Budget)

	var budgetContext string
	if form.IncludeHotelCharges {
		budgetContext = fmt.Sprintf("The total budget of %s %s MUST include the cost of all accommodations/hotels for the entire stay.", form.Currency, budget)
	} else {
		budgetContext = fmt.Sprintf("The total budget of %s %s is strictly for activities, local transport, and food. DO NOT include hotel/accommodation costs.", form.Currency, budget)
	}

	var mustVisitContext string
	if form.MustVisitPlaces != "" {
		mustVisitContext = fmt.Sprintf("The user has specified these MUST-VISIT locations: %q. You MUST include these in the itinerary and prioritize them, ensuring they fit within the allocated budget and travel logistics.", form.MustVisitPlaces)
	}

	return fmt.Sprintf(`Create a highly personalized, detailed %d-day travel itinerary for %d people visiting %s.
%s
User interests: %s.
%s

CRITICAL REAL-TIME TRANSPORT AND MAPPING REQUIREMENTS:
1. Use Google Search to find ESTIMATED current ride-hailing cab prices (the primary and secondary services operating in %s, or the local equivalents) for the destination.
2. For every activity (except the first one of the day), provide 'transportFromPrevious' which includes the estimated cost of a cab/transport between the previous location and this one. Its 'type' must be one of: %q (primary ride-hailing service), %q (secondary/local service), %q (either works), %q (regular taxi).
3. Include a category "Local Transport" in the budget breakdown that sums up these estimates.
4. Provide precise latitude and longitude 'coordinates' as {lat: number, lng: number} for ALL activities and accommodations.

CURRENCY AND COST REQUIREMENTS:
1. ALL costs MUST be in %s. Use the appropriate currency symbol.
2. Use high-authority sources for entry fees.
3. Ensure the 'totalEstimatedBudget' returned in the JSON is in %s.

STANDARD REQUIREMENTS:
1. Provide a chronological timetable with 'timeSlot'.
2. Return a JSON response following the specified schema.`,
		form.Duration, form.Travelers, form.Destination,
		budgetContext,
		strings.Join(form.Interests, ", "),
		mustVisitContext,
		form.Destination,
		TransportCabPrimary, TransportCabSecondary, TransportCombined, TransportGenericTaxi,
		form.Currency, form.Currency)
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
