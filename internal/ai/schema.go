// README: Machine-readable response-shape declaration for plan generation.
package ai

import "google.golang.org/genai"

// travelPlanSchema mirrors the plan wire model. The generator is asked to
// satisfy it, but the payload is still validated on arrival; the declaration
// is a request, not a guarantee.
var travelPlanSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"destination": {Type: genai.TypeString},
		"duration":    {Type: genai.TypeNumber},
		"overview":    {Type: genai.TypeString},
		"itinerary": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"day":   {Type: genai.TypeNumber},
					"theme": {Type: genai.TypeString},
					"activities": {
						Type:  genai.TypeArray,
						Items: activitySchema,
					},
				},
				Required: []string{"day", "activities"},
			},
		},
		"accommodations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"type":        {Type: genai.TypeString},
					"priceRange":  {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"link":        {Type: genai.TypeString},
					"coordinates": coordinatesSchema,
				},
				Required: []string{"name", "type", "priceRange", "coordinates"},
			},
		},
		"foodSuggestions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"cuisine":     {Type: genai.TypeString},
					"specialty":   {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"link":        {Type: genai.TypeString},
				},
				Required: []string{"name", "cuisine"},
			},
		},
		"budgetBreakdown": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category":      {Type: genai.TypeString},
					"estimatedCost": {Type: genai.TypeNumber},
				},
				Required: []string{"category", "estimatedCost"},
			},
		},
		"totalEstimatedBudget": {Type: genai.TypeNumber},
		"currency":             {Type: genai.TypeString},
	},
	Required: []string{"destination", "itinerary", "accommodations", "totalEstimatedBudget", "currency"},
}

var coordinatesSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"lat": {Type: genai.TypeNumber},
		"lng": {Type: genai.TypeNumber},
	},
	Required: []string{"lat", "lng"},
}

var activitySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":          {Type: genai.TypeString},
		"description":   {Type: genai.TypeString},
		"location":      {Type: genai.TypeString},
		"timeSlot":      {Type: genai.TypeString},
		"estimatedCost": {Type: genai.TypeString},
		"sourceUrl":     {Type: genai.TypeString},
		"coordinates":   coordinatesSchema,
		"transportFromPrevious": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"type":          {Type: genai.TypeString},
				"estimatedCost": {Type: genai.TypeString},
				"duration":      {Type: genai.TypeString},
				"note":          {Type: genai.TypeString},
			},
			Required: []string{"type", "estimatedCost", "duration"},
		},
	},
	Required: []string{"name", "description", "estimatedCost", "timeSlot", "coordinates"},
}
