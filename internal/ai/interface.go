package ai

import "context"

// Source is a grounding citation attached by the text model: a web page it
// consulted during generation.
type Source struct {
	Title string
	URI   string
}

// PlanResult is the raw outcome of one plan generation call: the structured
// text payload plus any grounding citations from the response metadata.
type PlanResult struct {
	Text    string
	Sources []Source
}

// PlanGenerator is the text-generation collaborator. Implementations must
// request a payload conforming to the travel plan schema and permit live web
// retrieval for pricing grounding.
type PlanGenerator interface {
	GenerateTravelPlan(ctx context.Context, prompt string) (*PlanResult, error)
}

// ArtGenerator is the image-generation collaborator. A missing illustration
// is not an error: implementations return "" when the model yields no image.
type ArtGenerator interface {
	GenerateLandmarkArt(ctx context.Context, name, destination string) (string, error)
}
