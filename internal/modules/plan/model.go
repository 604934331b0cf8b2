// README: Travel plan wire model produced by the generation collaborator.
package plan

import "errors"

// Validation errors (payload did not conform to the required shape).
var (
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidActivity = errors.New("invalid activity")
)

// Generation errors (the text-generation call failed or its output was unusable).
var (
	ErrUpstreamFailure = errors.New("generation upstream failure")
	ErrMalformedJSON   = errors.New("malformed generation payload")
	ErrTimeout         = errors.New("generation timed out")
)

// Transport hop types the generator is instructed to use.
const (
	TransportCabPrimary   = "cab-hail-primary"
	TransportCabSecondary = "cab-hail-secondary"
	TransportCombined     = "combined"
	TransportGenericTaxi  = "generic-taxi"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Transportation describes the hop from the previous activity to this one.
type Transportation struct {
	Type          string `json:"type"`
	EstimatedCost string `json:"estimatedCost"`
	Duration      string `json:"duration"`
	Note          string `json:"note,omitempty"`
}

type Activity struct {
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	Location              string          `json:"location"`
	TimeSlot              string          `json:"timeSlot"`
	EstimatedCost         string          `json:"estimatedCost"`
	SourceURL             string          `json:"sourceUrl,omitempty"`
	Coordinates           *LatLng         `json:"coordinates,omitempty"`
	TransportFromPrevious *Transportation `json:"transportFromPrevious,omitempty"`
}

type DayItinerary struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

type Accommodation struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	PriceRange  string  `json:"priceRange"`
	Description string  `json:"description"`
	Link        string  `json:"link,omitempty"`
	Coordinates *LatLng `json:"coordinates,omitempty"`
}

type FoodSuggestion struct {
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	Specialty   string `json:"specialty"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type BudgetItem struct {
	Category      string  `json:"category"`
	EstimatedCost float64 `json:"estimatedCost"`
}

// GroundingSource is a citation attached by the generator: a web page it
// consulted while grounding prices.
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// TravelPlan is the root record, replaced wholesale on every request and
// never mutated in place.
type TravelPlan struct {
	Destination          string            `json:"destination"`
	Duration             int               `json:"duration"`
	Overview             string            `json:"overview"`
	Itinerary            []DayItinerary    `json:"itinerary"`
	Accommodations       []Accommodation   `json:"accommodations"`
	FoodSuggestions      []FoodSuggestion  `json:"foodSuggestions"`
	BudgetBreakdown      []BudgetItem      `json:"budgetBreakdown"`
	TotalEstimatedBudget float64           `json:"totalEstimatedBudget"`
	Currency             string            `json:"currency"`
	CurrencySymbol       string            `json:"currencySymbol"`
	Sources              []GroundingSource `json:"sources"`
}

// TripFormData is the user intake.
type TripFormData struct {
	Destination         string   `json:"destination"`
	Duration            int      `json:"duration"`
	Travelers           int      `json:"travelers"`
	Budget              float64  `json:"budget"`
	Currency            string   `json:"currency"`
	Interests           []string `json:"interests"`
	IncludeHotelCharges bool     `json:"includeHotelCharges"`
	MustVisitPlaces     string   `json:"mustVisitPlaces,omitempty"`
}

// Interests offered by the intake form.
var Interests = []string{
	"History", "Nature", "Food", "Art", "Nightlife",
	"Shopping", "Adventure", "Relaxation", "Architecture", "Photography",
}
