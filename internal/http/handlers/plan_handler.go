// README: Plan generation and map snapshot handlers.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wandergenie/internal/app"
	"wandergenie/internal/modules/art"
	"wandergenie/internal/modules/layout"
	"wandergenie/internal/modules/plan"
)

type PlanHandler struct {
	plans       *plan.Service
	art         *art.Service
	state       *app.State
	planTimeout time.Duration
}

func NewPlanHandler(plans *plan.Service, artSvc *art.Service, state *app.State, planTimeout time.Duration) *PlanHandler {
	return &PlanHandler{plans: plans, art: artSvc, state: state, planTimeout: planTimeout}
}

// Generate handles POST /api/plan. On success the current plan is replaced
// wholesale and the illustration fan-out starts in the background; the
// response does not wait for art.
func (h *PlanHandler) Generate(c *gin.Context) {
	var form plan.TripFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := validateForm(&form); msg != "" {
		writeError(c, http.StatusBadRequest, msg)
		return
	}

	if err := h.state.Begin(); err != nil {
		if errors.Is(err, app.ErrRequestInFlight) {
			writeError(c, http.StatusConflict, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	// The state must never stay stuck at loading: a panic past this point
	// would otherwise make every later submit a 409.
	defer func() {
		if r := recover(); r != nil {
			h.state.Fail(GenericPlanError)
			panic(r)
		}
	}()

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.planTimeout)
	defer cancel()

	p, err := h.plans.RequestPlan(ctx, form)
	if err != nil {
		h.state.Fail(GenericPlanError)
		writePlanError(c, err)
		return
	}

	gen, base := h.state.SetPlan(p)
	if len(base) > 0 {
		go h.illustrate(gen, base, p.Destination)
	}

	writeJSON(c, http.StatusOK, p)
}

// illustrate runs the art fan-out detached from the request context; the
// generation token makes a late batch for a superseded plan a no-op.
func (h *PlanHandler) illustrate(gen uint64, base []layout.Node, destination string) {
	illustrated := h.art.Illustrate(context.Background(), base, destination)
	h.state.CompleteArt(gen, illustrated)
}

// Current handles GET /api/plan.
func (h *PlanHandler) Current(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.state.Snapshot())
}

// MapState handles GET /api/plan/map.
func (h *PlanHandler) MapState(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.state.MapSnapshot())
}

// Options handles GET /api/form-options: the vocabularies the intake form offers.
func (h *PlanHandler) Options(c *gin.Context) {
	currencies := make([]gin.H, 0, len(plan.SupportedCurrencies))
	for _, code := range plan.SupportedCurrencies {
		currencies = append(currencies, gin.H{"code": code, "symbol": plan.ResolveSymbol(code)})
	}
	writeJSON(c, http.StatusOK, gin.H{
		"interests":  plan.Interests,
		"currencies": currencies,
	})
}

// validateForm enforces the intake ranges. Returns "" when the form is valid.
func validateForm(form *plan.TripFormData) string {
	form.Destination = strings.TrimSpace(form.Destination)
	form.MustVisitPlaces = strings.TrimSpace(form.MustVisitPlaces)
	switch {
	case form.Destination == "":
		return "destination is required"
	case form.Duration < 1 || form.Duration > 14:
		return "duration must be between 1 and 14 days"
	case form.Travelers < 1 || form.Travelers > 10:
		return "travelers must be between 1 and 10"
	case !plan.SupportedCurrency(form.Currency):
		return "unsupported currency code"
	case form.Budget <= 0:
		return "budget must be positive"
	}
	return ""
}
