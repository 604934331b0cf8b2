// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wandergenie/internal/modules/plan"
)

type errorResponse struct {
	Error string `json:"error"`
}

// GenericPlanError is the single user-facing failure message for every
// generation or schema error; collaborator diagnostics stay in the logs.
const GenericPlanError = "Something went wrong while generating your plan. Please try again."

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, plan.ErrTimeout):
		writeError(c, http.StatusGatewayTimeout, GenericPlanError)
	case errors.Is(err, plan.ErrUpstreamFailure),
		errors.Is(err, plan.ErrMalformedJSON),
		errors.Is(err, plan.ErrMissingField),
		errors.Is(err, plan.ErrInvalidActivity):
		writeError(c, http.StatusBadGateway, GenericPlanError)
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
