// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wandergenie/internal/app"
	"wandergenie/internal/http/handlers"
	httpmiddleware "wandergenie/internal/http/middleware"
	"wandergenie/internal/modules/art"
	"wandergenie/internal/modules/plan"
)

type RouterDeps struct {
	Plans       *plan.Service
	Art         *art.Service
	State       *app.State
	PlanTimeout time.Duration
	// StaticDir serves the browser shell when non-empty.
	StaticDir string
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(httpmiddleware.Logging())
	r.Use(httpmiddleware.Recovery())

	planHandler := handlers.NewPlanHandler(deps.Plans, deps.Art, deps.State, deps.PlanTimeout)
	r.POST("/api/plan", planHandler.Generate)
	r.GET("/api/plan", planHandler.Current)
	r.GET("/api/plan/map", planHandler.MapState)
	r.GET("/api/form-options", planHandler.Options)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if deps.StaticDir != "" {
		r.StaticFile("/", deps.StaticDir+"/index.html")
		r.Static("/static", deps.StaticDir)
	}

	return r
}
