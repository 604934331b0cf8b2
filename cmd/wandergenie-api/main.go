// README: Entry point; loads config, wires generators and services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wandergenie/internal/ai"
	"wandergenie/internal/app"
	"wandergenie/internal/config"
	httptransport "wandergenie/internal/http"
	"wandergenie/internal/infra"
	"wandergenie/internal/modules/art"
	"wandergenie/internal/modules/plan"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.PlanModel, cfg.AI.ArtModel)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}

	var cache plan.Cache
	if cfg.Redis.Addr != "" {
		cache = plan.NewStore(infra.NewRedis(cfg.Redis.Addr), cfg.Cache.PlanTTL)
	}

	planSvc := plan.NewService(provider, cache)
	artSvc := art.NewService(provider, cfg.AI.ArtTimeout)
	state := app.NewState(cfg.Map.MaxNodes)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Plans:       planSvc,
		Art:         artSvc,
		State:       state,
		PlanTimeout: cfg.AI.PlanTimeout,
		StaticDir:   "web",
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
