package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"wandergenie/internal/ai"
	"wandergenie/internal/modules/layout"
	"wandergenie/internal/modules/plan"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	provider, err := ai.NewGeminiProvider(ctx, apiKey, "gemini-3-pro-preview", "gemini-2.5-flash-image")
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}

	form := plan.TripFormData{
		Destination:         "Jaipur",
		Duration:            2,
		Travelers:           2,
		Budget:              50000,
		Currency:            "INR",
		Interests:           []string{"History", "Food"},
		IncludeHotelCharges: true,
	}
	fmt.Printf("Requesting a %d-day plan for %s...\n", form.Duration, form.Destination)

	svc := plan.NewService(provider, nil)
	result, err := svc.RequestPlan(ctx, form)
	if err != nil {
		log.Fatalf("Error generating plan: %v", err)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))

	nodes := layout.Nodes(result.Itinerary, layout.DefaultMaxNodes)
	fmt.Printf("\nJourney diagram (%d nodes):\n", len(nodes))
	for i, n := range nodes {
		fmt.Printf("  %d. day %d %-40s (%.1f%%, %.1f%%)\n", i+1, n.Day, n.Name, n.X, n.Y)
	}
	if d := layout.PathData(nodes); d != "" {
		fmt.Printf("  path: %s\n", d)
	}
}
