// README: Concurrent landmark illustration fan-out with per-node isolation.
package art

import (
	"context"
	"log"
	"sync"
	"time"

	"wandergenie/internal/ai"
	"wandergenie/internal/modules/layout"
)

// Service requests one decorative illustration per map node.
type Service struct {
	generator  ai.ArtGenerator
	perNodeTTL time.Duration
}

func NewService(generator ai.ArtGenerator, perNodeTimeout time.Duration) *Service {
	return &Service{generator: generator, perNodeTTL: perNodeTimeout}
}

// Illustrate issues one independent request per node, concurrently, and joins
// once all have settled. A failed or empty request leaves that node's
// ImageURL nil and never affects the others; Illustrate itself cannot fail.
// Input order is preserved in the output.
func (s *Service) Illustrate(ctx context.Context, nodes []layout.Node, destination string) []layout.Node {
	out := make([]layout.Node, len(nodes))
	copy(out, nodes)

	var wg sync.WaitGroup
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			nodeCtx, cancel := context.WithTimeout(ctx, s.perNodeTTL)
			defer cancel()

			url, err := s.generator.GenerateLandmarkArt(nodeCtx, out[i].Name, destination)
			if err != nil {
				log.Printf("art: illustration failed for %q: %v", out[i].Name, err)
				return
			}
			if url == "" {
				return
			}
			out[i].ImageURL = &url
		}(i)
	}
	wg.Wait()
	return out
}
