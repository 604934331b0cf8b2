// README: Decorative itinerary-path layout (normalized 0-100 coordinates).
package layout

import (
	"math"
	"strconv"
	"strings"

	"wandergenie/internal/modules/plan"
)

// DefaultMaxNodes caps the diagram at the first few highlights to keep it clean.
const DefaultMaxNodes = 6

// Node is one marker on the decorative journey diagram. Coordinates are
// percentages of the canvas; they encode no real-world geography.
type Node struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Day      int     `json:"day"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ImageURL *string `json:"imageUrl"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is one cubic Bézier segment of the connecting path.
type Curve struct {
	From  Point `json:"from"`
	Ctrl1 Point `json:"ctrl1"`
	Ctrl2 Point `json:"ctrl2"`
	To    Point `json:"to"`
}

// Nodes flattens the itinerary's activities (day order, then in-day order),
// truncates to maxNodes and positions each node inside the safe bands:
// x alternates around 30%/70% with a sine jitter so the trail never collapses
// into a vertical line, y walks 25%..85% top to bottom.
func Nodes(itinerary []plan.DayItinerary, maxNodes int) []Node {
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	var flat []Node
	for _, day := range itinerary {
		for _, activity := range day.Activities {
			flat = append(flat, Node{Name: activity.Name, Type: "activity", Day: day.Day})
		}
	}
	if len(flat) > maxNodes {
		flat = flat[:maxNodes]
	}

	n := len(flat)
	for i := range flat {
		progress := float64(i) / math.Max(float64(n-1), 1)
		if i%2 == 0 {
			flat[i].X = 30 + math.Sin(float64(i))*5
		} else {
			flat[i].X = 70 - math.Sin(float64(i))*5
		}
		flat[i].Y = 25 + progress*60
	}
	return flat
}

// Path builds the smooth connector through the node positions. Each segment's
// control points share the midpoint y of its endpoints while keeping their own
// endpoint's x, easing the trail vertically between rows. Fewer than two
// nodes yields no path.
func Path(nodes []Node) []Curve {
	if len(nodes) < 2 {
		return nil
	}
	curves := make([]Curve, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		prev, curr := nodes[i-1], nodes[i]
		midY := prev.Y + (curr.Y-prev.Y)/2
		curves = append(curves, Curve{
			From:  Point{X: prev.X, Y: prev.Y},
			Ctrl1: Point{X: prev.X, Y: midY},
			Ctrl2: Point{X: curr.X, Y: midY},
			To:    Point{X: curr.X, Y: curr.Y},
		})
	}
	return curves
}

// PathData renders the same connector as an SVG path "d" string.
func PathData(nodes []Node) string {
	curves := Path(nodes)
	if len(curves) == 0 {
		return ""
	}
	var d strings.Builder
	d.WriteString("M " + fmtCoord(curves[0].From.X) + " " + fmtCoord(curves[0].From.Y))
	for _, c := range curves {
		d.WriteString(" C " + fmtCoord(c.Ctrl1.X) + " " + fmtCoord(c.Ctrl1.Y) +
			", " + fmtCoord(c.Ctrl2.X) + " " + fmtCoord(c.Ctrl2.Y) +
			", " + fmtCoord(c.To.X) + " " + fmtCoord(c.To.Y))
	}
	return d.String()
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
