package renderer

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/etnz/advisor"
)

// palette colors the slices, cycling when there are more slices than colors.
var palette = []string{"#f7931a", "#627eea", "#26a17b", "#9945ff", "#e84142", "#2a5ada", "#e6007a", "#8247e5"}

// PieSVG draws the chart slices as an SVG pie of the given size in pixels,
// followed by a legend. It returns an empty string when there is nothing to
// draw.
func PieSVG(slices []advisor.ChartSlice, size int) string {
	var total float64
	for _, s := range slices {
		total += s.Value.InexactFloat64()
	}
	if len(slices) == 0 || total <= 0 {
		return ""
	}

	r := float64(size) / 2
	legendHeight := 20 * len(slices)
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img">`, size, size+legendHeight+10, size, size+legendHeight+10)
	b.WriteString("\n")

	// start at twelve o'clock, clockwise
	angle := -math.Pi / 2
	for i, s := range slices {
		color := palette[i%len(palette)]
		label := html.EscapeString(s.Label)
		frac := s.Value.InexactFloat64() / total
		if frac >= 1 {
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"><title>%s %s</title></circle>`, r, r, r, color, label, s.Percent)
			b.WriteString("\n")
			continue
		}
		end := angle + frac*2*math.Pi
		large := 0
		if frac > 0.5 {
			large = 1
		}
		x1, y1 := r+r*math.Cos(angle), r+r*math.Sin(angle)
		x2, y2 := r+r*math.Cos(end), r+r*math.Sin(end)
		fmt.Fprintf(&b, `<path d="M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z" fill="%s"><title>%s %s</title></path>`,
			r, r, x1, y1, r, r, large, x2, y2, color, label, s.Percent)
		b.WriteString("\n")
		angle = end
	}

	for i, s := range slices {
		y := size + 10 + 20*i
		fmt.Fprintf(&b, `<rect x="0" y="%d" width="12" height="12" fill="%s"/><text x="18" y="%d" font-size="12">%s %s</text>`,
			y, palette[i%len(palette)], y+11, html.EscapeString(s.Label), s.Percent)
		b.WriteString("\n")
	}
	b.WriteString("</svg>")
	return b.String()
}
