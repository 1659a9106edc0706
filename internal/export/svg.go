package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/trajsim/internal/dynamo"
)

const (
	numericColor   = "#00ff88"
	referenceColor = "#00ccff"
)

type bounds struct {
	minX, maxX, minY, maxY float64
}

func boundsOf(series ...dynamo.Trajectory) bounds {
	b := bounds{}
	first := true
	for _, s := range series {
		for _, p := range s {
			if first {
				b = bounds{p.X, p.X, p.Y, p.Y}
				first = false
				continue
			}
			b.minX = min(b.minX, p.X)
			b.maxX = max(b.maxX, p.X)
			b.minY = min(b.minY, p.Y)
			b.maxY = max(b.maxY, p.Y)
		}
	}

	// Add padding
	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.minX -= rangeX * 0.1
	b.maxX += rangeX * 0.1
	b.minY -= rangeY * 0.1
	b.maxY += rangeY * 0.1
	return b
}

func writePath(sb *strings.Builder, pts dynamo.Trajectory, b bounds, width, height int, stroke, dash string) {
	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY

	fmt.Fprintf(sb, `<path fill="none" stroke="%s" stroke-width="1.5"%s d="M`, stroke, dash)
	for i, p := range pts {
		x := (p.X - b.minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-b.minY)/rangeY*float64(height)

		if i == 0 {
			fmt.Fprintf(sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n")
}

// TrajectorySVG draws the numeric trajectory and the exact one on shared
// axes. It returns "" when there are fewer than two numeric points.
func TrajectorySVG(numeric, reference dynamo.Trajectory, width, height int) string {
	if len(numeric) < 2 {
		return ""
	}

	b := boundsOf(numeric, reference)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	if len(reference) >= 2 {
		writePath(&sb, reference, b, width, height, referenceColor, ` stroke-dasharray="6 4"`)
	}
	writePath(&sb, numeric, b, width, height, numericColor, "")

	fmt.Fprintf(&sb, `<g font-family="monospace" font-size="12">
<text x="10" y="18" fill="%s">euler</text>
<text x="10" y="34" fill="%s">exact</text>
</g>
</svg>
`, numericColor, referenceColor)

	return sb.String()
}

// WriteSVG renders run with its reference solution.
func WriteSVG(w io.Writer, run Run, width, height int) error {
	svg := TrajectorySVG(run.Result.Positions, run.compare().Reference, width, height)
	if svg == "" {
		return fmt.Errorf("need at least 2 samples to draw, got %d", len(run.Result.Positions))
	}
	_, err := io.WriteString(w, svg)
	return err
}
