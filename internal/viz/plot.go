package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// Plot maps world coordinates in metres onto a canvas of Width x Height
// character cells. All series drawn through one Plot share its frame.
type Plot struct {
	Width, Height          int
	MinX, MaxX, MinY, MaxY float64
}

// NewPlot sizes the frame to fit every point of series.
func NewPlot(width, height int, series ...dynamo.Trajectory) *Plot {
	p := &Plot{Width: width, Height: height}

	first := true
	for _, s := range series {
		for _, pt := range s {
			if first {
				p.MinX, p.MaxX, p.MinY, p.MaxY = pt.X, pt.X, pt.Y, pt.Y
				first = false
				continue
			}
			p.MinX = min(p.MinX, pt.X)
			p.MaxX = max(p.MaxX, pt.X)
			p.MinY = min(p.MinY, pt.Y)
			p.MaxY = max(p.MaxY, pt.Y)
		}
	}

	if p.MaxX == p.MinX {
		p.MinX -= 0.5
		p.MaxX += 0.5
	}
	if p.MaxY == p.MinY {
		p.MinY -= 0.5
		p.MaxY += 0.5
	}
	return p
}

// Project returns sub-pixel coordinates for pt, with y growing downward.
func (p *Plot) Project(pt dynamo.Position) (int, int) {
	w := float64(p.Width*2 - 1)
	h := float64(p.Height*4 - 1)
	x := int((pt.X - p.MinX) / (p.MaxX - p.MinX) * w)
	y := int(h - (pt.Y-p.MinY)/(p.MaxY-p.MinY)*h)
	return x, y
}

// Draw connects consecutive points of traj on c.
func (p *Plot) Draw(c *Canvas, traj dynamo.Trajectory) {
	if len(traj) == 1 {
		x, y := p.Project(traj[0])
		c.Set(x, y)
		return
	}
	for i := 1; i < len(traj); i++ {
		x0, y0 := p.Project(traj[i-1])
		x1, y1 := p.Project(traj[i])
		c.DrawLine(x0, y0, x1, y1)
	}
}

// Cell returns the character cell containing pt.
func (p *Plot) Cell(pt dynamo.Position) (col, row int) {
	x, y := p.Project(pt)
	return x / 2, y / 4
}

// RenderComparison draws numeric and reference on a shared frame and
// returns the framed, colored plot. marker, if non-nil, is drawn as a
// bullet on top.
func RenderComparison(width, height int, numeric, reference dynamo.Trajectory, marker *dynamo.Position) string {
	plot := NewPlot(width, height, numeric, reference)
	return plot.Render(numeric, reference, marker)
}

func (p *Plot) Render(numeric, reference dynamo.Trajectory, marker *dynamo.Position) string {
	num := NewCanvas(p.Width, p.Height)
	ref := NewCanvas(p.Width, p.Height)
	p.Draw(num, numeric)
	p.Draw(ref, reference)

	markCol, markRow := -1, -1
	if marker != nil {
		markCol, markRow = p.Cell(*marker)
	}

	var b strings.Builder
	top := fmt.Sprintf("%8.2f ┌%s┐\n", p.MaxY, strings.Repeat("─", p.Width))
	b.WriteString(Subtle.Render(top))

	for row := 0; row < p.Height; row++ {
		label := "         "
		if row == p.Height/2 {
			label = fmt.Sprintf("%8.2f ", (p.MaxY+p.MinY)/2)
		}
		b.WriteString(Subtle.Render(label + "│"))
		for col := 0; col < p.Width; col++ {
			switch {
			case col == markCol && row == markRow:
				b.WriteString(MarkerStyle.Render("●"))
			case num.IsSet(col, row):
				b.WriteString(NumericStyle.Render(string(num.Grid[row][col] | ref.Grid[row][col])))
			case ref.IsSet(col, row):
				b.WriteString(ReferenceStyle.Render(string(ref.Grid[row][col])))
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteString(Subtle.Render("│") + "\n")
	}

	bottom := fmt.Sprintf("%8.2f └%s┘\n", p.MinY, strings.Repeat("─", p.Width))
	b.WriteString(Subtle.Render(bottom))

	axis := fmt.Sprintf("%-*.2f%*.2f", p.Width/2+10, p.MinX, p.Width-p.Width/2+1, p.MaxX)
	b.WriteString(Subtle.Render(axis) + "\n")
	b.WriteString(NumericStyle.Render("── euler") + "  " + ReferenceStyle.Render("── exact") + "\n")

	return b.String()
}
