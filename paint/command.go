package paint

import (
	"fmt"
	col "image/color"

	"github.com/fogleman/gg"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/image/font/basicfont"

	"geo/point"
	"geo/rect"
)

// Command is one entry of a display list. Geometry is y-up; Execute
// receives the canvas height so it can flip into gg's y-down raster space.
type Command interface {
	Execute(height float64, canvas *gg.Context)
	String() string
}

type DrawRect struct {
	rect  rect.Rect
	color string
}

func NewDrawRect(r rect.Rect, color string) *DrawRect {
	return &DrawRect{rect: r, color: color}
}

func (d *DrawRect) Execute(height float64, canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.DrawRectangle(
		float64(d.rect.BottomLeft().X()),
		height-float64(d.rect.TopRight().Y()),
		float64(d.rect.Width()),
		float64(d.rect.Height()),
	)
	canvas.Fill()
}

func (d *DrawRect) String() string {
	return fmt.Sprint("DrawRect(rect=", d.rect, ", color='", d.color, "')")
}

type DrawOutline struct {
	rect      rect.Rect
	color     string
	thickness float64
}

func NewDrawOutline(r rect.Rect, color string, thickness float64) *DrawOutline {
	return &DrawOutline{rect: r, color: color, thickness: thickness}
}

func (d *DrawOutline) Execute(height float64, canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.SetLineWidth(d.thickness)
	canvas.DrawRectangle(
		float64(d.rect.BottomLeft().X()),
		height-float64(d.rect.TopRight().Y()),
		float64(d.rect.Width()),
		float64(d.rect.Height()),
	)
	canvas.Stroke()
}

func (d *DrawOutline) String() string {
	return fmt.Sprint("DrawOutline(rect=", d.rect, ", color='", d.color, "', thickness=", d.thickness, ")")
}

type DrawLabel struct {
	text  string
	at    point.Point
	color string
}

func NewDrawLabel(text string, at point.Point, color string) *DrawLabel {
	return &DrawLabel{text: text, at: at, color: color}
}

func (d *DrawLabel) Execute(height float64, canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.SetFontFace(basicfont.Face7x13)
	canvas.DrawStringAnchored(d.text, float64(d.at.X()), height-float64(d.at.Y()), 0, 1)
}

func (d *DrawLabel) String() string {
	return fmt.Sprint("DrawLabel(text='", d.text, "', at=", d.at, ")")
}

// ParseColor resolves a CSS color string, falling back to black when the
// string does not parse.
func ParseColor(color string) col.Color {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		return col.Black
	}
	r, g, b, a := c.RGBA255()
	return col.RGBA{R: r, G: g, B: b, A: a}
}

// Raster executes a display list onto a white canvas of the given size.
func Raster(width, height int, cmds []Command) *gg.Context {
	canvas := gg.NewContext(width, height)
	canvas.SetColor(col.White)
	canvas.Clear()
	for _, cmd := range cmds {
		cmd.Execute(float64(height), canvas)
	}
	return canvas
}
