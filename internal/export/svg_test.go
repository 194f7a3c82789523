package export

import (
	"strings"
	"testing"

	"github.com/san-kum/polarlab/internal/polar"
	"github.com/san-kum/polarlab/internal/viz"
)

func TestSeriesToSVG(t *testing.T) {
	s := polar.Series{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 0},
	}

	svg := SeriesToSVG(s, 400, 300, "#00ff00")
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected XML declaration")
	}
	if !strings.Contains(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300"`) {
		t.Error("expected svg element with requested dimensions")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("expected stroke color")
	}
	if !strings.Contains(svg, "<path") || !strings.Contains(svg, " L") {
		t.Error("expected a polyline path")
	}
}

func TestSeriesToSVG_TooShort(t *testing.T) {
	if SeriesToSVG(polar.Series{{X: 1, Y: 1}}, 100, 100, "#fff") != "" {
		t.Error("expected empty output for a single point")
	}
	if SeriesToSVG(nil, 100, 100, "#fff") != "" {
		t.Error("expected empty output for nil series")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 4)
	c.DrawLine(0, 0, 7, 15)

	svg := CanvasToSVG(c, 4)
	if !strings.Contains(svg, "<circle") {
		t.Error("expected dot circles in output")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("expected closing svg tag")
	}
}

func TestCanvasToSVG_Nil(t *testing.T) {
	if CanvasToSVG(nil, 4) != "" {
		t.Error("expected empty output for nil canvas")
	}
}
