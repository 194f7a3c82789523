package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected dot at origin")
	}

	// Out of range is a no-op, not a panic.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(5, 5)
	c.Set(3, 3)
	c.Clear()

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("expected empty canvas after clear")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	if c.Grid[0][0] == 0x2800 {
		t.Error("expected dot at line start")
	}
	if c.Grid[9][9] == 0x2800 {
		t.Error("expected dot at line end")
	}
}

func TestCanvasDashedLine(t *testing.T) {
	full := NewCanvas(10, 1)
	full.DrawLine(0, 0, 19, 0)
	dashed := NewCanvas(10, 1)
	dashed.DrawDashedLine(0, 0, 19, 0)

	count := func(c *Canvas) int {
		n := 0
		for _, row := range c.Grid {
			for _, r := range row {
				n += countBits(int(r - 0x2800))
			}
		}
		return n
	}

	if count(dashed) >= count(full) {
		t.Errorf("dashed line should set fewer dots: %d vs %d", count(dashed), count(full))
	}
}

func countBits(v int) int {
	n := 0
	for v != 0 {
		n += v & 1
		v >>= 1
	}
	return n
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(4, 3)
	out := c.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 4 {
			t.Errorf("expected 4 columns, got %d", len([]rune(line)))
		}
	}
}
