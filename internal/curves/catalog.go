package curves

import (
	"github.com/san-kum/polarlab/internal/polar"
)

// Blurbs are the one-line descriptions shown next to menu entries.
var Blurbs = map[string]string{
	"circle":     "constant radius",
	"cardioid":   "heart-shaped",
	"rose":       "petaled blossom",
	"spiral":     "archimedean spiral",
	"limacon":    "looped snail",
	"lemniscate": "figure eight",
}

// Catalog returns a registry with every supported equation, in menu order.
func Catalog() *polar.Registry {
	r := polar.NewRegistry()
	r.Register(NewCircle())
	r.Register(NewCardioid())
	r.Register(NewRose())
	r.Register(NewSpiral())
	r.Register(NewLimacon())
	r.Register(NewLemniscate())
	return r
}
