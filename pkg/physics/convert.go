package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/decker502/pinball/pkg/config"
	"github.com/decker502/pinball/pkg/table"
)

func toVector(v table.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func toVectors(vs []table.Vec) []cp.Vector {
	out := make([]cp.Vector, len(vs))
	for i, v := range vs {
		out[i] = toVector(v)
	}
	return out
}

func toCP(v config.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func toCPSlice(vs []config.Vec2) []cp.Vector {
	out := make([]cp.Vector, len(vs))
	for i, v := range vs {
		out[i] = toCP(v)
	}
	return out
}

func fromVector(v cp.Vector) table.Vec {
	return table.Vec{X: v.X, Y: v.Y}
}
