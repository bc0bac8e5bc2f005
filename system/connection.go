package system

import (
	"github.com/entanglelab/qorbit/engine"
)

// ConnectionSystem refreshes cached edge endpoints from the body store.
// Runs last so every edge reflects the positions all earlier systems
// settled on this tick.
type ConnectionSystem struct{}

func NewConnectionSystem() *ConnectionSystem {
	return &ConnectionSystem{}
}

func (s *ConnectionSystem) Name() string {
	return "connections"
}

func (s *ConnectionSystem) Priority() int {
	return engine.PriorityConnections
}

func (s *ConnectionSystem) Update(ctx *engine.Context) {
	b := ctx.Scene.Bodies
	edges := ctx.Scene.Edges
	for i := range edges {
		edges[i].PosA = b.Pos[edges[i].A]
		edges[i].PosB = b.Pos[edges[i].B]
	}
}
