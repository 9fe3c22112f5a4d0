// Package game provides the round-driven engine that sequences fleet
// orders and tracks the outcome of an engagement.
package game

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/akelleher/starhold/internal/entity"
	"github.com/akelleher/starhold/internal/logging"
	"github.com/akelleher/starhold/internal/telemetry"
)

// Phase represents the current phase of an engagement.
type Phase int

const (
	// PhaseActive - more than one fleet still fields entities
	PhaseActive Phase = iota
	// PhaseVictory - exactly one fleet still fields entities
	PhaseVictory
	// PhaseDraw - no fleet fields anything anymore
	PhaseDraw
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseVictory:
		return "victory"
	case PhaseDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Order is a single fleet- or entity-level action queued into a round.
// Orders run to completion in sequence; there is no concurrency in the
// rules engine.
type Order func()

// Engine sequences rounds of orders across the participating fleets.
type Engine struct {
	fleets []*entity.Fleet
	round  int
	phase  Phase
}

// New creates an engine for an engagement between the given fleets.
func New(cfg Config, fleets ...*entity.Fleet) *Engine {
	cfg.apply()
	return &Engine{
		fleets: fleets,
		phase:  PhaseActive,
	}
}

// Round returns the number of completed rounds.
func (e *Engine) Round() int { return e.round }

// Phase returns the engagement phase after the last completed round.
func (e *Engine) Phase() Phase { return e.phase }

// Fleets returns the participating fleets.
func (e *Engine) Fleets() []*entity.Fleet { return e.fleets }

// RunRound executes the queued orders in sequence as one combat round
// and re-evaluates the engagement phase.
func (e *Engine) RunRound(ctx context.Context, orders ...Order) Phase {
	e.round++

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.round")
	span.SetAttributes(
		attribute.Int("round", e.round),
		attribute.Int("orders", len(orders)),
	)
	defer span.End()

	for _, order := range orders {
		order()
	}

	e.phase = e.evaluatePhase()
	span.SetAttributes(attribute.String("phase", e.phase.String()))

	logging.Log.WithFields(logrus.Fields{
		"component": "engine",
		"round":     e.round,
		"phase":     e.phase.String(),
	}).Debug("round complete")

	return e.phase
}

// Victor returns the last fleet standing, or nil while the engagement is
// still active or ended in a draw.
func (e *Engine) Victor() *entity.Fleet {
	if e.phase != PhaseVictory {
		return nil
	}
	for _, f := range e.fleets {
		if fleetHasForces(f) {
			return f
		}
	}
	return nil
}

// evaluatePhase counts the fleets that still field entities. Destroyed
// entities are removed from their fleet's collections at the moment they
// go down, so the collection lengths are authoritative.
func (e *Engine) evaluatePhase() Phase {
	standing := 0
	for _, f := range e.fleets {
		if fleetHasForces(f) {
			standing++
		}
	}

	switch {
	case standing == 0:
		return PhaseDraw
	case standing == 1 && len(e.fleets) > 1:
		return PhaseVictory
	default:
		return PhaseActive
	}
}

func fleetHasForces(f *entity.Fleet) bool {
	return len(f.GetStarships())+len(f.GetStarbases()) > 0
}
