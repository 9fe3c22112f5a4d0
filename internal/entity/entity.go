// Package entity provides the combat entities: starships, starbases and
// the fleets that own them.
package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/akelleher/starhold/internal/combat"
	"github.com/akelleher/starhold/internal/logging"
	"github.com/akelleher/starhold/internal/report"
)

// Minimum stat thresholds enforced at construction.
const (
	MinHealth = 1
	MinStat   = 0
)

// Member is any entity a fleet can own and a ship can target: the combat
// capability set plus fleet ownership and coordinated movement. Only
// Starship and Starbase implement it.
type Member interface {
	combat.Combatant

	GetFleet() *Fleet
	GetFleetID() int
	Attack(target Member)
	Tow(sector int)

	setFleet(fleet *Fleet, fleetID int)
}

// Hull is the shared core composed by both starships and starbases:
// location, health, defense ceiling, fleet ownership and display identity.
type Hull struct {
	id         uuid.UUID
	entityType string
	sector     int
	currHealth int
	maxHealth  int
	maxDefense int
	disabled   bool

	// Non-owning back-reference; the fleet owns the entity list. Removal
	// from a fleet does not clear this, so a destroyed entity keeps its
	// display name.
	fleet   *Fleet
	fleetID int
}

// statCheck names an attribute with its minimum threshold.
type statCheck struct {
	name  string
	value int
	min   int
}

// validateAttributes rejects any attribute below its minimum threshold.
func validateAttributes(checks ...statCheck) error {
	for _, c := range checks {
		if c.value < c.min {
			return fmt.Errorf("%s must be at least %d, got %d", c.name, c.min, c.value)
		}
	}
	return nil
}

func newHull(entityType string, sector, maxHealth, maxDefense int) (Hull, error) {
	if err := validateAttributes(
		statCheck{"max_health", maxHealth, MinHealth},
		statCheck{"max_defense_strength", maxDefense, MinStat},
	); err != nil {
		return Hull{}, err
	}

	h := Hull{
		id:         uuid.New(),
		entityType: entityType,
		sector:     sector,
		currHealth: maxHealth,
		maxHealth:  maxHealth,
		maxDefense: maxDefense,
	}

	logging.Log.WithFields(logrus.Fields{
		"component": "entity",
		"entity_id": h.id,
		"type":      entityType,
		"sector":    sector,
	}).Debug("entity created")

	return h, nil
}

// GetID returns the entity's stable unique identifier, used for logs and
// traces. Display uses the fleet-local id instead.
func (h *Hull) GetID() uuid.UUID { return h.id }

// GetEntityType returns "starship" or "starbase".
func (h *Hull) GetEntityType() string { return h.entityType }

// GetSector returns the entity's current sector.
func (h *Hull) GetSector() int { return h.sector }

// GetCurrHealth returns the entity's remaining hull points.
func (h *Hull) GetCurrHealth() int { return h.currHealth }

// GetMaxHealth returns the entity's full hull points.
func (h *Hull) GetMaxHealth() int { return h.maxHealth }

// IsDead returns true once the entity has been destroyed.
func (h *Hull) IsDead() bool { return h.disabled }

// GetFleet returns the owning fleet, or nil for a neutral entity.
func (h *Hull) GetFleet() *Fleet { return h.fleet }

// GetFleetID returns the fleet-local display id.
func (h *Hull) GetFleetID() int { return h.fleetID }

// setFleet assigns ownership. Called exclusively by Fleet.
func (h *Hull) setFleet(fleet *Fleet, fleetID int) {
	h.fleet = fleet
	h.fleetID = fleetID
}

// SameFleet reports whether both entities belong to the same fleet.
// Two neutral entities count as the same fleet.
func (h *Hull) SameFleet(other Member) bool {
	return h.fleet == other.GetFleet()
}

// SameSector reports whether both entities are in the same sector.
func (h *Hull) SameSector(other Member) bool {
	return h.sector == other.GetSector()
}

// GetFullName returns a display name such as "Player1's starship #2", or
// "a neutral starship" for an unowned entity.
func (h *Hull) GetFullName() string {
	if h.fleet != nil {
		return fmt.Sprintf("%s's %s #%d", h.fleet.name, h.entityType, h.fleetID)
	}
	return "a neutral " + h.entityType
}

// output emits one report line for this entity.
func (h *Hull) output(format string, args ...any) {
	report.Linef(h.GetFullName(), format, args...)
}

// applyDamage is the shared damage routine. It clamps the amount so
// health never goes negative, reports the result, and returns true when
// the hit destroyed the entity. Destruction is terminal; callers handle
// fleet detachment and any cascade.
func (h *Hull) applyDamage(amount int) bool {
	if amount > h.currHealth {
		amount = h.currHealth
	}
	h.currHealth -= amount

	if h.currHealth <= 0 {
		h.disabled = true
		h.output("has been destroyed")
		logging.Log.WithFields(logrus.Fields{
			"component": "entity",
			"entity_id": h.id,
			"type":      h.entityType,
		}).Debug("entity destroyed")
		return true
	}

	h.output("took %d damage and now has %d hp remaining", amount, h.currHealth)
	return false
}

// detachFromFleet removes the entity from its fleet's collection on
// destruction. The back-reference stays set for display.
func (h *Hull) detachFromFleet(self Member) {
	if h.fleet != nil {
		h.fleet.RemoveEntity(self)
	}
}
