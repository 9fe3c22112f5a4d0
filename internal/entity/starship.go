package entity

import (
	"github.com/akelleher/starhold/internal/combat"
	"github.com/akelleher/starhold/internal/gamedata"
)

// MinCrew is the crew floor: attrition never empties a ship entirely.
const MinCrew = 1

// Default starship loadout, matching the cruiser hull class.
const (
	DefaultShipAttack  = 30
	DefaultShipDefense = 10
	DefaultShipCrew    = 10
	DefaultShipHealth  = 100
)

// Starship is a mobile combat unit that can move between sectors, dock
// with starbases, attack enemy entities, and be repaired at friendly
// starbases.
type Starship struct {
	Hull

	maxAttack     int
	currCrew      int
	maxCrew       int
	dockedAt      *Starbase
	actionsToSkip int
}

var _ Member = (*Starship)(nil)
var _ combat.Combatant = (*Starship)(nil)

// NewStarship creates a starship with the given stats. It fails fast on
// any stat below its minimum threshold.
func NewStarship(sector, maxAttack, maxDefense, maxCrew, maxHealth int) (*Starship, error) {
	if err := validateAttributes(
		statCheck{"max_attack_strength", maxAttack, MinStat},
		statCheck{"max_crew", maxCrew, MinCrew},
	); err != nil {
		return nil, err
	}

	hull, err := newHull("starship", sector, maxHealth, maxDefense)
	if err != nil {
		return nil, err
	}

	return &Starship{
		Hull:      hull,
		maxAttack: maxAttack,
		currCrew:  maxCrew,
		maxCrew:   maxCrew,
	}, nil
}

// NewDefaultStarship creates a starship with the default cruiser loadout.
func NewDefaultStarship(sector int) *Starship {
	ship, err := NewStarship(sector, DefaultShipAttack, DefaultShipDefense, DefaultShipCrew, DefaultShipHealth)
	if err != nil {
		panic(err)
	}
	return ship
}

// NewStarshipFromDef creates a starship from a hull class definition.
func NewStarshipFromDef(sector int, def *gamedata.ShipClassDef) (*Starship, error) {
	return NewStarship(sector, def.MaxAttack, def.MaxDefense, def.MaxCrew, def.MaxHealth)
}

// GetCurrAttackStrength returns the ship's attack output, degrading
// linearly with hull damage and rounded up.
func (s *Starship) GetCurrAttackStrength() int {
	return combat.CeilFrac(s.maxAttack, s.currHealth, s.maxHealth)
}

// GetCurrDefenseStrength returns the ship's defensive power, blending
// hull and crew fractions and rounded down.
func (s *Starship) GetCurrDefenseStrength() int {
	return combat.FloorFrac(s.maxDefense, s.currHealth+s.currCrew, s.maxHealth+s.maxCrew)
}

// GetCurrCrew returns the remaining crew complement.
func (s *Starship) GetCurrCrew() int { return s.currCrew }

// GetDockedAt returns the starbase the ship is docked at, or nil.
func (s *Starship) GetDockedAt() *Starbase { return s.dockedAt }

// IsRepairing reports whether the ship is mid repair cooldown. Unlike
// tryConsumeCooldown this is a pure query.
func (s *Starship) IsRepairing() bool { return s.actionsToSkip > 0 }

// tryConsumeCooldown reports whether the ship can act this turn. A ship
// under repair cooldown reports the remaining wait and consumes one
// skipped turn, so call it exactly once per action attempt.
func (s *Starship) tryConsumeCooldown() bool {
	if s.disabled {
		return false
	}
	if s.actionsToSkip == 0 {
		return true
	}

	word := "actions"
	if s.actionsToSkip == 1 {
		word = "action"
	}
	s.output("is currently being repaired and will be ready in %d %s", s.actionsToSkip, word)
	s.actionsToSkip--
	return false
}

// Move relocates the ship to a new sector. The action is skipped if the
// ship cannot act, is already there, or is docked.
func (s *Starship) Move(sector int) {
	if !s.tryConsumeCooldown() {
		return
	}
	if s.sector == sector {
		s.output("already in sector %d", sector)
		return
	}
	if s.dockedAt != nil {
		s.output("cannot move while docked")
		return
	}

	s.sector = sector
	s.output("has moved to sector %d", sector)
}

// Dock attaches the ship to a friendly starbase in the same sector.
// While docked the ship is invulnerable and can repair. Every failed
// precondition reports its own reason and changes nothing.
func (s *Starship) Dock(starbase *Starbase) {
	if !s.tryConsumeCooldown() {
		return
	}
	if s.dockedAt != nil {
		s.output("cannot dock - already docked at %s", s.dockedAt.GetFullName())
		return
	}
	if !s.SameFleet(starbase) {
		s.output("cannot dock at %s - it belongs to an enemy fleet", starbase.GetFullName())
		return
	}
	if !s.SameSector(starbase) {
		s.output("cannot dock at %s - it is in sector %d, we are in sector %d",
			starbase.GetFullName(), starbase.sector, s.sector)
		return
	}
	if starbase.IsDead() {
		s.output("cannot dock at %s - starbase has been destroyed", starbase.GetFullName())
		return
	}

	starbase.Dock(s)
	s.output("has docked at %s", starbase.GetFullName())
}

// Undock detaches the ship from its starbase, if docked and able to act.
func (s *Starship) Undock() {
	if !s.tryConsumeCooldown() || s.dockedAt == nil {
		return
	}

	if !s.IsDead() {
		s.output("has undocked from %s", s.dockedAt.GetFullName())
	}
	s.dockedAt.Undock(s)
	s.dockedAt = nil
}

// Repair fully restores hull and crew while docked. The ship then skips
// a number of actions depending on how damaged it was when repairs began.
func (s *Starship) Repair() {
	if !s.tryConsumeCooldown() {
		return
	}
	if s.dockedAt == nil {
		s.output("cannot repair - not docked at a starbase")
		return
	}

	s.output("is being repaired")

	// Tiers on the health fraction at time of repair: <25% -> 4,
	// <50% -> 3, <75% -> 2, otherwise 1.
	skip := 1
	switch {
	case s.currHealth*4 < s.maxHealth:
		skip = 4
	case s.currHealth*2 < s.maxHealth:
		skip = 3
	case s.currHealth*4 < s.maxHealth*3:
		skip = 2
	}

	s.actionsToSkip = skip
	s.currHealth = s.maxHealth
	s.currCrew = s.maxCrew
}

// Attack fires on a target in the same sector. Damage is the attacker's
// current attack strength minus the target's current defense strength,
// floored at combat.MinDamage.
func (s *Starship) Attack(target Member) {
	if !s.tryConsumeCooldown() {
		return
	}
	if s.dockedAt != nil {
		s.output("cannot attack while docked")
		return
	}
	if s.SameFleet(target) {
		s.output("cannot attack teammate %s - no friendly fire", target.GetFullName())
		return
	}
	if !s.SameSector(target) {
		s.output("cannot attack %s - target is in sector %d, we are in sector %d",
			target.GetFullName(), target.GetSector(), s.sector)
		return
	}
	if target.IsDead() {
		s.output("cannot attack %s - target already destroyed", target.GetFullName())
		return
	}

	s.output("attacked %s", target.GetFullName())
	target.TakeDamage(combat.AttackDamage(s.GetCurrAttackStrength(), target.GetCurrDefenseStrength()))
}

// TakeDamage applies incoming damage with crew attrition. Docked ships
// are shielded by their starbase and take nothing.
func (s *Starship) TakeDamage(amount int) {
	if s.dockedAt != nil {
		return
	}

	incapacitated := combat.CeilFrac(s.currCrew, amount, s.maxHealth)
	s.currCrew -= incapacitated
	if s.currCrew < MinCrew {
		s.currCrew = MinCrew
	}

	if s.applyDamage(amount) {
		s.detachFromFleet(s)
	}
}

// Destroy forces full hull loss, used when a hosting starbase goes down.
// The dock reference is cleared first so the docked-ship shield does not
// block the damage.
func (s *Starship) Destroy() {
	s.dockedAt = nil
	s.TakeDamage(s.currHealth)
}

// Tow relocates the ship directly, bypassing normal movement rules.
// Used by fleet-coordinated tows.
func (s *Starship) Tow(sector int) {
	s.sector = sector
	s.output("has been towed to sector %d", sector)
}
