package entity

import (
	"github.com/akelleher/starhold/internal/combat"
	"github.com/akelleher/starhold/internal/gamedata"
)

// Default starbase loadout, matching the outpost hull class.
const (
	DefaultBaseDefense = 20
	DefaultBaseHealth  = 500
)

// Starbase is a stationary defensive structure. It cannot move on its
// own (only a tow relocates it) and fires only through the ships docked
// at it.
type Starbase struct {
	Hull

	// Insertion order is arrival order.
	dockedShips []*Starship
}

var _ Member = (*Starbase)(nil)
var _ combat.Combatant = (*Starbase)(nil)

// NewStarbase creates a starbase with the given stats. It fails fast on
// any stat below its minimum threshold.
func NewStarbase(sector, maxDefense, maxHealth int) (*Starbase, error) {
	hull, err := newHull("starbase", sector, maxHealth, maxDefense)
	if err != nil {
		return nil, err
	}
	return &Starbase{Hull: hull}, nil
}

// NewDefaultStarbase creates a starbase with the default outpost loadout.
func NewDefaultStarbase(sector int) *Starbase {
	base, err := NewStarbase(sector, DefaultBaseDefense, DefaultBaseHealth)
	if err != nil {
		panic(err)
	}
	return base
}

// NewStarbaseFromDef creates a starbase from a hull class definition.
func NewStarbaseFromDef(sector int, def *gamedata.BaseClassDef) (*Starbase, error) {
	return NewStarbase(sector, def.MaxDefense, def.MaxHealth)
}

// GetDockedShips returns the ships currently docked, in arrival order.
func (b *Starbase) GetDockedShips() []*Starship { return b.dockedShips }

// readyDockedStrength sums the current attack strength of docked ships
// that are not mid repair cooldown, and counts the contributors.
func (b *Starbase) readyDockedStrength() (attack, contributors int) {
	for _, ship := range b.dockedShips {
		if ship.IsRepairing() {
			continue
		}
		attack += ship.GetCurrAttackStrength()
		contributors++
	}
	return attack, contributors
}

// GetCurrAttackStrength returns the combined attack strength of all
// docked ships that are ready to fire. Ships mid repair contribute
// nothing.
func (b *Starbase) GetCurrAttackStrength() int {
	attack, _ := b.readyDockedStrength()
	return attack
}

// GetCurrDefenseStrength returns the base's defensive power: its own
// defense scaled by remaining hull, plus the docked ships' combined
// defense scaled by how many are contributing. Ships mid repair
// contribute nothing.
func (b *Starbase) GetCurrDefenseStrength() int {
	if b.maxDefense == 0 {
		return 0
	}

	totalDockedDefense, contributors := 0, 0
	for _, ship := range b.dockedShips {
		if ship.IsRepairing() {
			continue
		}
		totalDockedDefense += ship.GetCurrDefenseStrength()
		contributors++
	}

	return combat.FloorRatioSum(
		b.maxDefense*b.currHealth, b.maxHealth,
		totalDockedDefense*contributors, b.maxDefense,
	)
}

// Dock registers a friendly starship at the starbase. Both sides of the
// relation are updated in this one call. Unlike Starship.Dock this is a
// silent no-op when any precondition fails.
func (b *Starbase) Dock(ship *Starship) {
	if b.IsDead() || !b.SameFleet(ship) || !b.SameSector(ship) || ship.IsDead() || ship.dockedAt != nil {
		return
	}
	b.dockedShips = append(b.dockedShips, ship)
	ship.dockedAt = b
}

// Undock removes a docked starship from the starbase's list. No-op if
// the ship is not docked here.
func (b *Starbase) Undock(ship *Starship) {
	for i, docked := range b.dockedShips {
		if docked == ship {
			b.dockedShips = append(b.dockedShips[:i], b.dockedShips[i+1:]...)
			break
		}
	}
}

// Attack fires the combined strength of all ready docked ships at a
// target in the same sector. With no ready ships the base cannot fire at
// all; otherwise damage follows the same floor policy as ship attacks.
func (b *Starbase) Attack(target Member) {
	if b.IsDead() {
		return
	}
	if b.SameFleet(target) {
		b.output("cannot attack teammate %s - no friendly fire", target.GetFullName())
		return
	}
	if !b.SameSector(target) {
		b.output("cannot attack %s - target is in sector %d, we are in sector %d",
			target.GetFullName(), target.GetSector(), b.sector)
		return
	}
	if target.IsDead() {
		b.output("cannot attack %s - target already destroyed", target.GetFullName())
		return
	}

	attack, contributors := b.readyDockedStrength()
	if contributors == 0 {
		b.output("cannot attack %s - no docked starships ready to fire", target.GetFullName())
		return
	}

	b.output("attacked %s", target.GetFullName())
	target.TakeDamage(combat.AttackDamage(attack, target.GetCurrDefenseStrength()))
}

// TakeDamage applies incoming damage. When the starbase is destroyed,
// every docked ship goes down with it and the docked list is cleared.
func (b *Starbase) TakeDamage(amount int) {
	if !b.applyDamage(amount) {
		return
	}

	b.detachFromFleet(b)
	for _, ship := range b.dockedShips {
		ship.Destroy()
	}
	b.dockedShips = nil
}

// Tow relocates the starbase and every docked ship along with it,
// bypassing normal movement rules.
func (b *Starbase) Tow(sector int) {
	b.sector = sector
	for _, ship := range b.dockedShips {
		ship.sector = sector
	}
	b.output("has been towed to sector %d", sector)
}
