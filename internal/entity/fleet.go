package entity

import (
	"github.com/akelleher/starhold/internal/report"
)

// TowCrewSize is how many undocked ships a cooperative tow requires.
const TowCrewSize = 3

// Fleet represents a player's fleet, containing all their starships and
// starbases, and coordinating fleet-wide actions such as mobilising,
// attacking a target, or towing an entity between sectors.
type Fleet struct {
	name      string
	starships []*Starship
	starbases []*Starbase
}

// NewFleet creates an empty fleet with the given display name.
func NewFleet(name string) *Fleet {
	return &Fleet{name: name}
}

// GetName returns the fleet's display name.
func (f *Fleet) GetName() string { return f.name }

// GetStarships returns the fleet's starships in insertion order.
func (f *Fleet) GetStarships() []*Starship { return f.starships }

// GetStarbases returns the fleet's starbases in insertion order.
func (f *Fleet) GetStarbases() []*Starbase { return f.starbases }

// GetAvailableShips returns all owned starships that are not docked.
func (f *Fleet) GetAvailableShips() []*Starship {
	var available []*Starship
	for _, ship := range f.starships {
		if ship.dockedAt == nil {
			available = append(available, ship)
		}
	}
	return available
}

// AddEntity adds a starship or starbase to the fleet. An entity already
// owned by another fleet is detached there first. The display id is the
// new collection length, so ids are not stable across removals.
func (f *Fleet) AddEntity(m Member) {
	if curr := m.GetFleet(); curr != nil {
		curr.RemoveEntity(m)
	}

	switch e := m.(type) {
	case *Starship:
		f.starships = append(f.starships, e)
		m.setFleet(f, len(f.starships))
	case *Starbase:
		f.starbases = append(f.starbases, e)
		m.setFleet(f, len(f.starbases))
	}
}

// RemoveEntity removes an entity from the fleet's collection. No-op if
// absent; the entity's own fleet back-reference is left untouched.
func (f *Fleet) RemoveEntity(m Member) {
	switch e := m.(type) {
	case *Starship:
		for i, ship := range f.starships {
			if ship == e {
				f.starships = append(f.starships[:i], f.starships[i+1:]...)
				break
			}
		}
	case *Starbase:
		for i, base := range f.starbases {
			if base == e {
				f.starbases = append(f.starbases[:i], f.starbases[i+1:]...)
				break
			}
		}
	}
}

// Mobilise moves every owned starship to the given sector. Docked ships
// refuse to move and say so themselves.
func (f *Fleet) Mobilise(sector int) {
	report.Linef(f.name, "mobilised their starships to sector %d", sector)
	for _, ship := range f.starships {
		ship.Move(sector)
	}
}

// Attack orders every owned starship to fire on the target in collection
// order, stopping the moment the target goes down.
func (f *Fleet) Attack(target Member) {
	if targetFleet := target.GetFleet(); targetFleet != nil {
		report.Linef(f.name+"'s starships", "have been mobilised to attack %s's %s",
			targetFleet.GetName(), target.GetEntityType())
	} else {
		report.Linef(f.name+"'s starships", "have been mobilised to attack %s", target.GetFullName())
	}

	for _, ship := range f.starships {
		if target.IsDead() {
			break
		}
		ship.Attack(target)
	}
}

// Tow coordinates three undocked ships in the target's sector to tow a
// target entity (and, for a starbase, everything docked at it) to another
// sector. With fewer than three tugs available the tow fails and nothing
// moves.
func (f *Fleet) Tow(target Member, sector int) {
	var tugs []*Starship
	for _, ship := range f.starships {
		if len(tugs) == TowCrewSize {
			break
		}
		if Member(ship) == target {
			continue
		}
		if ship.IsDead() || ship.dockedAt != nil || ship.IsRepairing() || ship.sector != target.GetSector() {
			continue
		}
		tugs = append(tugs, ship)
	}

	if len(tugs) < TowCrewSize {
		report.Linef(f.name, "cannot tow %s - needs %d available starships in sector %d",
			target.GetFullName(), TowCrewSize, target.GetSector())
		return
	}

	report.Linef(f.name, "is towing %s to sector %d", target.GetFullName(), sector)
	for _, tug := range tugs {
		tug.Move(sector)
	}
	target.Tow(sector)
}
