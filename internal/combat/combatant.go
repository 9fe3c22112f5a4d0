// Package combat provides the shared combat capability set and damage
// policy for starhold.
package combat

// Combatant is the interface for any entity that can participate in
// combat. Both starships and starbases implement this interface; the
// entity package extends it with fleet ownership and attack orders.
type Combatant interface {
	// Identity
	GetFullName() string
	GetEntityType() string
	IsDead() bool

	// Location
	GetSector() int

	// Strength
	GetCurrAttackStrength() int
	GetCurrDefenseStrength() int

	// Mutations
	TakeDamage(amount int)
}

// MinDamage is the floor on damage dealt by any attack that lands.
// An attacker always scratches the hull, no matter how strong the
// target's defenses are.
const MinDamage = 5

// AttackDamage returns the damage an attack deals: attacker strength
// minus defender strength, never below MinDamage.
func AttackDamage(attack, defense int) int {
	damage := attack - defense
	if damage < MinDamage {
		damage = MinDamage
	}
	return damage
}

// CeilFrac returns ceil(value * num / den) in integer arithmetic.
// den must be positive. Used for stats that degrade generously
// (attack strength, crew attrition).
func CeilFrac(value, num, den int) int {
	return (value*num + den - 1) / den
}

// FloorFrac returns floor(value * num / den) in integer arithmetic.
// den must be positive. Used for stats that degrade strictly
// (defense strength).
func FloorFrac(value, num, den int) int {
	return value * num / den
}

// FloorRatioSum returns floor(n1/d1 + n2/d2) in integer arithmetic.
// Both denominators must be positive. The two fractions are combined
// before flooring, so floor(0.5 + 0.5) is 1, not 0.
func FloorRatioSum(n1, d1, n2, d2 int) int {
	return (n1*d2 + n2*d1) / (d1 * d2)
}
