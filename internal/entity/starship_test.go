package entity

import (
	"strings"
	"testing"
)

func TestMove(t *testing.T) {
	buf := captureReport(t)

	ship := NewDefaultStarship(1)

	ship.Move(2)
	if got := ship.GetSector(); got != 2 {
		t.Errorf("sector after move = %d, want 2", got)
	}

	ship.Move(2)
	if got := ship.GetSector(); got != 2 {
		t.Errorf("sector after redundant move = %d, want 2", got)
	}

	lines := reportLines(buf)
	want := []string{
		"a neutral starship has moved to sector 2",
		"a neutral starship already in sector 2",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d report lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestMoveWhileDocked(t *testing.T) {
	buf := captureReport(t)

	fleet := NewFleet("Blue")
	ship := NewDefaultStarship(1)
	base := NewDefaultStarbase(1)
	fleet.AddEntity(ship)
	fleet.AddEntity(base)

	ship.Dock(base)
	buf.Reset()

	ship.Move(2)
	if got := ship.GetSector(); got != 1 {
		t.Errorf("docked ship moved to sector %d", got)
	}
	want := "Blue's starship #1 cannot move while docked"
	if got := strings.TrimSuffix(buf.String(), "\n"); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
}

func TestDockRegistersBothSides(t *testing.T) {
	buf := captureReport(t)

	fleet := NewFleet("Blue")
	ship := NewDefaultStarship(1)
	base := NewDefaultStarbase(1)
	fleet.AddEntity(ship)
	fleet.AddEntity(base)

	ship.Dock(base)

	if ship.GetDockedAt() != base {
		t.Error("ship not registered at starbase")
	}
	if len(base.GetDockedShips()) != 1 || base.GetDockedShips()[0] != ship {
		t.Error("starbase docked list missing ship")
	}
	want := "Blue's starship #1 has docked at Blue's starbase #1"
	if got := strings.TrimSuffix(buf.String(), "\n"); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
}

func TestDockPreconditions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) (*Starship, *Starbase)
		want  string
	}{
		{
			name: "already docked",
			setup: func(t *testing.T) (*Starship, *Starbase) {
				fleet := NewFleet("Blue")
				ship := NewDefaultStarship(1)
				home := NewDefaultStarbase(1)
				other := NewDefaultStarbase(1)
				fleet.AddEntity(ship)
				fleet.AddEntity(home)
				fleet.AddEntity(other)
				ship.Dock(home)
				return ship, other
			},
			want: "Blue's starship #1 cannot dock - already docked at Blue's starbase #1",
		},
		{
			name: "enemy starbase",
			setup: func(t *testing.T) (*Starship, *Starbase) {
				blue := NewFleet("Blue")
				red := NewFleet("Red")
				ship := NewDefaultStarship(1)
				base := NewDefaultStarbase(1)
				blue.AddEntity(ship)
				red.AddEntity(base)
				return ship, base
			},
			want: "Blue's starship #1 cannot dock at Red's starbase #1 - it belongs to an enemy fleet",
		},
		{
			name: "wrong sector",
			setup: func(t *testing.T) (*Starship, *Starbase) {
				fleet := NewFleet("Blue")
				ship := NewDefaultStarship(1)
				base := NewDefaultStarbase(2)
				fleet.AddEntity(ship)
				fleet.AddEntity(base)
				return ship, base
			},
			want: "Blue's starship #1 cannot dock at Blue's starbase #1 - it is in sector 2, we are in sector 1",
		},
		{
			name: "destroyed starbase",
			setup: func(t *testing.T) (*Starship, *Starbase) {
				fleet := NewFleet("Blue")
				ship := NewDefaultStarship(1)
				base := NewDefaultStarbase(1)
				fleet.AddEntity(ship)
				fleet.AddEntity(base)
				base.TakeDamage(1000)
				return ship, base
			},
			want: "Blue's starship #1 cannot dock at Blue's starbase #1 - starbase has been destroyed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureReport(t)
			ship, base := tt.setup(t)
			buf.Reset()

			dockedBefore := len(base.GetDockedShips())
			ship.Dock(base)

			if got := strings.TrimSuffix(buf.String(), "\n"); got != tt.want {
				t.Errorf("report = %q, want %q", got, tt.want)
			}
			if len(base.GetDockedShips()) != dockedBefore {
				t.Error("failed dock mutated the starbase docked list")
			}
		})
	}
}

func TestUndock(t *testing.T) {
	buf := captureReport(t)

	fleet := NewFleet("Blue")
	ship := NewDefaultStarship(1)
	base := NewDefaultStarbase(1)
	fleet.AddEntity(ship)
	fleet.AddEntity(base)

	ship.Dock(base)
	buf.Reset()

	ship.Undock()

	if ship.GetDockedAt() != nil {
		t.Error("ship still docked after undock")
	}
	if len(base.GetDockedShips()) != 0 {
		t.Error("starbase still lists ship after undock")
	}
	want := "Blue's starship #1 has undocked from Blue's starbase #1"
	if got := strings.TrimSuffix(buf.String(), "\n"); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}

	// Undocking while not docked is a silent no-op.
	buf.Reset()
	ship.Undock()
	if buf.Len() != 0 {
		t.Errorf("undock while undocked reported %q", buf.String())
	}
}

func TestRepairRequiresDock(t *testing.T) {
	buf := captureReport(t)

	ship := NewDefaultStarship(1)
	ship.Repair()

	want := "a neutral starship cannot repair - not docked at a starbase"
	if got := strings.TrimSuffix(buf.String(), "\n"); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
}

func TestRepairTiers(t *testing.T) {
	tests := []struct {
		damage   int
		wantSkip int
	}{
		{80, 4}, // 20% health
		{55, 3}, // 45% health
		{40, 2}, // 60% health
		{10, 1}, // 90% health
		{0, 1},  // full health
	}

	for _, tt := range tests {
		captureReport(t)

		fleet := NewFleet("Blue")
		ship := NewDefaultStarship(1)
		base := NewDefaultStarbase(1)
		fleet.AddEntity(ship)
		fleet.AddEntity(base)

		if tt.damage > 0 {
			ship.TakeDamage(tt.damage)
		}
		ship.Dock(base)
		ship.Repair()

		if got := ship.GetCurrHealth(); got != 100 {
			t.Errorf("damage %d: health after repair = %d, want 100", tt.damage, got)
		}
		if got := ship.GetCurrCrew(); got != 10 {
			t.Errorf("damage %d: crew after repair = %d, want 10", tt.damage, got)
		}
		if got := ship.actionsToSkip; got != tt.wantSkip {
			t.Errorf("damage %d: actions to skip = %d, want %d", tt.damage, got, tt.wantSkip)
		}
	}
}

func TestRepairCooldownConsumedOncePerAction(t *testing.T) {
	buf := captureReport(t)

	fleet := NewFleet("Blue")
	ship := NewDefaultStarship(1)
	base := NewDefaultStarbase(1)
	fleet.AddEntity(ship)
	fleet.AddEntity(base)

	ship.TakeDamage(80)
	ship.Dock(base)
	ship.Repair()
	buf.Reset()

	// Four blocked attempts, one cooldown turn consumed per attempt.
	for i := 0; i < 4; i++ {
		ship.Undock()
	}
	if ship.GetDockedAt() != base {
		t.Error("ship undocked while under repair cooldown")
	}

	lines := reportLines(buf)
	want := []string{
		"Blue's starship #1 is currently being repaired and will be ready in 4 actions",
		"Blue's starship #1 is currently being repaired and will be ready in 3 actions",
		"Blue's starship #1 is currently being repaired and will be ready in 2 actions",
		"Blue's starship #1 is currently being repaired and will be ready in 1 action",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d report lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	// Cooldown exhausted, the next action goes through.
	ship.Undock()
	if ship.GetDockedAt() != nil {
		t.Error("ship should undock after cooldown expires")
	}
}

func TestAttackDamageFloor(t *testing.T) {
	captureReport(t)

	blue := NewFleet("Blue")
	red := NewFleet("Red")
	attacker := NewDefaultStarship(1)
	defender := mustStarship(t, 1, 30, 1000, 10, 100)
	blue.AddEntity(attacker)
	red.AddEntity(defender)

	attacker.Attack(defender)

	if got := defender.GetCurrHealth(); got != 95 {
		t.Errorf("defender health = %d, want 95 (minimum damage 5)", got)
	}
}

func TestAttackPreconditions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) (*Starship, Member)
		want  string
	}{
		{
			name: "while docked",
			setup: func(t *testing.T) (*Starship, Member) {
				blue := NewFleet("Blue")
				red := NewFleet("Red")
				attacker := NewDefaultStarship(1)
				base := NewDefaultStarbase(1)
				target := NewDefaultStarship(1)
				blue.AddEntity(attacker)
				blue.AddEntity(base)
				red.AddEntity(target)
				attacker.Dock(base)
				return attacker, target
			},
			want: "Blue's starship #1 cannot attack while docked",
		},
		{
			name: "friendly fire",
			setup: func(t *testing.T) (*Starship, Member) {
				blue := NewFleet("Blue")
				attacker := NewDefaultStarship(1)
				teammate := NewDefaultStarship(1)
				blue.AddEntity(attacker)
				blue.AddEntity(teammate)
				return attacker, teammate
			},
			want: "Blue's starship #1 cannot attack teammate Blue's starship #2 - no friendly fire",
		},
		{
			name: "wrong sector",
			setup: func(t *testing.T) (*Starship, Member) {
				blue := NewFleet("Blue")
				red := NewFleet("Red")
				attacker := NewDefaultStarship(1)
				target := NewDefaultStarship(3)
				blue.AddEntity(attacker)
				red.AddEntity(target)
				return attacker, target
			},
			want: "Blue's starship #1 cannot attack Red's starship #1 - target is in sector 3, we are in sector 1",
		},
		{
			name: "target already destroyed",
			setup: func(t *testing.T) (*Starship, Member) {
				blue := NewFleet("Blue")
				red := NewFleet("Red")
				attacker := NewDefaultStarship(1)
				target := NewDefaultStarship(1)
				blue.AddEntity(attacker)
				red.AddEntity(target)
				target.TakeDamage(1000)
				return attacker, target
			},
			want: "Blue's starship #1 cannot attack Red's starship #1 - target already destroyed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureReport(t)
			attacker, target := tt.setup(t)
			buf.Reset()

			healthBefore := attacker.GetCurrHealth()
			attacker.Attack(target)

			if got := strings.TrimSuffix(buf.String(), "\n"); got != tt.want {
				t.Errorf("report = %q, want %q", got, tt.want)
			}
			if attacker.GetCurrHealth() != healthBefore {
				t.Error("rejected attack mutated attacker state")
			}
		})
	}
}

func TestAttackSequenceDegradesDefense(t *testing.T) {
	captureReport(t)

	blue := NewFleet("Blue")
	red := NewFleet("Red")
	attacker := NewDefaultStarship(1)
	defender := NewDefaultStarship(1)
	blue.AddEntity(attacker)
	red.AddEntity(defender)

	// Defense is recomputed from current health and crew before each hit,
	// so successive hits land harder.
	steps := []struct {
		wantHealth int
		wantCrew   int
	}{
		{80, 8}, // damage 30-10=20, crew loss ceil(20*10/100)=2
		{58, 6}, // damage 30-8=22, crew loss ceil(22*8/100)=2
		{33, 4}, // damage 30-5=25, crew loss ceil(25*6/100)=2
	}

	for i, step := range steps {
		attacker.Attack(defender)
		if got := defender.GetCurrHealth(); got != step.wantHealth {
			t.Errorf("hit %d: defender health = %d, want %d", i+1, got, step.wantHealth)
		}
		if got := defender.GetCurrCrew(); got != step.wantCrew {
			t.Errorf("hit %d: defender crew = %d, want %d", i+1, got, step.wantCrew)
		}
	}
}

func TestDockedShipIsInvulnerable(t *testing.T) {
	buf := captureReport(t)

	blue := NewFleet("Blue")
	red := NewFleet("Red")
	attacker := NewDefaultStarship(1)
	target := NewDefaultStarship(1)
	base := NewDefaultStarbase(1)
	blue.AddEntity(attacker)
	red.AddEntity(target)
	red.AddEntity(base)

	target.Dock(base)
	buf.Reset()

	attacker.Attack(target)

	if got := target.GetCurrHealth(); got != 100 {
		t.Errorf("docked target health = %d, want 100", got)
	}
	if got := target.GetCurrCrew(); got != 10 {
		t.Errorf("docked target crew = %d, want 10", got)
	}
	// The attacker fires, but no damage line follows.
	want := "Blue's starship #1 attacked Red's starship #1"
	if got := strings.TrimSuffix(buf.String(), "\n"); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
}

func TestCrewAttrition(t *testing.T) {
	captureReport(t)

	ship := NewDefaultStarship(1)
	ship.TakeDamage(23)

	// ceil(23/100 * 10) = 3
	if got := ship.GetCurrCrew(); got != 7 {
		t.Errorf("crew after 23 damage = %d, want 7", got)
	}

	// Crew never drops below the floor of 1.
	ship.TakeDamage(1000)
	if got := ship.GetCurrCrew(); got != 1 {
		t.Errorf("crew after overkill = %d, want 1", got)
	}
}

func TestDestroyBypassesDockShield(t *testing.T) {
	captureReport(t)

	fleet := NewFleet("Blue")
	ship := NewDefaultStarship(1)
	base := NewDefaultStarbase(1)
	fleet.AddEntity(ship)
	fleet.AddEntity(base)

	ship.Dock(base)
	ship.Destroy()

	if !ship.IsDead() {
		t.Error("ship should be destroyed")
	}
	if ship.GetDockedAt() != nil {
		t.Error("destroyed ship still docked")
	}
}
