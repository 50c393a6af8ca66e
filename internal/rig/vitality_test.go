package rig

import "testing"

// TestVitality_InitialState tests full energy, alive, zero points.
func TestVitality_InitialState(t *testing.T) {
	v := NewVitality()

	if v.Energy() != 100 {
		t.Errorf("starting energy: got %v, want exactly 100", v.Energy())
	}
	if !v.Alive() {
		t.Error("new vitality should be alive")
	}
	if v.Points() != 0 {
		t.Errorf("starting points: got %d, want 0", v.Points())
	}
}

// TestApplyDamage tests energy reduction and the death transition at zero.
func TestApplyDamage(t *testing.T) {
	v := NewVitality()

	v.ApplyDamage(30)
	if v.Energy() != 70 {
		t.Errorf("energy after 30 damage: got %v, want 70", v.Energy())
	}
	if !v.Alive() {
		t.Error("figure should survive partial damage")
	}

	v.ApplyDamage(70)
	if v.Energy() != 0 {
		t.Errorf("energy at exact kill: got %v, want 0", v.Energy())
	}
	if v.Alive() {
		t.Error("figure should be dead at energy 0")
	}
}

// TestApplyDamage_Overshoot tests that the killing blow may leave energy
// negative: 150 damage from full leaves -50, and a following heal is a
// no-op on the dead figure.
func TestApplyDamage_Overshoot(t *testing.T) {
	v := NewVitality()

	v.ApplyDamage(150)
	if v.Energy() != -50 {
		t.Errorf("energy after overshoot kill: got %v, want -50", v.Energy())
	}
	if v.Alive() {
		t.Error("figure should be dead after overshoot kill")
	}

	v.Heal(10)
	if v.Energy() != -50 {
		t.Errorf("heal on dead figure changed energy: got %v, want -50", v.Energy())
	}
}

// TestHeal_Clamp tests that healing never pushes energy above the maximum.
func TestHeal_Clamp(t *testing.T) {
	v := NewVitality()
	v.ApplyDamage(20)

	v.Heal(5)
	if v.Energy() != 85 {
		t.Errorf("energy after heal 5: got %v, want 85", v.Energy())
	}

	v.Heal(1000)
	if v.Energy() != 100 {
		t.Errorf("energy after huge heal: got %v, want 100", v.Energy())
	}
}

// TestAddPoints tests score accumulation while alive.
func TestAddPoints(t *testing.T) {
	v := NewVitality()

	v.AddPoints(10)
	v.AddPoints(25)
	if v.Points() != 35 {
		t.Errorf("points: got %d, want 35", v.Points())
	}
}

// TestDeadFigure_AllMutatorsNoOp tests the dead-figure invariant: once dead,
// every vitality mutator leaves observable state unchanged.
func TestDeadFigure_AllMutatorsNoOp(t *testing.T) {
	v := NewVitality()
	v.AddPoints(7)
	v.ApplyDamage(200)

	energy, points := v.Energy(), v.Points()

	v.ApplyDamage(10)
	v.Heal(10)
	v.AddPoints(10)

	if v.Energy() != energy {
		t.Errorf("dead figure energy changed: got %v, want %v", v.Energy(), energy)
	}
	if v.Points() != points {
		t.Errorf("dead figure points changed: got %d, want %d", v.Points(), points)
	}
	if v.Alive() {
		t.Error("death must be irreversible")
	}
}

// TestFigure_VitalityDelegation tests the figure-level vitality surface.
func TestFigure_VitalityDelegation(t *testing.T) {
	f := New(Config{})

	f.ApplyDamage(40)
	f.Heal(15)
	f.AddPoints(3)

	if f.Energy() != 75 {
		t.Errorf("energy: got %v, want 75", f.Energy())
	}
	if f.Points() != 3 {
		t.Errorf("points: got %d, want 3", f.Points())
	}
	if !f.Alive() {
		t.Error("figure should be alive")
	}
}
