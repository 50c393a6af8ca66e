package rig

import "math"

// MaxEnergy is the figure's starting and maximum energy.
const MaxEnergy = 100.0

// Vitality tracks the figure's energy, alive/dead status and score points.
//
// The only state transition is alive → dead, fired the instant a damage
// application leaves energy at or below zero. It is irreversible: there is
// no resurrection path, and every mutator degrades to a no-op once dead.
// Energy is allowed to overshoot below zero on the killing blow; the
// recorded value keeps the overshoot.
type Vitality struct {
	energy float64
	alive  bool
	points int
}

// NewVitality returns a live vitality state at full energy and zero points.
func NewVitality() Vitality {
	return Vitality{energy: MaxEnergy, alive: true}
}

// ApplyDamage subtracts amount from energy. If the result is at or below
// zero the state transitions to dead. No-op when already dead.
func (v *Vitality) ApplyDamage(amount float64) {
	if !v.alive {
		return
	}
	v.energy -= amount
	if v.energy <= 0 {
		v.alive = false
	}
}

// Heal adds amount to energy, clamped to MaxEnergy. No-op when dead.
func (v *Vitality) Heal(amount float64) {
	if !v.alive {
		return
	}
	v.energy = math.Min(v.energy+amount, MaxEnergy)
}

// AddPoints increases the score. No-op when dead.
func (v *Vitality) AddPoints(amount int) {
	if !v.alive {
		return
	}
	v.points += amount
}

// Energy returns the current energy, including any negative overshoot
// recorded at death.
func (v *Vitality) Energy() float64 { return v.energy }

// Alive reports whether the figure still accepts motion, damage, healing
// and scoring.
func (v *Vitality) Alive() bool { return v.alive }

// Points returns the accumulated score.
func (v *Vitality) Points() int { return v.points }

// Figure-level delegation: vitality is part of the figure's observable
// state, so the figure exposes the same operations directly.

// ApplyDamage applies damage to the figure's vitality.
func (f *Figure) ApplyDamage(amount float64) { f.vit.ApplyDamage(amount) }

// Heal restores energy, clamped to MaxEnergy.
func (f *Figure) Heal(amount float64) { f.vit.Heal(amount) }

// AddPoints increases the figure's score while alive.
func (f *Figure) AddPoints(amount int) { f.vit.AddPoints(amount) }

// Energy returns the figure's current energy.
func (f *Figure) Energy() float64 { return f.vit.Energy() }

// Alive reports whether the figure is alive.
func (f *Figure) Alive() bool { return f.vit.Alive() }

// Points returns the figure's score.
func (f *Figure) Points() int { return f.vit.Points() }
