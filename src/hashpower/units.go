// Package hashpower converts hash power values between units and renders them
// for display.
package hashpower

import (
	"math"

	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

// exact powers of 1000 indexed by unit, base is H/s
var multipliers = [...]float64{1e0, 1e3, 1e6, 1e9, 1e12, 1e15, 1e18, 1e21, 1e24}

// GhPerBase divides a base H/s value into Gh/s.
const GhPerBase = 1e9

// Multiplier returns the H/s factor of a unit; an invalid unit counts as H.
func Multiplier(u model.Unit) float64 {
	if !u.Valid() {
		return 1
	}
	return multipliers[u]
}

func ToBase(p model.HashPower) float64 {
	return p.Value * Multiplier(p.Unit)
}

func FromBase(base float64, u model.Unit) model.HashPower {
	return model.HashPower{Value: base / Multiplier(u), Unit: u}
}

// AutoScale picks the largest unit that keeps the value at or above 1,
// preferring the first one landing in [1, 1000). Zero, negative and NaN
// inputs come back as 0 H.
func AutoScale(base float64) model.HashPower {
	if !(base > 0) {
		return model.HashPower{Value: 0, Unit: model.UnitH}
	}
	best := model.UnitH
	for _, u := range model.Units() {
		scaled := base / multipliers[u]
		if scaled >= 1 && scaled < 1000 {
			best = u
			break
		}
		if scaled >= 1 {
			best = u
		}
	}
	return FromBase(base, best)
}

// FromGh auto-scales a Gh/s figure, the unit league feeds report in.
func FromGh(gh float64) model.HashPower {
	return AutoScale(gh * GhPerBase)
}

// ToGh converts p to Gh/s.
func ToGh(p model.HashPower) float64 {
	return ToBase(p) / GhPerBase
}

// Sum adds powers in base units and auto-scales the total.
func Sum(powers ...model.HashPower) model.HashPower {
	total := 0.0
	for _, p := range powers {
		total += ToBase(p)
	}
	return AutoScale(total)
}

// IsZero reports whether p bases to zero or is not a number.
func IsZero(p model.HashPower) bool {
	base := ToBase(p)
	return base == 0 || math.IsNaN(base)
}
