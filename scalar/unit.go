// SPDX-License-Identifier: MIT
// Package scalar: the Unit kind.
//
// Purpose:
//   - Represent a magnitude attached to a physical unit so that ordering
//     operators can enforce dimensional compatibility.
//   - Keep the surface minimal: no unit-conversion arithmetic, no composite
//     units — the comparison boundary is the whole contract.
//
// Policy:
//   - Two units are comparable iff their base dimensions match; comparison
//     happens on magnitudes normalized into the base unit.
//   - Arithmetic beyond same-name addition is out of scope and rejected.

package scalar

import "fmt"

// unitDef describes one entry of the unit table: the base dimension it
// belongs to and the factor converting its magnitude into the base unit.
type unitDef struct {
	base   string  // base dimension name ("length", "mass", "time")
	factor float64 // multiplier into the base unit (m, kg, s)
}

// unitTable is the closed set of recognized unit names.
var unitTable = map[string]unitDef{
	"mm": {base: "length", factor: 1e-3},
	"cm": {base: "length", factor: 1e-2},
	"m":  {base: "length", factor: 1},
	"km": {base: "length", factor: 1e3},
	"g":  {base: "mass", factor: 1e-3},
	"kg": {base: "mass", factor: 1},
	"ms": {base: "time", factor: 1e-3},
	"s":  {base: "time", factor: 1},
	"h":  {base: "time", factor: 3600},
}

// Unit is a magnitude expressed in a named unit. The zero value (magnitude 0,
// empty name) is the canonical zero of the kind and compares as a
// dimensionless 0 against any unit.
type Unit struct {
	mag  float64 // magnitude in the named unit
	name string  // unit name; "" only for the canonical zero
}

// NewUnit builds a Unit from a magnitude and a unit name.
// Returns ErrUnknownUnit when the name is not in the unit table.
func NewUnit(mag float64, name string) (Unit, error) {
	if _, ok := unitTable[name]; !ok {
		return Unit{}, fmt.Errorf("NewUnit(%q): %w", name, ErrUnknownUnit)
	}

	return Unit{mag: mag, name: name}, nil
}

// Magnitude returns the magnitude in the unit's own name (not normalized).
func (u Unit) Magnitude() float64 { return u.mag }

// Name returns the unit name ("cm", "kg", ...); empty for the canonical zero.
func (u Unit) Name() string { return u.name }

// Base returns the base dimension of the unit; empty for the canonical zero.
func (u Unit) Base() string { return unitTable[u.name].base }

// normalized returns the magnitude converted into the base unit.
// The canonical zero normalizes to 0 regardless of dimension.
func (u Unit) normalized() float64 {
	if u.name == "" {
		return 0
	}

	return u.mag * unitTable[u.name].factor
}

// compatible reports whether two units share a base dimension. The canonical
// zero is compatible with everything (absence of a sparse entry must be
// comparable against any stored unit).
func (u Unit) compatible(v Unit) bool {
	if u.name == "" || v.name == "" {
		return true
	}

	return u.Base() == v.Base()
}

// Kind implements Value.
func (Unit) Kind() Kind { return KindUnit }

// String implements Value.
func (u Unit) String() string {
	if u.name == "" {
		return "0"
	}

	return fmt.Sprintf("%g %s", u.mag, u.name)
}

func (Unit) sealed() {}
