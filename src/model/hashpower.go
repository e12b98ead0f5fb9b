package model

import (
	"fmt"
	"strings"
)

// Unit is a hash power magnitude, each step 1000x the previous one.
type Unit int

const (
	UnitH Unit = iota
	UnitKh
	UnitMh
	UnitGh
	UnitTh
	UnitPh
	UnitEh
	UnitZh
	UnitYh
)

var unitSymbols = [...]string{"H", "Kh", "Mh", "Gh", "Th", "Ph", "Eh", "Zh", "Yh"}

// Units lists every unit in ascending order.
func Units() []Unit {
	return []Unit{UnitH, UnitKh, UnitMh, UnitGh, UnitTh, UnitPh, UnitEh, UnitZh, UnitYh}
}

func (u Unit) Valid() bool {
	return u >= UnitH && u <= UnitYh
}

func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitSymbols[u]
}

// ParseUnit accepts a unit symbol in any case, eg "eh", "EH" or "Eh".
func ParseUnit(s string) (Unit, bool) {
	for i, sym := range unitSymbols {
		if strings.EqualFold(sym, s) {
			return Unit(i), true
		}
	}
	return UnitH, false
}

func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("invalid hash power unit %d", int(u))
	}
	return []byte(unitSymbols[u]), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, ok := ParseUnit(string(text))
	if !ok {
		return fmt.Errorf("unknown hash power unit %q", string(text))
	}
	*u = parsed
	return nil
}

// HashPower is a value in a given unit of hashes per second.
type HashPower struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  Unit    `json:"unit" yaml:"unit"`
}
