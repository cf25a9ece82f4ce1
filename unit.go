package measure

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"sync"
)

// ErrInvalidIdentifier indicates a unit type or unit name is not
// identifier-shaped (letters or underscore followed by word characters).
var ErrInvalidIdentifier = errors.New("type and unit names must be identifier-shaped")

// ErrInvalidScale indicates a unit scale is zero, negative, or not finite.
var ErrInvalidScale = errors.New("unit scale must be a positive finite number")

// ErrDuplicateUnit indicates a (type, name) pair is already registered.
var ErrDuplicateUnit = errors.New("unit already registered")

// Type identifies a dimension of measurement, such as distance or time.
// Units of the same type are mutually convertible.
type Type string

// Unit is a named scale within a dimension. Scale expresses the unit's size
// relative to the dimension's implicit base unit of 1, so a magnitude in
// this unit times Scale yields the magnitude in the base unit.
type Unit struct {
	Type   Type
	Name   string
	Abbrev string
	Scale  float64
}

// Comparable reports whether two units belong to the same dimension and can
// therefore be converted and combined.
func Comparable(a, b Unit) bool {
	return a.Type == b.Type
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_]\w*$`)

type unitKey struct {
	typ  Type
	name string
}

// Registry holds unit definitions grouped by type. Registration is
// append-only: units are immutable once registered and cannot be removed.
// All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	units map[unitKey]Unit
}

// NewRegistry creates an empty unit registry.
func NewRegistry() *Registry {
	return &Registry{
		units: make(map[unitKey]Unit),
	}
}

// Register adds a unit under the given type, creating the type namespace on
// first use. It returns the registered unit, or an error when the type or
// name is not identifier-shaped, the scale is not a positive finite number,
// or the (type, name) pair already exists.
func (r *Registry) Register(typ Type, name, abbrev string, scale float64) (Unit, error) {
	if !identifierRe.MatchString(string(typ)) {
		return Unit{}, fmt.Errorf("unit type %q: %w", typ, ErrInvalidIdentifier)
	}
	if !identifierRe.MatchString(name) {
		return Unit{}, fmt.Errorf("unit name %q: %w", name, ErrInvalidIdentifier)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return Unit{}, fmt.Errorf("unit %s/%s scale %v: %w", typ, name, scale, ErrInvalidScale)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := unitKey{typ: typ, name: name}
	if _, exists := r.units[key]; exists {
		return Unit{}, fmt.Errorf("unit %s/%s: %w", typ, name, ErrDuplicateUnit)
	}
	unit := Unit{Type: typ, Name: name, Abbrev: abbrev, Scale: scale}
	r.units[key] = unit
	return unit, nil
}

// Lookup returns the unit registered under the given type and name.
func (r *Registry) Lookup(typ Type, name string) (Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	unit, ok := r.units[unitKey{typ: typ, name: name}]
	return unit, ok
}

// MustLookup returns the unit registered under the given type and name, or
// panics if it is absent. Intended for init-time wiring against known
// tables.
func (r *Registry) MustLookup(typ Type, name string) Unit {
	unit, ok := r.Lookup(typ, name)
	if !ok {
		panic(fmt.Sprintf("unit %s/%s not registered", typ, name))
	}
	return unit
}

// Units returns all units of the given type, sorted by name.
func (r *Registry) Units(typ Type) []Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Unit, 0)
	for key, unit := range r.units {
		if key.typ == typ {
			result = append(result, unit)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Types returns all registered unit types, sorted.
func (r *Registry) Types() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Type]bool)
	result := make([]Type, 0)
	for key := range r.units {
		if !seen[key.typ] {
			seen[key.typ] = true
			result = append(result, key.typ)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
