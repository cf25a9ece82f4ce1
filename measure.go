package measure

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidValue indicates a value supplied for construction is not a
// number.
var ErrInvalidValue = errors.New("value is not a number")

// ErrIncompatibleUnits indicates a conversion or operation was attempted
// between units of different types.
var ErrIncompatibleUnits = errors.New("units must share the same type")

// ErrUnknownUnit indicates a conversion target name is not registered under
// the measure's type.
var ErrUnknownUnit = errors.New("unit is not registered for the measure's type")

// ErrUnknownOperation indicates an operation name is not registered.
var ErrUnknownOperation = errors.New("operation is not registered")

// Precision bounds for a measure's significant digits. MaxPrecision stays
// within the significant decimal digits a float64 round-trips reliably.
const (
	MinPrecision = 1
	MaxPrecision = 15
)

// Measure is an immutable magnitude tagged with a unit and a
// significant-digit precision. The raw magnitude is kept at full precision
// in the measure's own unit scale; the rounded value is computed once at
// construction. Every transformation returns a new measure.
//
// Construct measures with New or NewWithPrecision; the zero Measure carries
// a zero unit and does not combine with constructed measures.
type Measure struct {
	raw       float64
	unit      Unit
	precision int
	val       float64
}

// New creates a measure at maximum precision. A zero-valued unit selects
// the reserved Dimensionless unit. NaN values are rejected with
// ErrInvalidValue; infinite values are allowed and follow floating-point
// semantics through arithmetic.
func New(value float64, u Unit) (Measure, error) {
	return NewWithPrecision(value, u, MaxPrecision)
}

// NewWithPrecision creates a measure with the given significant-digit
// precision, clamped to [MinPrecision, MaxPrecision].
func NewWithPrecision(value float64, u Unit, precision int) (Measure, error) {
	if math.IsNaN(value) {
		return Measure{}, fmt.Errorf("measure value %v: %w", value, ErrInvalidValue)
	}
	if u == (Unit{}) {
		u = Dimensionless
	}
	return newMeasure(value, u, precision), nil
}

// newMeasure builds a measure without value validation. Operation results
// go through here so divide-by-zero keeps IEEE semantics instead of
// failing.
func newMeasure(raw float64, u Unit, precision int) Measure {
	p := clampPrecision(precision)
	return Measure{raw: raw, unit: u, precision: p, val: roundSig(raw, p)}
}

// Raw returns the full-precision magnitude in the measure's own unit.
func (m Measure) Raw() float64 { return m.raw }

// Val returns the magnitude rounded to the measure's precision in
// significant digits.
func (m Measure) Val() float64 { return m.val }

// Unit returns the measure's unit.
func (m Measure) Unit() Unit { return m.unit }

// Precision returns the measure's significant-digit precision.
func (m Measure) Precision() int { return m.precision }

// WithPrecision returns a copy of the measure at the given precision,
// clamped to [MinPrecision, MaxPrecision], with its rounded value
// recomputed.
func (m Measure) WithPrecision(precision int) Measure {
	return newMeasure(m.raw, m.unit, precision)
}

// As converts the measure to another unit of the same type. The resulting
// raw magnitude is raw * unit.Scale / target.Scale; precision is unchanged.
// A zero-valued target selects the reserved Dimensionless unit.
func (m Measure) As(target Unit) (Measure, error) {
	if target == (Unit{}) {
		target = Dimensionless
	}
	if !Comparable(m.unit, target) {
		return Measure{}, fmt.Errorf("convert %s to %s: %w", m.unit.Type, target.Type, ErrIncompatibleUnits)
	}
	return newMeasure(m.raw*m.unit.Scale/target.Scale, target, m.precision), nil
}

// AsNamed converts the measure to the unit registered under the given name
// for the measure's own type in reg. It returns ErrUnknownUnit when the
// name does not resolve.
func (m Measure) AsNamed(reg *Registry, name string) (Measure, error) {
	target, ok := reg.Lookup(m.unit.Type, name)
	if !ok {
		return Measure{}, fmt.Errorf("unit %q under type %s: %w", name, m.unit.Type, ErrUnknownUnit)
	}
	return m.As(target)
}

// Apply combines two measures through the named operation from ops, looked
// up at call time, so operations registered after a measure was constructed
// are immediately usable on it. The right operand's magnitude is brought
// into the receiver's unit before the operation runs, so the result is
// expressed in the receiver's unit:
//
//	fn(raw, otherRaw·otherScale/scale)
//
// The result's precision is the minimum of the operands' precisions, and
// its unit is always the receiver's, even for operations whose mathematical
// result would be dimensionless.
func (m Measure) Apply(ops *Ops, name string, other Measure) (Measure, error) {
	fn, ok := ops.Lookup(name)
	if !ok {
		return Measure{}, fmt.Errorf("operation %q: %w", name, ErrUnknownOperation)
	}
	if !Comparable(m.unit, other.unit) {
		return Measure{}, fmt.Errorf("%s between %s and %s: %w", name, m.unit.Type, other.unit.Type, ErrIncompatibleUnits)
	}

	raw := fn(m.raw, other.raw*other.unit.Scale/m.unit.Scale)
	precision := m.precision
	if other.precision < precision {
		precision = other.precision
	}
	return newMeasure(raw, m.unit, precision), nil
}

// Add returns m + other via DefaultOps, in m's unit.
func (m Measure) Add(other Measure) (Measure, error) {
	return m.Apply(DefaultOps, "add", other)
}

// Subtract returns m - other via DefaultOps, in m's unit.
func (m Measure) Subtract(other Measure) (Measure, error) {
	return m.Apply(DefaultOps, "subtract", other)
}

// Multiply returns m * other via DefaultOps, in m's unit.
func (m Measure) Multiply(other Measure) (Measure, error) {
	return m.Apply(DefaultOps, "multiply", other)
}

// Divide returns m / other via DefaultOps, in m's unit. Division by a zero
// magnitude follows floating-point semantics and yields an infinite or NaN
// result rather than an error.
func (m Measure) Divide(other Measure) (Measure, error) {
	return m.Apply(DefaultOps, "divide", other)
}

// Cmp compares two measures of the same type by their rounded values
// brought to the dimension's base scale. It returns -1, 0, or 1, or
// ErrIncompatibleUnits when the units differ in type.
func (m Measure) Cmp(other Measure) (int, error) {
	if !Comparable(m.unit, other.unit) {
		return 0, fmt.Errorf("compare %s against %s: %w", m.unit.Type, other.unit.Type, ErrIncompatibleUnits)
	}

	a := m.val * m.unit.Scale
	b := other.val * other.unit.Scale
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether two measures of the same type represent the same
// rounded magnitude.
func (m Measure) Equal(other Measure) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// clampPrecision clamps a precision to [MinPrecision, MaxPrecision].
func clampPrecision(precision int) int {
	if precision < MinPrecision {
		return MinPrecision
	}
	if precision > MaxPrecision {
		return MaxPrecision
	}
	return precision
}

// roundSig rounds x to the given number of significant digits via a decimal
// format-and-reparse round-trip, matching how the rounded value displays.
func roundSig(x float64, digits int) float64 {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', digits, 64), 64)
	if err != nil {
		return x
	}
	return rounded
}
