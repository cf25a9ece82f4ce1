package measure

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMeasure_String(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		unit      Unit
		precision int
		want      string
	}{
		{"integer with abbreviation", 5, Kilometer, MaxPrecision, "5 km"},
		{"fractional with abbreviation", 2.5, Kilometer, MaxPrecision, "2.5 km"},
		{"rounded to precision", 1.23456789, Meter, 3, "1.23 m"},
		{"single digit precision", 987.654, Second, 1, "1,000 s"},
		{"dimensionless has no suffix", 7, Dimensionless, MaxPrecision, "7"},
		{"count has no suffix", 42, Count, MaxPrecision, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewWithPrecision(tt.value, tt.unit, tt.precision)
			if err != nil {
				t.Fatal(err)
			}
			if got := m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMeasure_FormatLocale(t *testing.T) {
	m, err := New(2.5, Kilometer)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		tag  language.Tag
		want string
	}{
		{"english", language.English, "2.5 km"},
		{"german", language.German, "2,5 km"},
		{"french", language.French, "2,5 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Format(tt.tag); got != tt.want {
				t.Errorf("Format(%s) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}
