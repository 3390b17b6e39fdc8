package evap

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-echo/internal/numeric"
)

func TestHawkingLifetime(t *testing.T) {
	m := DefaultModel()
	for _, tc := range []struct{ mass, want float64 }{
		{0, 0}, {0.1, 1e-3}, {1, 1}, {10, 1000},
	} {
		got, err := m.HawkingLifetime(tc.mass)
		if err != nil {
			t.Fatalf("HawkingLifetime(%v) error: %v", tc.mass, err)
		}
		if !numeric.NearlyEqual(got, tc.want, 1e-12) {
			t.Fatalf("HawkingLifetime(%v)=%v want=%v", tc.mass, got, tc.want)
		}
	}
}

func TestRemnantLifetime(t *testing.T) {
	m := DefaultModel()

	got, err := m.RemnantLifetime(1)
	if err != nil || got != 0 {
		t.Fatalf("RemnantLifetime(M_P)=%v, %v want 0, nil", got, err)
	}

	got, err = m.RemnantLifetime(10)
	if err != nil {
		t.Fatalf("RemnantLifetime error: %v", err)
	}
	want := 999 / (1 - 0.3607)
	if !numeric.NearlyEqual(got, want, 1e-12) {
		t.Fatalf("RemnantLifetime(10)=%v want=%v", got, want)
	}

	if _, err := m.RemnantLifetime(0.5); !errors.Is(err, ErrBelowRemnant) {
		t.Fatalf("error=%v want=%v", err, ErrBelowRemnant)
	}
}

func TestRemnantSlowerThanHawkingForLargeMass(t *testing.T) {
	m := DefaultModel()
	for _, mass := range numeric.Logspace(3, 15, 50) {
		h, _ := m.HawkingLifetime(mass)
		r, err := m.RemnantLifetime(mass)
		if err != nil {
			t.Fatalf("RemnantLifetime(%v) error: %v", mass, err)
		}
		if !(r > h) {
			t.Fatalf("mass %v: remnant %v not above Hawking %v", mass, r, h)
		}
		if !numeric.NearlyEqual(r/h, 1/(1-m.AlphaH), 1e-6) {
			t.Fatalf("mass %v: ratio %v want≈%v", mass, r/h, 1/(1-m.AlphaH))
		}
	}
}

func TestCurve(t *testing.T) {
	m := DefaultModel()
	pts, err := m.Curve(numeric.Logspace(-1, 2, 4))
	if err != nil {
		t.Fatalf("Curve error: %v", err)
	}
	if len(pts) != 4 {
		t.Fatalf("len=%d want=4", len(pts))
	}
	if pts[0].HasRemnant {
		t.Fatalf("mass %v below M_P should have no remnant lifetime", pts[0].Mass)
	}
	for _, p := range pts[1:] {
		if !p.HasRemnant {
			t.Fatalf("mass %v should have a remnant lifetime", p.Mass)
		}
	}
	if pts[1].Remnant != 0 {
		t.Fatalf("remnant lifetime at M_P=%v want=0", pts[1].Remnant)
	}
	prev := -1.0
	for _, p := range pts {
		if !(p.Hawking > prev) {
			t.Fatalf("Hawking lifetime not increasing at mass %v", p.Mass)
		}
		prev = p.Hawking
	}
}

func TestCoreRadius(t *testing.T) {
	m := Model{AlphaH: 0.361, PlanckMass: 1, K: 1}
	got, err := m.CoreRadius(1)
	if err != nil {
		t.Fatalf("CoreRadius error: %v", err)
	}
	if math.Abs(got-0.6008327554319921) > 1e-15 {
		t.Fatalf("CoreRadius=%v want≈0.6008", got)
	}
	if _, err := m.CoreRadius(0); !errors.Is(err, ErrInvalidMass) {
		t.Fatalf("error=%v want=%v", err, ErrInvalidMass)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		m    Model
		want error
	}{
		{Model{AlphaH: 1, PlanckMass: 1, K: 1}, ErrInvalidAlpha},
		{Model{AlphaH: -0.1, PlanckMass: 1, K: 1}, ErrInvalidAlpha},
		{Model{AlphaH: 0.3, PlanckMass: 0, K: 1}, ErrInvalidPlanckMass},
		{Model{AlphaH: 0.3, PlanckMass: 1, K: 0}, ErrInvalidScale},
	}
	for _, tc := range tests {
		if err := tc.m.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("Validate(%+v)=%v want=%v", tc.m, err, tc.want)
		}
		if _, err := tc.m.Curve([]float64{2}); !errors.Is(err, tc.want) {
			t.Fatalf("Curve(%+v)=%v want=%v", tc.m, err, tc.want)
		}
	}

	if _, err := DefaultModel().HawkingLifetime(-1); !errors.Is(err, ErrInvalidMass) {
		t.Fatalf("negative mass error=%v", err)
	}
}
