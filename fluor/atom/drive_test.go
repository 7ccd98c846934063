package atom

import (
	"math"
	"testing"
)

func TestLaserIntensity(t *testing.T) {
	got := LaserIntensity(1, 1)
	if math.Abs(got-2/math.Pi) > 1e-15 {
		t.Fatalf("LaserIntensity(1, 1) = %v, want %v", got, 2/math.Pi)
	}

	if got := LaserIntensity(0, 1); got != 0 {
		t.Fatalf("zero waist: got %v, want 0", got)
	}
}

func TestSaturationFromIntensity(t *testing.T) {
	tests := []struct {
		name      string
		intensity float64
		isat      float64
		want      float64
	}{
		{"reference", 1, 1.669, 0.5991611743559018},
		{"equal", 2.5, 2.5, 1},
		{"zero isat", 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SaturationFromIntensity(tt.intensity, tt.isat)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRabiSaturationRoundTrip(t *testing.T) {
	for _, rabi := range []float64{0, 0.1, 0.5473395538218948, 1, 3.3, 25} {
		got := RabiFromSaturation(SaturationFromRabi(rabi))
		if math.Abs(got-rabi) > 1e-12*math.Max(1, rabi) {
			t.Errorf("round trip of %v = %v", rabi, got)
		}
	}
}

func TestRabiFromSaturationNonPositive(t *testing.T) {
	if got := RabiFromSaturation(-1); got != 0 {
		t.Fatalf("RabiFromSaturation(-1) = %v, want 0", got)
	}
}

func TestGeneralisedRabi(t *testing.T) {
	if got := GeneralisedRabi(0.5, 1, 1); math.Abs(got-1.118033988749895) > 1e-12 {
		t.Fatalf("GeneralisedRabi(0.5, 1, 1) = %v", got)
	}
	if got := GeneralisedRabi(2, 0, 2); math.Abs(got-1) > 1e-15 {
		t.Fatalf("GeneralisedRabi(2, 0, 2) = %v, want 1", got)
	}
	if got := GeneralisedRabi(1, 1, 0); got != 0 {
		t.Fatalf("zero gamma: got %v, want 0", got)
	}
}

func TestSaturationVariable(t *testing.T) {
	if got := SaturationVariable(2, 0, 1); got != 2 {
		t.Fatalf("on resonance: got %v, want 2", got)
	}
	// 1 + 4·(1/2)² = 2
	if got := SaturationVariable(2, 0.5, 1); math.Abs(got-1) > 1e-15 {
		t.Fatalf("half-linewidth detuning: got %v, want 1", got)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(90); math.Abs(got-math.Pi/2) > 1e-15 {
		t.Fatalf("Radians(90) = %v", got)
	}
}
