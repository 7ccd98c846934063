package params

import (
	"errors"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	in, err := Parse(map[string]string{
		FieldSaturationParameter: "",
		FieldRabiFrequency:       "  ",
		FieldLaserIntensity:      "1.0",
		FieldSaturationIntensity: "1.669",
		FieldDetuning:            "-2.5",
		FieldTemperature:         "100",
		FieldErrorSigma:          "0.1",
		FieldErrorSamples:        "30",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if in.RabiFrequency != nil || in.SaturationParameter != nil {
		t.Fatalf("blank fields must stay unset")
	}
	if in.LaserIntensity == nil || *in.LaserIntensity != 1 {
		t.Fatalf("LaserIntensity = %v", in.LaserIntensity)
	}
	if in.Detuning == nil || *in.Detuning != -2.5 {
		t.Fatalf("Detuning = %v", in.Detuning)
	}
	if in.Angle != nil {
		t.Fatalf("Angle should be unset")
	}
	if in.Gamma != DefaultGamma {
		t.Fatalf("Gamma = %v, want default", in.Gamma)
	}
	want := Noise{Sigma: 0.1, Samples: 30}
	if in.Noise != want {
		t.Fatalf("Noise = %+v, want %+v", in.Noise, want)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse(map[string]string{FieldDetuning: "abc"})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if errors.Is(err, ErrMissingInput) {
		t.Fatalf("parse error must not match ErrMissingInput")
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("expected wrapped strconv.ErrSyntax, got %v", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Field != FieldDetuning {
		t.Fatalf("expected *ParseError for %s, got %v", FieldDetuning, err)
	}
}

func TestNoise(t *testing.T) {
	if (Noise{}).Enabled() {
		t.Fatal("zero noise must be disabled")
	}
	if !(Noise{Uniform: 0.2}).Enabled() {
		t.Fatal("uniform noise must be enabled")
	}
	if got := (Noise{Samples: 0}).Trials(); got != 1 {
		t.Fatalf("Trials() = %d, want 1", got)
	}
	if got := (Noise{Samples: 12}).Trials(); got != 12 {
		t.Fatalf("Trials() = %d, want 12", got)
	}
}

func TestDefaultInputsResolve(t *testing.T) {
	p, err := Resolve(DefaultInputs(), RequireDoppler())
	if err != nil {
		t.Fatalf("Resolve(DefaultInputs()): %v", err)
	}
	if p.Temperature != 100 || p.Angle != 90 {
		t.Fatalf("unexpected Doppler inputs %v, %v", p.Temperature, p.Angle)
	}
	if p.Noise.Enabled() {
		t.Fatal("default noise must be disabled")
	}
}

func TestParseNotFinite(t *testing.T) {
	for _, text := range []string{"NaN", "Inf", "-inf", "+Infinity"} {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(map[string]string{FieldDetuning: text})
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
			if !errors.Is(err, ErrNotFinite) {
				t.Fatalf("expected wrapped ErrNotFinite, got %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Field != FieldDetuning || pe.Text != text {
				t.Fatalf("expected *ParseError for %s %q, got %v", FieldDetuning, text, err)
			}
		})
	}
}
