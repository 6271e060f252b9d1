package common

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		t    float64
		want float64
	}{
		{"start", -1, 0, 0, -1},
		{"end", -1, 0, 1, 0},
		{"midpoint", 2, 4, 0.5, 3},
		{"quarter", 0, 8, 0.25, 2},
		{"extrapolate", 0, 1, 2, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lerp(tc.a, tc.b, tc.t); !Approx(got, tc.want, 1e-9) {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.t, got, tc.want)
			}
		})
	}
}

func TestLerpInteger(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := Lerp[uint8](0, 255, 1); got != 255 {
		t.Fatalf("expected 255, got %d", got)
	}
}

func TestLerpVec3(t *testing.T) {
	a := Vec3{X: 0, Y: -1, Z: 0}
	b := Vec3{X: 0, Y: 0, Z: 0}
	got := LerpVec3(a, b, 0.5)
	if !Approx(got.Y, -0.5, 1e-9) || got.X != 0 || got.Z != 0 {
		t.Fatalf("unexpected midpoint %+v", got)
	}
	if LerpVec3(a, b, 0) != a {
		t.Fatalf("t=0 should return a")
	}
	if LerpVec3(a, b, 1) != b {
		t.Fatalf("t=1 should return b")
	}
}

func TestLerpColor(t *testing.T) {
	cyan := RGBA{R: 0, G: 1, B: 1, A: 1}
	got := LerpColor(White, cyan, 0.5)
	if !Approx(got.R, 0.5, 1e-9) || got.G != 1 || got.B != 1 || got.A != 1 {
		t.Fatalf("unexpected colour %+v", got)
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0.25: 0.25, 3: 1} {
		if got := Clamp01(in); got != want {
			t.Fatalf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
}
