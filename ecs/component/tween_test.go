package component

import (
	"testing"

	"github.com/milk9111/spritelab/common"
)

func TestTweenPingPong(t *testing.T) {
	tw := &Tween{
		Property: TweenPosition,
		From:     common.Vec3{Y: -1},
		To:       common.Vec3{},
		Duration: 2,
		Forward:  true,
		PingPong: true,
	}

	if got := tw.Value(); got.Y != -1 {
		t.Fatalf("expected start value -1, got %v", got.Y)
	}

	tw.Advance(1)
	if got := tw.Value(); !common.Approx(got.Y, -0.5, 1e-9) {
		t.Fatalf("expected midpoint -0.5, got %v", got.Y)
	}

	tw.Advance(1)
	if tw.Forward || tw.Timer != 0 {
		t.Fatalf("reaching the duration should reset and reverse, got forward=%v timer=%v", tw.Forward, tw.Timer)
	}
	if got := tw.Value(); got.Y != 0 {
		t.Fatalf("reversed tween should start at To, got %v", got.Y)
	}

	tw.Advance(0.5)
	if got := tw.Value(); !common.Approx(got.Y, -0.25, 1e-9) {
		t.Fatalf("expected -0.25 on the way back, got %v", got.Y)
	}
}

func TestTweenLoopWithoutPingPong(t *testing.T) {
	tw := &Tween{From: common.Vec3{X: 0}, To: common.Vec3{X: 10}, Duration: 1, Forward: true}
	tw.Advance(1)
	if !tw.Forward {
		t.Fatalf("non ping-pong tween should keep its direction")
	}
	if got := tw.Value(); got.X != 0 {
		t.Fatalf("expected restart at From, got %v", got.X)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	tw := &Tween{From: common.Vec3{X: 1}, To: common.Vec3{X: 2}, Forward: true}
	tw.Advance(5)
	if tw.T() != 0 || tw.Value().X != 1 {
		t.Fatalf("zero duration tween should stay at From")
	}
}

func TestTweenColor(t *testing.T) {
	tw := &Tween{
		Property: TweenColor,
		From:     common.Vec3{X: 1, Y: 1, Z: 1},
		To:       common.Vec3{X: 0, Y: 1, Z: 1},
		Duration: 4,
		Forward:  true,
		PingPong: true,
	}

	tests := []struct {
		name    string
		advance float64
		alpha   float64
		wantR   float64
	}{
		{name: "start", advance: 0, alpha: 1, wantR: 1},
		{name: "quarter", advance: 1, alpha: 1, wantR: 0.75},
		{name: "keeps alpha", advance: 1, alpha: 0.5, wantR: 0.5},
		{name: "cyan", advance: 2, alpha: 1, wantR: 0},
		{name: "back from cyan", advance: 1, alpha: 1, wantR: 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw.Advance(tc.advance)
			got := tw.Color(tc.alpha)
			if !common.Approx(got.R, tc.wantR, 1e-9) || got.G != 1 || got.B != 1 || got.A != tc.alpha {
				t.Fatalf("expected r %v alpha %v, got %+v", tc.wantR, tc.alpha, got)
			}
		})
	}
}
