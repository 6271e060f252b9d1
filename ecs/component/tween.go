package component

import "github.com/milk9111/spritelab/common"

// TweenProperty names the value a Tween drives.
type TweenProperty string

const (
	TweenPosition TweenProperty = "position"
	TweenScale    TweenProperty = "scale"
	TweenColor    TweenProperty = "color"
)

// Tween interpolates between From and To over Duration seconds. When the
// timer reaches Duration it restarts, and with PingPong the direction flips
// so the value travels back.
type Tween struct {
	Property TweenProperty
	From     common.Vec3
	To       common.Vec3
	Duration float64
	Timer    float64
	Forward  bool
	PingPong bool
}

// Advance moves the timer forward by dt seconds.
func (t *Tween) Advance(dt float64) {
	if t == nil || t.Duration <= 0 {
		return
	}
	t.Timer += dt
	if t.Timer >= t.Duration {
		t.Timer = 0
		if t.PingPong {
			t.Forward = !t.Forward
		}
	}
}

// T returns the normalised time in [0, 1).
func (t *Tween) T() float64 {
	if t == nil || t.Duration <= 0 {
		return 0
	}
	return common.Clamp01(t.Timer / t.Duration)
}

// Value returns the interpolated value for the current timer.
func (t *Tween) Value() common.Vec3 {
	if t == nil {
		return common.Vec3{}
	}
	if t.Forward {
		return common.LerpVec3(t.From, t.To, t.T())
	}
	return common.LerpVec3(t.To, t.From, t.T())
}

// Color returns the interpolated colour for the current timer, reading the
// endpoints as RGB and holding alpha at a.
func (t *Tween) Color(a float64) common.RGBA {
	if t == nil {
		return common.RGBA{A: a}
	}
	from := common.RGBA{R: t.From.X, G: t.From.Y, B: t.From.Z, A: a}
	to := common.RGBA{R: t.To.X, G: t.To.Y, B: t.To.Z, A: a}
	if !t.Forward {
		from, to = to, from
	}
	return common.LerpColor(from, to, t.T())
}

// Tweens holds every tween driving one entity.
type Tweens struct {
	Items []Tween
}

var TweensComponent = NewComponent[Tweens]()
