package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritelab/common"
)

const defaultClipFPS = 12.0

// Clip is an inclusive range of spritesheet frames played at FPS.
type Clip struct {
	Name  string
	Begin int
	End   int
	FPS   float64
}

// Len returns the number of frames in the clip.
func (c Clip) Len() int {
	if c.End < c.Begin {
		return 0
	}
	return c.End - c.Begin + 1
}

// Spritesheet slices a grid of equally sized frames. Frames are numbered
// left-to-right, top-to-bottom starting at 0.
type Spritesheet struct {
	Image        *ebiten.Image
	FrameW       int
	FrameH       int
	Columns      int
	DefaultFrame int
	Clips        map[string]Clip
}

// NewSpritesheet creates a sheet for img. Columns are derived from the image
// width when it is known.
func NewSpritesheet(img *ebiten.Image, frameW, frameH int) *Spritesheet {
	s := &Spritesheet{Image: img, FrameW: frameW, FrameH: frameH, Clips: make(map[string]Clip)}
	if img != nil && frameW > 0 {
		s.Columns = img.Bounds().Dx() / frameW
	}
	return s
}

// AddAnimation registers a clip spanning frames begin..end inclusive.
func (s *Spritesheet) AddAnimation(name string, begin, end int, fps float64) {
	if s == nil || name == "" {
		return
	}
	if s.Clips == nil {
		s.Clips = make(map[string]Clip)
	}
	if fps <= 0 {
		fps = defaultClipFPS
	}
	s.Clips[name] = Clip{Name: name, Begin: begin, End: end, FPS: fps}
}

// SetDefaultFrame sets the frame shown while no clip is playing.
func (s *Spritesheet) SetDefaultFrame(frame int) {
	if s == nil || frame < 0 {
		return
	}
	s.DefaultFrame = frame
}

// Clip looks up a clip by name.
func (s *Spritesheet) Clip(name string) (Clip, bool) {
	if s == nil || s.Clips == nil {
		return Clip{}, false
	}
	c, ok := s.Clips[name]
	return c, ok
}

// FrameRect returns the source rectangle of frame i on the sheet image.
func (s *Spritesheet) FrameRect(i int) image.Rectangle {
	if s == nil || s.FrameW <= 0 || s.FrameH <= 0 {
		return image.Rectangle{}
	}
	cols := s.Columns
	if cols <= 0 {
		cols = 1
	}
	if i < 0 {
		i = 0
	}
	x := (i % cols) * s.FrameW
	y := (i / cols) * s.FrameH
	return image.Rect(x, y, x+s.FrameW, y+s.FrameH)
}

// PlayMode describes how the animator advances its clip.
type PlayMode int

const (
	PlayNone PlayMode = iota
	PlayLoop
	PlayOnce
)

func (m PlayMode) String() string {
	switch m {
	case PlayLoop:
		return "loop"
	case PlayOnce:
		return "once"
	default:
		return "none"
	}
}

// Animator plays clips from a Spritesheet. Until a clip is started the
// sheet's default frame is shown.
type Animator struct {
	Sheet *Spritesheet

	clip  Clip
	mode  PlayMode
	index int
	timer float64
	done  bool
}

// NewAnimator creates an animator showing the sheet's default frame.
func NewAnimator(sheet *Spritesheet) *Animator {
	return &Animator{Sheet: sheet}
}

// PlayLoop starts clip name on repeat. Asking for the clip that is already
// looping keeps its current frame.
func (a *Animator) PlayLoop(name string) bool {
	if a == nil {
		return false
	}
	if a.mode == PlayLoop && a.clip.Name == name {
		return true
	}
	return a.start(name, PlayLoop)
}

// PlayOnce starts clip name from its first frame and holds the last frame
// when it ends.
func (a *Animator) PlayOnce(name string) bool {
	if a == nil {
		return false
	}
	return a.start(name, PlayOnce)
}

func (a *Animator) start(name string, mode PlayMode) bool {
	clip, ok := a.Sheet.Clip(name)
	if !ok || clip.Len() == 0 {
		common.LogWarn("animator: unknown clip", "clip", name)
		return false
	}
	a.clip = clip
	a.mode = mode
	a.index = 0
	a.timer = 0
	a.done = false
	return true
}

// Stop returns the animator to the sheet's default frame.
func (a *Animator) Stop() {
	if a == nil {
		return
	}
	a.clip = Clip{}
	a.mode = PlayNone
	a.index = 0
	a.timer = 0
	a.done = false
}

// IsDone reports whether a play-once clip has finished. Looping clips are
// never done; an idle animator has nothing left to play.
func (a *Animator) IsDone() bool {
	if a == nil {
		return true
	}
	switch a.mode {
	case PlayOnce:
		return a.done
	case PlayLoop:
		return false
	default:
		return true
	}
}

// Update advances the clip by dt seconds. It returns true on the update in
// which a play-once clip finishes.
func (a *Animator) Update(dt float64) bool {
	if a == nil || a.mode == PlayNone || a.done || dt <= 0 {
		return false
	}
	frameTime := 1 / a.clip.FPS
	a.timer += dt
	for a.timer >= frameTime {
		a.timer -= frameTime
		if a.index+1 < a.clip.Len() {
			a.index++
			continue
		}
		if a.mode == PlayLoop {
			a.index = 0
			continue
		}
		a.done = true
		a.timer = 0
		return true
	}
	return false
}

// Frame returns the sheet frame currently shown.
func (a *Animator) Frame() int {
	if a == nil {
		return 0
	}
	if a.mode == PlayNone {
		if a.Sheet == nil {
			return 0
		}
		return a.Sheet.DefaultFrame
	}
	return a.clip.Begin + a.index
}

// Current returns the active clip name, or "" when idle.
func (a *Animator) Current() string {
	if a == nil {
		return ""
	}
	return a.clip.Name
}

// Mode returns how the active clip is being played.
func (a *Animator) Mode() PlayMode {
	if a == nil {
		return PlayNone
	}
	return a.mode
}

var AnimatorComponent = NewComponent[Animator]()
var SpritesheetComponent = NewComponent[Spritesheet]()
