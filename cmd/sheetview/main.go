package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spritelab/assets"
	"github.com/milk9111/spritelab/common"
	"github.com/milk9111/spritelab/ecs/component"
)

const (
	viewSize = 512
	clipName = "preview"
)

type options struct {
	sheet  string
	frameW int
	frameH int
	begin  int
	end    int
	fps    float64
	once   bool
	scale  float64
}

type viewer struct {
	opts  options
	sheet *component.Spritesheet
	anim  *component.Animator
}

func newViewer(img *ebiten.Image, opts options) (*viewer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	sheet := component.NewSpritesheet(img, opts.frameW, opts.frameH)
	sheet.AddAnimation(clipName, opts.begin, opts.end, opts.fps)
	sheet.SetDefaultFrame(opts.begin)

	v := &viewer{opts: opts, sheet: sheet, anim: component.NewAnimator(sheet)}
	v.restart()
	return v, nil
}

func (o options) validate() error {
	if o.frameW <= 0 || o.frameH <= 0 {
		return fmt.Errorf("frame size must be positive, got %dx%d", o.frameW, o.frameH)
	}
	if o.begin < 0 || o.end < o.begin {
		return fmt.Errorf("invalid frame range %d..%d", o.begin, o.end)
	}
	if o.scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", o.scale)
	}
	return nil
}

func (v *viewer) restart() {
	v.anim.Stop()
	if v.opts.once {
		v.anim.PlayOnce(clipName)
		return
	}
	v.anim.PlayLoop(clipName)
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.restart()
	}
	v.anim.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})
	if v.sheet.Image == nil {
		return
	}

	frame := v.anim.Frame()
	sub, ok := v.sheet.Image.SubImage(v.sheet.FrameRect(frame)).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(-float64(v.opts.frameW)/2, -float64(v.opts.frameH)/2)
	op.GeoM.Scale(v.opts.scale, v.opts.scale)
	op.GeoM.Translate(viewSize/2, viewSize/2)
	screen.DrawImage(sub, op)

	ebitenutil.DebugPrint(screen, v.status())
}

func (v *viewer) status() string {
	return fmt.Sprintf("%s frame %d (%d..%d) %s done=%v\nspace: restart  esc: quit",
		v.opts.sheet, v.anim.Frame(), v.opts.begin, v.opts.end, v.anim.Mode(), v.anim.IsDone())
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// loadSheet prefers a file on disk and falls back to the embedded assets.
func loadSheet(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return assets.LoadImage(path)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func main() {
	var opts options
	flag.StringVar(&opts.sheet, "sheet", "knight.png", "spritesheet file or embedded asset name")
	flag.IntVar(&opts.frameW, "fw", 64, "frame width in pixels")
	flag.IntVar(&opts.frameH, "fh", 64, "frame height in pixels")
	flag.IntVar(&opts.begin, "begin", 0, "first frame of the clip")
	flag.IntVar(&opts.end, "end", 4, "last frame of the clip (inclusive)")
	flag.Float64Var(&opts.fps, "fps", 12, "clip frames per second")
	flag.BoolVar(&opts.once, "once", false, "play the clip once and hold the last frame")
	flag.Float64Var(&opts.scale, "scale", 2, "draw scale")
	flag.Parse()

	img, err := loadSheet(opts.sheet)
	if err != nil {
		common.LogFatal("load sheet", "sheet", opts.sheet, "err", err)
	}
	v, err := newViewer(img, opts)
	if err != nil {
		common.LogFatal("viewer", "err", err)
	}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("sheetview: " + opts.sheet)
	if err := ebiten.RunGame(v); err != nil {
		common.LogFatal("run", "err", err)
	}
}
