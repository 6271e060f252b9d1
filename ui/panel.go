// Package ui holds the ebitenui widgets drawn over a scene.
package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spritelab/common"
	"golang.org/x/image/font/basicfont"
)

const (
	panelWidth  = 300
	panelHeight = 100
)

var (
	panelColor      = color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 220}
	buttonColor     = color.NRGBA{R: 0x33, G: 0x33, B: 0x44, A: 255}
	buttonHover     = color.NRGBA{R: 0x44, G: 0x44, B: 0x66, A: 255}
	buttonPressed   = color.NRGBA{R: 0x22, G: 0x22, B: 0x33, A: 255}
	textColor       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	statusTextColor = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
)

// Action is one button on a panel. Do may be nil.
type Action struct {
	Label string
	Do    func() error
}

// ActionsPanel is a titled column of buttons with a status line.
type ActionsPanel struct {
	UI      *ebitenui.UI
	Visible bool

	actions []Action
	title   *widget.Text
	status  *widget.Text
}

// Face returns the built-in bitmap font used by every panel.
func Face() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func NewActionsPanel(title string, actions []Action) *ActionsPanel {
	face := Face()
	p := &ActionsPanel{Visible: true, actions: actions}

	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Hover:   imageui.NewNineSliceColor(buttonHover),
		Pressed: imageui.NewNineSliceColor(buttonPressed),
	}
	btnText := &widget.ButtonTextColor{Idle: textColor}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, panelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	p.title = widget.NewText(widget.TextOpts.Text(title, face, textColor))
	panel.AddChild(p.title)

	for i := range actions {
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(actions[i].Label, face, btnText),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				p.RunIndex(i)
			}),
		))
	}

	p.status = widget.NewText(widget.TextOpts.Text("", face, statusTextColor))
	panel.AddChild(p.status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 10, Left: 10}),
		)),
	)
	root.AddChild(panel)

	p.UI = &ebitenui.UI{Container: root}
	return p
}

// Run invokes the action with the given label, as a click would.
func (p *ActionsPanel) Run(label string) bool {
	for i := range p.actions {
		if p.actions[i].Label == label {
			p.RunIndex(i)
			return true
		}
	}
	return false
}

func (p *ActionsPanel) RunIndex(i int) {
	if p == nil || i < 0 || i >= len(p.actions) {
		return
	}
	a := p.actions[i]
	if a.Do == nil {
		return
	}
	if err := a.Do(); err != nil {
		common.LogWarn("ui: action failed", "action", a.Label, "err", err)
		p.SetStatus(fmt.Sprintf("%s: %v", a.Label, err))
		return
	}
	p.SetStatus(a.Label)
}

func (p *ActionsPanel) SetTitle(s string) {
	if p == nil || p.title == nil {
		return
	}
	p.title.Label = s
}

func (p *ActionsPanel) Title() string {
	if p == nil || p.title == nil {
		return ""
	}
	return p.title.Label
}

func (p *ActionsPanel) SetStatus(s string) {
	if p == nil || p.status == nil {
		return
	}
	p.status.Label = s
}

func (p *ActionsPanel) Status() string {
	if p == nil || p.status == nil {
		return ""
	}
	return p.status.Label
}

func (p *ActionsPanel) Labels() []string {
	out := make([]string, len(p.actions))
	for i, a := range p.actions {
		out[i] = a.Label
	}
	return out
}

func (p *ActionsPanel) Update() {
	if p == nil || !p.Visible || p.UI == nil {
		return
	}
	p.UI.Update()
}

func (p *ActionsPanel) Draw(screen *ebiten.Image) {
	if p == nil || !p.Visible || p.UI == nil {
		return
	}
	p.UI.Draw(screen)
}
