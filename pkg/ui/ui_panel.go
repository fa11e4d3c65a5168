package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIWidget is an interface for all UI widgets.
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
}

// SliderWrapper wraps Slider to implement UIWidget.
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // Slider height + label space
}

// CheckboxWrapper wraps Checkbox to implement UIWidget.
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 23 // Label row above the box + small margin below
}

// ButtonWrapper wraps Button to implement UIWidget.
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.H + 12
}

// PanelSection is a header row. A section runs until the next one.
type PanelSection struct {
	Title      string
	StartIndex int // Widget index where this section starts
}

// UIPanel manages a column of widgets in a scrollable panel. The panel
// owns the layout: every frame it assigns each widget its on-screen
// position before updating or drawing it, so hit testing always
// matches what the player sees even mid-scroll.
type UIPanel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Widgets       []UIWidget
	Labels        []string
	ScrollOffset  float64

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA
	TextColor   color.RGBA

	sections []PanelSection
}

// NewUIPanel creates an empty panel at the given screen rectangle.
func NewUIPanel(x, y, width, height float64, title string) *UIPanel {
	return &UIPanel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
		TextColor:   color.RGBA{R: 220, G: 220, B: 220, A: 255},
	}
}

// AddSection adds a header row before the widgets added after it.
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
	})
}

// AddSlider adds a slider widget to the panel and returns it so the
// caller can read the live value.
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	// Leave room on the right for the value readout.
	slider := NewSlider(p.X+10, 0, p.Width-70, label, min, max, value)
	p.Widgets = append(p.Widgets, &SliderWrapper{slider})
	p.Labels = append(p.Labels, label)
	return slider
}

// AddCheckbox adds a checkbox widget to the panel.
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+10, 0, label, value)
	p.Widgets = append(p.Widgets, &CheckboxWrapper{checkbox})
	p.Labels = append(p.Labels, label)
	return checkbox
}

// AddButton adds a button widget to the panel. The button carries its
// own label, so no label row is drawn above it.
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	button := NewButton(p.X+10, 0, p.Width-20, 22, label, onClick)
	p.Widgets = append(p.Widgets, &ButtonWrapper{button})
	p.Labels = append(p.Labels, "")
	return button
}

// walk runs the vertical layout, reporting each section header and
// widget with its Y position for this frame.
func (p *UIPanel) walk(section func(title string, y float64), widget func(w UIWidget, label string, y float64)) {
	y := p.Y + 30 - p.ScrollOffset
	next := 0
	for i, w := range p.Widgets {
		for next < len(p.sections) && p.sections[next].StartIndex == i {
			if section != nil {
				section(p.sections[next].Title, y)
			}
			y += 25
			next++
		}
		widget(w, p.Labels[i], y)
		y += w.GetHeight()
	}
}

// placeWidget moves a widget to its layout position for this frame.
// Sliders and checkboxes sit below their label row, buttons carry
// their own label and only get a small top margin.
func (p *UIPanel) placeWidget(w UIWidget, y float64) {
	switch w := w.(type) {
	case *SliderWrapper:
		w.Y = y + 15
	case *CheckboxWrapper:
		w.Y = y + 15
	case *ButtonWrapper:
		w.Y = y + 4
	}
}

// Update handles scrolling and input for all widgets.
func (p *UIPanel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.ScrollOffset -= dy * 20

		maxScroll := p.contentHeight() - p.Height + 40
		if maxScroll < 0 {
			maxScroll = 0
		}
		if p.ScrollOffset < 0 {
			p.ScrollOffset = 0
		}
		if p.ScrollOffset > maxScroll {
			p.ScrollOffset = maxScroll
		}
	}

	p.walk(nil, func(w UIWidget, label string, y float64) {
		p.placeWidget(w, y)
		w.Update()
	})
}

// Draw renders the panel frame and every visible widget.
func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	p.walk(
		func(title string, y float64) {
			if y < p.Y-25 || y > p.Y+p.Height {
				return
			}
			vector.FillRect(screen,
				float32(p.X+5), float32(y),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, title, int(p.X+10), int(y+5))
		},
		func(w UIWidget, label string, y float64) {
			if y < p.Y-30 || y > p.Y+p.Height {
				return
			}
			if label != "" {
				ebitenutil.DebugPrintAt(screen, label, int(p.X+10), int(y))
			}
			p.placeWidget(w, y)
			w.Draw(screen)
		},
	)
}

// contentHeight is the full laid-out height, used to clamp scrolling.
func (p *UIPanel) contentHeight() float64 {
	height := 30.0 // Title space
	height += float64(len(p.sections)) * 25
	for _, w := range p.Widgets {
		height += w.GetHeight()
	}
	return height
}
