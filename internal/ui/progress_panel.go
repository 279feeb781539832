package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/translateai/translateai-desktop/internal/model"
)

// ProgressPanel shows the simulated translation progress bar and its caption
type ProgressPanel struct {
	widget.BaseWidget

	localization *Localization
	percent      int

	bar   *widget.ProgressBar
	label *widget.Label
}

// NewProgressPanel creates a progress panel at 0%
func NewProgressPanel(localization *Localization) *ProgressPanel {
	p := &ProgressPanel{localization: localization}
	p.ExtendBaseWidget(p)

	p.bar = widget.NewProgressBar()
	p.bar.Min = model.MinProgress
	p.bar.Max = model.MaxProgress
	p.bar.TextFormatter = func() string { return "" }

	p.label = widget.NewLabel("")
	p.label.Alignment = fyne.TextAlignCenter

	p.SetPercent(model.MinProgress)
	return p
}

// SetPercent updates bar and caption, clamping to 0..100
func (p *ProgressPanel) SetPercent(percent int) {
	if percent < model.MinProgress {
		percent = model.MinProgress
	}
	if percent > model.MaxProgress {
		percent = model.MaxProgress
	}
	p.percent = percent
	p.bar.SetValue(float64(percent))
	p.label.SetText(p.Caption())
}

// Percent returns the displayed percentage
func (p *ProgressPanel) Percent() int {
	return p.percent
}

// Caption returns the localized "Translation Progress: N%" text
func (p *ProgressPanel) Caption() string {
	return fmt.Sprintf(p.localization.GetText(KeyProgressFormat), p.percent)
}

// RefreshTexts re-renders the caption after a language change
func (p *ProgressPanel) RefreshTexts() {
	p.label.SetText(p.Caption())
}

// CreateRenderer implements fyne.Widget
func (p *ProgressPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(p.bar, p.label))
}
