package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestProgressPanel_SetPercent(t *testing.T) {
	test.NewApp()
	p := NewProgressPanel(NewLocalization())

	if p.Percent() != 0 {
		t.Errorf("Expected 0%%, got %d", p.Percent())
	}

	p.SetPercent(40)
	if p.bar.Value != 40 {
		t.Errorf("Expected bar value 40, got %v", p.bar.Value)
	}
	if p.label.Text != "Translation Progress: 40%" {
		t.Errorf("Unexpected caption %q", p.label.Text)
	}

	p.SetPercent(150)
	if p.Percent() != 100 {
		t.Errorf("Expected clamp to 100, got %d", p.Percent())
	}

	p.SetPercent(-5)
	if p.Percent() != 0 {
		t.Errorf("Expected clamp to 0, got %d", p.Percent())
	}
}

func TestProgressPanel_RefreshTexts(t *testing.T) {
	test.NewApp()
	l := NewLocalization()
	p := NewProgressPanel(l)
	p.SetPercent(70)

	l.SetLanguage("pt")
	p.RefreshTexts()

	if p.label.Text != "Progresso da Tradução: 70%" {
		t.Errorf("Unexpected caption after language change %q", p.label.Text)
	}
}
