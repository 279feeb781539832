package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSet_ComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	set := NewSet(&buf, "info")

	set.Component("translate").Info("file uploaded")

	if !strings.Contains(buf.String(), Prefix+"/translate") {
		t.Errorf("Expected component prefix in output, got %q", buf.String())
	}
}

func TestSet_SetLevelReachesComponents(t *testing.T) {
	var buf bytes.Buffer
	set := NewSet(&buf, "info")
	translate := set.Component("translate")
	account := set.Component("account")

	translate.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("Expected debug filtered at info level, got %q", buf.String())
	}

	set.SetLevel("debug")
	translate.Debug("translate tick")
	account.Debug("account toggle")
	set.Root().Debug("root record")

	out := buf.String()
	for _, want := range []string{"translate tick", "account toggle", "root record"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q after switching to debug, got %q", want, out)
		}
	}

	buf.Reset()
	set.SetLevel("error")
	account.Warn("filtered")
	if buf.Len() != 0 {
		t.Errorf("Expected warn filtered at error level, got %q", buf.String())
	}
}

func TestDiscardSet(t *testing.T) {
	set := DiscardSet()
	set.Component("account").Error("dropped")
	set.SetLevel("debug")
}
