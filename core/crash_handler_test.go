package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var out bytes.Buffer
	codes := make(chan int, 1)
	prevOut, prevExit := crashOut, exitFunc
	crashOut = &out
	exitFunc = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut = prevOut
		exitFunc = prevExit
		RegisterScreen(nil)
	})
	return &out, codes
}

func TestHandleCrash_Nil(t *testing.T) {
	_, codes := captureCrash(t)
	HandleCrash(nil)
	select {
	case <-codes:
		t.Error("Expected no exit for nil recovery value")
	default:
	}
}

func TestGo_RecoversAndRestoresScreen(t *testing.T) {
	out, codes := captureCrash(t)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	RegisterScreen(screen)

	Go(func() { panic("boom") })

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Stack Trace") {
		t.Error("Expected stack trace")
	}

	crashMu.Lock()
	defer crashMu.Unlock()
	if crashScreen != nil {
		t.Error("Expected screen unregistered after crash")
	}
}
