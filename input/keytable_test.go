package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/entanglelab/qorbit/event"
)

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLookupBindings(t *testing.T) {
	cases := []struct {
		r    rune
		want Action
	}{
		{'e', ActionResetExpansion},
		{'E', ActionResetExpansion},
		{'r', ActionRelease},
		{'R', ActionRelease},
		{'f', ActionEavesdrop},
		{'F', ActionEavesdrop},
		{' ', ActionToggleAnimation},
		{'c', ActionToggleConnections},
		{'g', ActionSwitchView},
		{'q', ActionQuit},
		{'z', ActionNone},
	}
	for _, tc := range cases {
		if got := Lookup(keyEvent(tc.r)); got != tc.want {
			t.Errorf("Lookup(%q) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestLookupSpecialKeys(t *testing.T) {
	esc := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	if got := Lookup(esc); got != ActionQuit {
		t.Errorf("Escape = %v, want quit", got)
	}
	ctrlR := tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl)
	if got := Lookup(ctrlR); got != ActionForceResize {
		t.Errorf("Ctrl+R = %v, want force-resize", got)
	}
}

func TestHandlerPushesControlEvents(t *testing.T) {
	q := event.NewQueue()
	h := NewHandler(q)

	if !h.HandleEvent(keyEvent('f')) {
		t.Fatal("non-quit key terminated handler")
	}
	got := q.Consume()
	if len(got) != 1 || got[0].Type != event.TypeEavesdropTrigger {
		t.Fatalf("events = %+v, want one eavesdrop trigger", got)
	}
}

func TestHandlerQuit(t *testing.T) {
	q := event.NewQueue()
	h := NewHandler(q)
	if h.HandleEvent(keyEvent('q')) {
		t.Error("quit key did not terminate")
	}
	if q.Len() != 0 {
		t.Error("quit leaked an event onto the queue")
	}
}

func TestHandlerMouseAndResize(t *testing.T) {
	q := event.NewQueue()
	h := NewHandler(q)

	h.HandleEvent(tcell.NewEventMouse(15, 7, tcell.ButtonNone, tcell.ModNone))
	h.HandleEvent(tcell.NewEventResize(132, 43))

	got := q.Consume()
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Type != event.TypeHover || got[0].X != 15 || got[0].Y != 7 {
		t.Errorf("hover event = %+v", got[0])
	}
	if got[1].Type != event.TypeResize || got[1].X != 132 || got[1].Y != 43 {
		t.Errorf("resize event = %+v", got[1])
	}
}

func TestHandlerForceResizeCallback(t *testing.T) {
	q := event.NewQueue()
	h := NewHandler(q)

	called := false
	h.OnForceResize = func() { called = true }
	h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl))

	if !called {
		t.Error("force-resize callback not invoked")
	}
	if q.Len() != 0 {
		t.Error("force-resize leaked an event")
	}
}
