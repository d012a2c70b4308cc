package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-kickoff/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space starts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionConfirm},
		{"p pauses", runeKey("p"), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{"r restarts", runeKey("r"), core.ActionRestart},
		{"d toggles debug", runeKey("d"), core.ActionDebug},
		{"q quits", runeKey("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help is platform-only", runeKey("?"), core.ActionNone},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.MouseMsg
		dragging bool
		want     core.GesturePhase
		ok       bool
	}{
		{
			name: "left press starts",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want: core.GestureStart, ok: true,
		},
		{
			name: "right press ignored",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		},
		{
			name: "wheel ignored",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		},
		{
			name:     "motion while dragging moves",
			msg:      tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			dragging: true,
			want:     core.GestureMove, ok: true,
		},
		{
			name: "motion without press ignored",
			msg:  tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion},
		},
		{
			name:     "release ends",
			msg:      tea.MouseMsg{X: 9, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			dragging: true,
			want:     core.GestureEnd, ok: true,
		},
		{
			name: "stray release ignored",
			msg:  tea.MouseMsg{X: 9, Y: 4, Action: tea.MouseActionRelease},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := MapMouse(tt.msg, tt.dragging)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if g.Phase != tt.want {
				t.Errorf("Phase = %v, want %v", g.Phase, tt.want)
			}
			if g.X != tt.msg.X || g.Y != tt.msg.Y {
				t.Errorf("gesture at (%d, %d), want (%d, %d)", g.X, g.Y, tt.msg.X, tt.msg.Y)
			}
		})
	}
}
