package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/fractal"
)

// ActionType identifies a user intent produced by keyboard, wheel or an
// injected script step.
type ActionType uint8

const (
	ActionText       ActionType = iota // append Text to the depth input
	ActionBackspace                    // delete the last depth character
	ActionSubmit                       // draw with the current form
	ActionNextKind                     // cycle the kind selector
	ActionSelectKind                   // select Kind
	ActionZoomIn                       // View.ZoomIn
	ActionZoomOut                      // View.ZoomOut
	ActionResetZoom                    // View.Reset
	ActionScreenshot                   // queue a screenshot labeled Text
	ActionDismiss                      // close the notification
	ActionQuit                         // end the game loop
)

// Action is a single user intent.
type Action struct {
	Type ActionType
	Text string
	Kind fractal.Kind
}

// keyBindings maps just-pressed keys to actions. Digits arrive as text input.
var keyBindings = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyEnter, Action{Type: ActionSubmit}},
	{ebiten.KeyNumpadEnter, Action{Type: ActionSubmit}},
	{ebiten.KeyBackspace, Action{Type: ActionBackspace}},
	{ebiten.KeyTab, Action{Type: ActionNextKind}},
	{ebiten.KeyS, Action{Type: ActionSelectKind, Kind: fractal.KindSierpinski}},
	{ebiten.KeyM, Action{Type: ActionSelectKind, Kind: fractal.KindMenger}},
	{ebiten.KeyEqual, Action{Type: ActionZoomIn}},
	{ebiten.KeyNumpadAdd, Action{Type: ActionZoomIn}},
	{ebiten.KeyMinus, Action{Type: ActionZoomOut}},
	{ebiten.KeyNumpadSubtract, Action{Type: ActionZoomOut}},
	{ebiten.KeyR, Action{Type: ActionResetZoom}},
	{ebiten.KeyF12, Action{Type: ActionScreenshot, Text: "manual"}},
	{ebiten.KeyEscape, Action{Type: ActionDismiss}},
	{ebiten.KeyQ, Action{Type: ActionQuit}},
}

// pollInput reads this frame's keyboard and wheel state and appends the
// resulting actions to buf.
func pollInput(buf []Action, chars []rune) ([]Action, []rune) {
	chars = ebiten.AppendInputChars(chars[:0])
	for _, r := range chars {
		if r >= '0' && r <= '9' {
			buf = append(buf, Action{Type: ActionText, Text: string(r)})
		}
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			buf = append(buf, b.action)
		}
	}
	_, wy := ebiten.Wheel()
	switch {
	case wy > 0:
		buf = append(buf, Action{Type: ActionZoomIn})
	case wy < 0:
		buf = append(buf, Action{Type: ActionZoomOut})
	}
	return buf, chars
}
