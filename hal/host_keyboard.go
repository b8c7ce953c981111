//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
}

// pollKeys queues this frame's typed runes and edge-triggered special keys.
func pollKeys(q *keyQueue) {
	for _, r := range ebiten.AppendInputChars(nil) {
		q.push(KeyEvent{Press: true, Rune: r})
	}
	for _, hk := range hostKeys {
		switch {
		case inpututil.IsKeyJustPressed(hk.key):
			q.push(KeyEvent{Code: hk.code, Press: true})
		case inpututil.IsKeyJustReleased(hk.key):
			q.push(KeyEvent{Code: hk.code})
		}
	}
}
