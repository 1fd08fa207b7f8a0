package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gizmo"
)

// keyGroups lists the ebiten keys that count as each modifier.
var keyGroups = map[gizmo.Key][]ebiten.Key{
	gizmo.KeyShift:   {ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	gizmo.KeyControl: {ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight},
	gizmo.KeyAlt:     {ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight},
}

// Keys is a gizmo.KeyState backed by ebiten's keyboard state.
type Keys struct {
	pressed func(ebiten.Key) bool
}

// NewKeys creates a KeyState reading ebiten.IsKeyPressed.
func NewKeys() *Keys {
	return &Keys{pressed: ebiten.IsKeyPressed}
}

// IsKeyDown reports whether either variant of k is held.
func (k *Keys) IsKeyDown(key gizmo.Key) bool {
	for _, ek := range keyGroups[key] {
		if k.pressed(ek) {
			return true
		}
	}
	return false
}
