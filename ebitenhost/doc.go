// Package ebitenhost connects gizmo to [Ebitengine] input.
//
// [Keys] implements gizmo.KeyState with ebiten.IsKeyPressed, and [Source]
// polls the mouse once per frame for a gizmo.Pump:
//
//	layer := gizmo.NewDispatchLayer(ctx, gizmo.LayerConfig{Keys: ebitenhost.NewKeys()})
//	pump := gizmo.NewPump(layer, gizmo.PumpConfig{})
//	src := ebitenhost.NewSource()
//
//	func (g *Game) Update() error {
//		pump.Update(view, src.Frame())
//		return nil
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost
