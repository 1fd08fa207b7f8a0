// Package gizmo routes pointer input from an interactive 3D view to the one
// manipulator tool that is currently active.
//
// A manipulator is a tool such as move, rotate or scale. Tools are kept in a
// [ManipulatorSet] (usually a [Registry]) and selected by name through an
// [ActiveManipulatorContext]. A [DispatchLayer] sits between the host UI and
// the context: the host reports gestures, and the layer turns each one into
// an [InputSnapshot] delivered to the active tool together with a fresh
// [HitTestContext] and intersection scene.
//
// # Quick start
//
//	ctx := gizmo.NewActiveManipulatorContext()
//	ctx.SetManipulatorSet(gizmo.NewRegistry().
//		Register("move", moveTool).
//		Register("rotate", rotateTool))
//	ctx.SetActiveManipulatorName("move")
//
//	layer := gizmo.NewDispatchLayer(ctx, gizmo.LayerConfig{})
//	if !layer.MouseMove(view, gizmo.Point{X: 120, Y: 80}) {
//		// nothing active; the host handles the hover itself
//	}
//
// Hosts that only have raw pointer samples can feed a [Pump], which derives
// hover, drag and wheel gestures and calls the layer. The ebitenhost package
// provides an Ebitengine input source.
//
// # Activation
//
// The manipulator that the current name resolves to in the current set is
// the only one in the active state. Whenever a call to
// [ActiveManipulatorContext.SetActiveManipulatorName] or
// [ActiveManipulatorContext.SetManipulatorSet] changes what resolves, the
// previous tool is deactivated before the next is activated. Change
// callbacks registered with OnActiveManipulatorChange and
// OnManipulatorSetChange run after the transition.
//
// # Hit testing
//
// A [HitTestContext] unprojects view pixels into world rays with the view's
// [Camera] (matrices from [mathgl]). It is released when the manipulator
// returns; keeping it past that point yields a context whose queries all
// fail. [PickScene] is a simple [IntersectionScene] of boxes and spheres.
//
// # Automation
//
// [Injector] queues synthetic pointer samples and [LoadScript] runs JSON
// input scripts against a context, for tests and demos.
//
// [mathgl]: https://github.com/go-gl/mathgl
package gizmo
