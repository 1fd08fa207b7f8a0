package gizmo

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives debug lines. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// debugf prints a "[gizmo]" prefixed line when enabled is true.
func debugf(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[gizmo] "+format+"\n", args...)
}

// DispatchStats counts events seen by a DispatchLayer.
type DispatchStats struct {
	// Dispatched is the number of events delivered to a manipulator.
	Dispatched int
	// Dropped is the number of events discarded because no manipulator
	// was active.
	Dropped int
	// Handled is the number of delivered events the manipulator reported
	// as handled.
	Handled int
}

// describeSnapshot formats the fields of evt that matter in a debug line.
func describeSnapshot(evt InputSnapshot) string {
	return fmt.Sprintf("pressed=%03b transitioned=%03b wheel=%d cursor=(%d,%d) mods=%d",
		evt.Pressed, evt.Transitioned, evt.Wheel, evt.Cursor.X, evt.Cursor.Y, len(evt.Modifiers))
}
