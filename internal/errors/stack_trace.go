package errors

import (
	"strings"

	"github.com/elaraai/east-sub001/internal/source"
)

// Frame is one entry of the analyzer's internal diagnostic trail: the kind
// of IR node it was descending into and where. This is unrelated to
// East's own TryCatch stack variable (ir.StackType) — that one is a value
// in the language being analyzed; this one only ever shows up attached to
// a Diagnostic raised by this compiler.
type Frame struct {
	NodeKind string
	Loc      source.Location
}

func (f Frame) String() string {
	return f.NodeKind + " at " + f.Loc.String()
}

// Trail is a call stack of Frames, oldest first.
type Trail []Frame

// Push returns a new Trail with f appended; Trail is treated as immutable
// so that sibling branches of a recursive descent never see each other's
// pushes.
func (t Trail) Push(f Frame) Trail {
	out := make(Trail, len(t), len(t)+1)
	copy(out, t)
	return append(out, f)
}

func (t Trail) String() string {
	if len(t) == 0 {
		return ""
	}
	lines := make([]string, len(t))
	for i := len(t) - 1; i >= 0; i-- {
		lines[len(t)-1-i] = t[i].String()
	}
	return strings.Join(lines, "\n")
}

// Top returns the innermost frame, or the zero Frame if the trail is empty.
func (t Trail) Top() Frame {
	if len(t) == 0 {
		return Frame{}
	}
	return t[len(t)-1]
}

// Depth returns the number of frames in the trail.
func (t Trail) Depth() int { return len(t) }
