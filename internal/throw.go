package internal

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// The error kinds a mesh can report. They are always wrapped with some
// context, so match them with errors.Is.
var (
	// A face was given fewer than three points.
	ErrInvalidFace = errors.New("invalid face")
	// A buffer could not grow. The mesh is left as it was before the call.
	ErrOutOfMemory = errors.New("out of memory")
	// A vector with no length was normalized. Never fatal to mesh construction.
	ErrDegenerateVector = errors.New("degenerate vector")
	// An inspector query went past the end of the mesh.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Broken invariants deep inside the mesh (an index that points past the vertex
// buffer, say) mean the mesh is corrupt, and there is no sensible way to keep
// going. Rather than threading those errors through every accessor, we panic
// with a MeshError, and the public API recovers to convert to an error.

type MeshError struct {
	err error
}

func (e MeshError) Error() string { return e.err.Error() }
func (e MeshError) Unwrap() error { return e.err }

// Panic with a MeshError.
func fatalf(format string, args ...interface{}) {
	panic(MeshError{errors.Errorf(format, args...)})
}

// Convert a recovered value into an error. MeshErrors come back as is. A
// makeslice failure while growing a buffer is reported as ErrOutOfMemory.
// Anything else is a real bug, and keeps panicking.
func HandleMeshPanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if meshError, ok := r.(MeshError); ok {
		return meshError
	}
	if runtimeError, ok := r.(runtime.Error); ok && isAllocationFailure(runtimeError) {
		return errors.Wrap(ErrOutOfMemory, runtimeError.Error())
	}
	panic(r)
}

// Best effort: the runtime only says what went wrong in the message. Buffer
// limits are checked before allocating, so this is a fallback for lengths the
// runtime refuses on its own.
func isAllocationFailure(err runtime.Error) bool {
	return strings.Contains(err.Error(), "makeslice")
}
