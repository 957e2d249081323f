package conventions

import (
	"go.uber.org/atomic"
)

// current holds the process-wide conventions snapshot.
var current atomic.Value

func init() {
	current.Store(Default())
}

// Current returns the process-wide conventions snapshot. The returned value
// must not be mutated; SetCurrent installs a replacement.
func Current() *Conventions {
	return current.Load().(*Conventions)
}

// SetCurrent installs the given profile as the process-wide snapshot. The
// profile is copied, so later mutation of the argument does not leak into
// readers of Current.
func SetCurrent(conv *Conventions) error {
	if err := conv.Validate(); err != nil {
		return err
	}

	snapshot := *conv
	current.Store(&snapshot)

	return nil
}
