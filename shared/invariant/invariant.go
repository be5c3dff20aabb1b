// Package invariant reports broken simulation invariants. Builds tagged
// zsdebug panic so the defect surfaces at its source; release builds log
// the violation and let the caller clamp and carry on.
package invariant

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

var violations atomic.Int64

// Check returns ok. When ok is false the violation is counted and then
// either panics (zsdebug) or is logged at error level.
func Check(ok bool, msg string, args ...any) bool {
	if ok {
		return true
	}
	violations.Add(1)
	if strict {
		panic(fmt.Sprintf("invariant violated: %s %v", msg, args))
	}
	slog.Error("invariant violated: "+msg, args...)
	return false
}

// Violations is the number of failed checks since process start.
func Violations() int64 {
	return violations.Load()
}
