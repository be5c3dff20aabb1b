//go:build !zsdebug

package invariant

const strict = false
