package match

import (
	"diffpair/internal/source"
	"diffpair/internal/window"
)

// Request carries everything a caller has at hand; Auto picks the policy.
type Request struct {
	// Files is a single unlabeled pool.
	Files []source.File
	// Sources and Targets are the two labeled pools.
	Sources []source.File
	Targets []source.File
	// Window is nil when the user gave none.
	Window *window.Window
}

// Auto chooses a policy the way the interactive tool does:
//   - labeled pools use SourceTarget
//   - a pool of exactly two files is paired directly, window or not
//   - larger pools use Pool and need a window
func Auto(req Request) (Result, error) {
	if len(req.Sources) > 0 || len(req.Targets) > 0 {
		if req.Window == nil {
			return Result{Policy: PolicySourceTarget}, ErrWindowRequired
		}

		return SourceTarget(req.Sources, req.Targets, *req.Window)
	}

	if len(req.Files) <= 2 {
		return Pair(req.Files)
	}

	if req.Window == nil {
		return Result{Policy: PolicyPool}, ErrWindowRequired
	}

	return Pool(req.Files, *req.Window)
}
