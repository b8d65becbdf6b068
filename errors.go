package stancache

import "errors"

// ErrNoCompiler is returned by New when no compiler collaborator is
// provided. Provisioning the compiler is a deployment concern; the cache
// never attempts to install one at runtime.
var ErrNoCompiler = errors.New("stancache: no compiler")
