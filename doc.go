// Package stancache caches compiled Stan models on disk so that ephemeral,
// disk-persistent sessions reuse a compiled artifact instead of rebuilding
// it every time.
//
// Compilation itself is delegated to an external [Compiler] collaborator;
// this package only decides whether to call it. A cache file is keyed by an
// explicit path, never by the build parameters: once an artifact exists at
// the path it is trusted forever, even if the model code that produced it
// has changed.
//
// # Quick Start
//
// Build a model, caching the compiled artifact:
//
//	c, err := stancache.New(compiler)
//	if err != nil {
//	    return err
//	}
//	m, err := c.Build(ctx, stancache.Spec{
//	    Code: "parameters {real y;} model {y ~ normal(0,1);}",
//	}, stancache.BuildWithCachePath("model.pkl.gz"))
//
// The cache path's extension selects the storage codec; see the [codec]
// subpackage for the extension table and for standalone compressed object
// persistence.
//
// # Concurrency
//
// Concurrent Build calls for the same cache path within one process share a
// single compilation. Across processes there is no locking: writers race by
// atomic rename and the last one wins.
package stancache
