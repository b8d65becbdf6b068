package stancache

import "context"

// Compiler turns a model specification into a compiled [Model].
//
// Compilers are external collaborators: this package never inspects how
// compilation happens and forwards the [Spec] unchanged. Compilation is
// the dominant cost of a Build call and blocks for its full duration.
type Compiler interface {
	Compile(ctx context.Context, spec Spec) (*Model, error)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(ctx context.Context, spec Spec) (*Model, error)

// Compile implements Compiler.
func (f CompilerFunc) Compile(ctx context.Context, spec Spec) (*Model, error) {
	return f(ctx, spec)
}

// Interface compliance.
var _ Compiler = (CompilerFunc)(nil)
