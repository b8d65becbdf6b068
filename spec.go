package stancache

// Spec describes a model to compile, plus the compile options forwarded
// verbatim to the [Compiler]. Empty fields mean the collaborator's own
// defaults; this package never fills them in.
//
// A model is specified one of three ways: Code with inline source text,
// File naming a file that holds the source, or StancResult reusing a
// pre-parsed specification from an earlier translation run.
type Spec struct {
	// File is a path to a file containing the model specification.
	File string

	// Code is the model specification as inline source text.
	Code string

	// StancResult is a pre-parsed specification handle. When set it takes
	// the place of File and Code.
	StancResult *StancResult

	// Charset decodes File contents. Collaborators default to "utf-8".
	Charset string

	// ModelName names the model. Collaborators default to "anon_model",
	// or to the file name when File is set.
	ModelName string

	// IncludePaths lists directories searched for #include directives in
	// the model source.
	IncludePaths []string

	// BoostLib and EigenLib override the C++ library versions bundled
	// with the collaborator.
	BoostLib string
	EigenLib string

	// Verbose pipes intermediate compiler output to the console.
	Verbose bool

	// ObfuscateModelName appends a random suffix to the generated C++
	// symbol names.
	ObfuscateModelName bool

	// ExtraCompileArgs are additional flags passed to the C++ compiler.
	ExtraCompileArgs []string

	// Options carries open-ended collaborator-specific settings.
	Options map[string]any
}

// StancResult is a pre-parsed model specification produced by a prior
// translation step.
type StancResult struct {
	Status       int
	ModelName    string
	ModelCode    string
	CPPCode      string
	IncludePaths []string
}
