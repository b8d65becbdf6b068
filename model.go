package stancache

// Model is a compiled model artifact as returned by a [Compiler].
//
// All fields are CBOR-codable so a Model persists through the codec
// package unchanged.
type Model struct {
	// ModelName is the name the model was compiled under.
	ModelName string

	// ModelCode is the model source the artifact was compiled from.
	ModelCode string

	// CPPCode is the generated C++ translation unit.
	CPPCode string

	// CXXFlags are the compiler flags used for the build.
	CXXFlags []string

	// IncludePaths are the include directories used for the build.
	IncludePaths []string
}

// Show returns the model specification the artifact was compiled from.
func (m *Model) Show() string {
	return m.ModelCode
}
