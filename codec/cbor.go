package codec

import "github.com/fxamacker/cbor/v2"

// Deterministic encoding so identical objects produce identical files.
var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}
