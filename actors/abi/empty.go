package abi

import (
	"io"
)

// EmptyValue is the out-of-band CBOR encoding of no value: it writes and
// reads nothing at all (not even CBOR null).
type EmptyValue struct{}

// Empty is a sigil value for the empty parameter/return list.
var Empty *EmptyValue = &EmptyValue{}

func (v *EmptyValue) MarshalCBOR(_ io.Writer) error {
	// An empty value has no constituting bytes.
	return nil
}

func (v *EmptyValue) UnmarshalCBOR(_ io.Reader) error {
	return nil
}
