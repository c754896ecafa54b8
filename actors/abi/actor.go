package abi

// Invokee is the method dispatch interface satisfied by all actor code: a
// table of exported methods, indexed by method number. Index 0 is reserved
// for the bare value send.
type Invokee interface {
	Exports() []interface{}
}
