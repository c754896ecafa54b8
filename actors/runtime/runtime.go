package runtime

import (
	"context"
	"io"

	addr "github.com/filecoin-project/go-address"
	cid "github.com/ipfs/go-cid"

	abi "github.com/custodia-network/vesting-actors/actors/abi"
	exitcode "github.com/custodia-network/vesting-actors/actors/runtime/exitcode"
)

// Runtime is the host ledger's interface as visible to actor code: everything
// an actor may observe or effect beyond its own parameters.
//
// Concurrency: the host guarantees mutual exclusion on writes to a single
// actor's state, so one operation runs to completion (or aborts) before the
// next begins. Actor code performs no internal locking and relies on this
// guarantee. Operations against distinct actors may execute with unbounded
// parallelism.
type Runtime interface {
	// Information about the message being executed.
	Message() Message

	// The current wall-clock time according to the ledger's time oracle,
	// monotonic non-decreasing across calls within a consensus view.
	CurrTime() abi.UnixTime

	// Validates the caller against some predicate.
	// Exported actor methods must invoke exactly one caller validation
	// before touching state.
	ValidateImmediateCallerAcceptAny()
	ValidateImmediateCallerIs(addrs ...addr.Address)
	ValidateImmediateCallerType(types ...cid.Cid)

	// Deterministic addressing: the stable address derived from a seed. The
	// authority bound to that address is usable only through TransferAsSelf,
	// by code that also holds the seed.
	DeriveAddress(seed abi.Seed) addr.Address

	// A read-only view of the token holding at the given address, reporting
	// whether one exists there.
	TokenHolding(at addr.Address) (TokenHolding, bool)

	// Moves amount units from one holding to another, authorized by the
	// immediate caller's signature. The move is atomic: it completes in full
	// or fails with a non-ok exit code and no effect.
	Transfer(from, to addr.Address, amount abi.TokenAmount) exitcode.ExitCode

	// Moves amount units from one holding to another, authorized by the
	// receiving actor's own seed-derived authority rather than an external
	// signer. The seed must derive the receiver's address.
	TransferAsSelf(seed abi.Seed, from, to addr.Address, amount abi.TokenAmount) exitcode.ExitCode

	// Provides a handle for the actor's state object.
	State() StateHandle

	Store() Store

	// Halts execution upon an error from which the actor cannot recover. The
	// caller receives the exit code; state changes made within this call are
	// rolled back. This method does not return.
	// The message and args are for diagnostics and should be suitable for
	// passing to fmt.Errorf(msg, args...).
	Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{})

	// Provides a Go context for use by storage et al. The host presents an
	// idealised machine abstraction; actor code should not use this context
	// directly.
	Context() context.Context

	// Starts a new tracing span. The span must be End()ed explicitly,
	// typically with a deferred invocation.
	StartSpan(name string) TraceSpan
}

// Message contains information available to the actor about the executing
// message.
type Message interface {
	// The address of the immediate calling actor. Always an ID-address.
	Caller() addr.Address

	// The address of the actor receiving the message. Always an ID-address.
	Receiver() addr.Address
}

// Store defines the storage module exposed to actors.
type Store interface {
	// Retrieves and deserializes an object from the store into `o`. Returns whether successful.
	Get(c cid.Cid, o CBORUnmarshaler) bool
	// Serializes and stores an object, returning its CID.
	Put(x CBORMarshaler) cid.Cid
}

// StateHandle provides mutable, exclusive access to actor state.
type StateHandle interface {
	// Create initializes the state object at the receiver's address.
	// This is only valid in a constructor function and fails when storage at
	// the address is already occupied.
	Create(obj CBORMarshaler)

	// Readonly loads a readonly copy of the state into the argument.
	//
	// Any modification to the state is illegal and will result in an abort.
	Readonly(obj CBORUnmarshaler)

	// Transaction loads a mutable version of the state into the `obj`
	// argument and protects the execution from side effects (including
	// transfers). The second argument is a function which mutates the state;
	// its return value is returned from the call to Transaction.
	//
	// If the state is modified after this function returns, execution aborts.
	Transaction(obj CBORer, f func() interface{}) interface{}
}

// Provides (minimal) tracing facilities to actor code.
type TraceSpan interface {
	// Ends the span.
	End()
}

// These interfaces are intended to match those from whyrusleeping/cbor-gen,
// such that code generated by that system is automatically usable here.
type CBORMarshaler interface {
	MarshalCBOR(w io.Writer) error
}

type CBORUnmarshaler interface {
	UnmarshalCBOR(r io.Reader) error
}

type CBORer interface {
	CBORMarshaler
	CBORUnmarshaler
}
