package mock

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"runtime/debug"
	"testing"

	addr "github.com/filecoin-project/go-address"
	cid "github.com/ipfs/go-cid"
	blake2b "github.com/minio/blake2b-simd"
	mh "github.com/multiformats/go-multihash"

	abi "github.com/custodia-network/vesting-actors/actors/abi"
	runtime "github.com/custodia-network/vesting-actors/actors/runtime"
	exitcode "github.com/custodia-network/vesting-actors/actors/runtime/exitcode"
)

// A mock runtime for unit testing of actors in isolation.
// The mock allows direct specification of the runtime context as observable
// by an actor, supports the storage interface, models token holdings as an
// in-memory table, and mocks out the transfer primitives with expectations.
type Runtime struct {
	// Execution context
	ctx        context.Context
	now        abi.UnixTime
	receiver   addr.Address
	caller     addr.Address
	callerType cid.Cid
	holdings   map[addr.Address]runtime.TokenHolding

	// Actor state
	state cid.Cid

	// VM implementation
	inCall        bool
	store         map[cid.Cid][]byte
	inTransaction bool

	// Expectations
	t                        testing.TB
	expectValidateCallerAny  bool
	expectValidateCallerAddr []addr.Address
	expectValidateCallerType []cid.Cid
	expectTransfers          []*expectedTransfer
}

// An expected call to one of the transfer primitives. Transfers authorized by
// the record's own derived authority carry the seed; externally authorized
// transfers leave it nil.
type expectedTransfer struct {
	seed   abi.Seed
	from   addr.Address
	to     addr.Address
	amount abi.TokenAmount

	// result of applying the transfer
	exitCode exitcode.ExitCode
}

func (e *expectedTransfer) Equal(seed abi.Seed, from, to addr.Address, amount abi.TokenAmount) bool {
	return bytes.Equal(e.seed, seed) && e.from == from && e.to == to && e.amount == amount
}

func (e *expectedTransfer) String() string {
	return fmt.Sprintf("seed: %x from: %v to: %v amount: %v exitCode: %v", e.seed, e.from, e.to, e.amount, e.exitCode)
}

var _ runtime.Runtime = &Runtime{}
var _ runtime.StateHandle = &Runtime{}
var typeOfRuntimeInterface = reflect.TypeOf((*runtime.Runtime)(nil)).Elem()
var typeOfCborUnmarshaler = reflect.TypeOf((*runtime.CBORUnmarshaler)(nil)).Elem()
var typeOfCborMarshaler = reflect.TypeOf((*runtime.CBORMarshaler)(nil)).Elem()

var cidBuilder = cid.V1Builder{
	Codec:    cid.DagCBOR,
	MhType:   mh.SHA2_256,
	MhLength: 0, // default
}

// DerivedAddress is the mock's deterministic addressing function: the actor
// address derived from a seed. Exposed so tests can pre-compute the receiver
// address bound to a seed.
func DerivedAddress(seed abi.Seed) (addr.Address, error) {
	digest := blake2b.Sum256(seed)
	return addr.NewActorAddress(digest[:])
}

///// Implementation of the runtime API /////

func (rt *Runtime) Message() runtime.Message {
	rt.requireInCall()
	return rt
}

func (rt *Runtime) CurrTime() abi.UnixTime {
	rt.requireInCall()
	return rt.now
}

func (rt *Runtime) ValidateImmediateCallerAcceptAny() {
	rt.requireInCall()
	if !rt.expectValidateCallerAny {
		rt.failTest("unexpected validate-caller-any")
	}
	rt.expectValidateCallerAny = false
}

func (rt *Runtime) ValidateImmediateCallerIs(addrs ...addr.Address) {
	rt.requireInCall()
	rt.require(len(addrs) > 0, "addrs must be non-empty")
	// Check and clear expectations.
	if len(rt.expectValidateCallerAddr) == 0 {
		rt.failTest("unexpected validate caller addrs")
		return
	}
	if !reflect.DeepEqual(rt.expectValidateCallerAddr, addrs) {
		rt.failTest("unexpected validate caller addrs %v, expected %v", addrs, rt.expectValidateCallerAddr)
		return
	}
	defer func() {
		rt.expectValidateCallerAddr = nil
	}()

	// Implement method.
	for _, expected := range addrs {
		if rt.caller == expected {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller address %v forbidden, allowed: %v", rt.caller, addrs)
}

func (rt *Runtime) ValidateImmediateCallerType(types ...cid.Cid) {
	rt.requireInCall()
	rt.require(len(types) > 0, "types must be non-empty")

	// Check and clear expectations.
	if len(rt.expectValidateCallerType) == 0 {
		rt.failTest("unexpected validate caller code")
	}
	if !reflect.DeepEqual(rt.expectValidateCallerType, types) {
		rt.failTest("unexpected validate caller code %v, expected %v", types, rt.expectValidateCallerType)
	}
	defer func() {
		rt.expectValidateCallerType = nil
	}()

	// Implement method.
	for _, expected := range types {
		if rt.callerType.Equals(expected) {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller type %v forbidden, allowed: %v", rt.callerType, types)
}

func (rt *Runtime) DeriveAddress(seed abi.Seed) addr.Address {
	rt.requireInCall()
	derived, err := DerivedAddress(seed)
	if err != nil {
		rt.failTestNow("failed to derive address from seed %x: %v", seed, err)
	}
	return derived
}

func (rt *Runtime) TokenHolding(at addr.Address) (runtime.TokenHolding, bool) {
	rt.requireInCall()
	h, found := rt.holdings[at]
	return h, found
}

func (rt *Runtime) Transfer(from, to addr.Address, amount abi.TokenAmount) exitcode.ExitCode {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	return rt.applyTransfer(nil, from, to, amount)
}

func (rt *Runtime) TransferAsSelf(seed abi.Seed, from, to addr.Address, amount abi.TokenAmount) exitcode.ExitCode {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	// The derived authority is usable only by code holding the receiver's own
	// seed.
	if derived := rt.DeriveAddress(seed); derived != rt.receiver {
		rt.failTest("derived authority %v does not belong to receiver %v", derived, rt.receiver)
	}
	return rt.applyTransfer(seed, from, to, amount)
}

func (rt *Runtime) applyTransfer(seed abi.Seed, from, to addr.Address, amount abi.TokenAmount) exitcode.ExitCode {
	if len(rt.expectTransfers) == 0 {
		rt.failTestNow("unexpected transfer from: %v to: %v, amount: %v", from, to, amount)
	}
	expected := rt.expectTransfers[0]

	if !expected.Equal(seed, from, to, amount) {
		rt.failTest("transfer does not match expectation.\n"+
			"Call     - seed: %x from: %v to: %v amount: %v\n"+
			"Expected - %v", seed, from, to, amount, expected)
	}

	// Pop the expectation from the queue and reflect the movement in the
	// holdings table so sequential operations observe coherent balances.
	defer func() {
		rt.expectTransfers = rt.expectTransfers[1:]
	}()

	if expected.exitCode.IsSuccess() {
		if src, ok := rt.holdings[from]; ok {
			if src.Amount < amount {
				rt.failTest("transfer of %v exceeds balance %v of %v", amount, src.Amount, from)
			}
			src.Amount -= amount
			rt.holdings[from] = src
		}
		if dst, ok := rt.holdings[to]; ok {
			dst.Amount += amount
			rt.holdings[to] = dst
		}
	}
	return expected.exitCode
}

func (rt *Runtime) State() runtime.StateHandle {
	rt.requireInCall()
	return rt
}

func (rt *Runtime) Store() runtime.Store {
	// requireInCall omitted because it makes using this mock runtime as a store awkward.
	return rt
}

func (rt *Runtime) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	rt.requireInCall()
	rt.t.Logf("Mock Runtime Abort ExitCode: %v Reason: %s", errExitCode, fmt.Sprintf(msg, args...))
	panic(abort{errExitCode, fmt.Sprintf(msg, args...)})
}

func (rt *Runtime) Context() context.Context {
	// requireInCall omitted because it makes using this mock runtime as a store awkward.
	return rt.ctx
}

func (rt *Runtime) StartSpan(_ string) runtime.TraceSpan {
	rt.requireInCall()
	return &TraceSpan{}
}

///// Store implementation /////

func (rt *Runtime) Get(c cid.Cid, o runtime.CBORUnmarshaler) bool {
	// requireInCall omitted because it makes using this mock runtime as a store awkward.
	data, found := rt.store[c]
	if found {
		err := o.UnmarshalCBOR(bytes.NewReader(data))
		if err != nil {
			rt.Abortf(exitcode.SysErrSerialization, err.Error())
		}
	}
	return found
}

func (rt *Runtime) Put(o runtime.CBORMarshaler) cid.Cid {
	// requireInCall omitted because it makes using this mock runtime as a store awkward.
	r := bytes.Buffer{}
	err := o.MarshalCBOR(&r)
	if err != nil {
		rt.Abortf(exitcode.SysErrSerialization, err.Error())
	}
	data := r.Bytes()
	key, err := cidBuilder.Sum(data)
	if err != nil {
		rt.Abortf(exitcode.SysErrSerialization, err.Error())
	}
	rt.store[key] = data
	return key
}

///// Message implementation /////

func (rt *Runtime) Caller() addr.Address {
	return rt.caller
}

func (rt *Runtime) Receiver() addr.Address {
	return rt.receiver
}

///// State handle implementation /////

func (rt *Runtime) Create(obj runtime.CBORMarshaler) {
	if rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state already constructed")
	}
	rt.state = rt.Store().Put(obj)
}

func (rt *Runtime) Readonly(st runtime.CBORUnmarshaler) {
	found := rt.Store().Get(rt.state, st)
	if !found {
		rt.Abortf(exitcode.SysErrInternal, "actor state not found: %v", rt.state)
	}
}

func (rt *Runtime) Transaction(st runtime.CBORer, f func() interface{}) interface{} {
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "nested transaction")
	}
	rt.Readonly(st)
	rt.inTransaction = true
	defer func() { rt.inTransaction = false }()
	ret := f()
	rt.state = rt.Put(st)
	return ret
}

///// Trace span implementation /////

type TraceSpan struct {
}

func (t TraceSpan) End() {
	// no-op
}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

///// Inspection facilities /////

func (rt *Runtime) StateRoot() cid.Cid {
	return rt.state
}

func (rt *Runtime) GetState(o runtime.CBORUnmarshaler) {
	data, found := rt.store[rt.state]
	if !found {
		rt.failTestNow("can't find state at root %v", rt.state) // something internal is messed up
	}
	err := o.UnmarshalCBOR(bytes.NewReader(data))
	if err != nil {
		rt.failTestNow("error loading state: %v", err)
	}
}

// GetHolding returns the current holding at an address, failing the test if
// none exists there.
func (rt *Runtime) GetHolding(at addr.Address) runtime.TokenHolding {
	h, found := rt.holdings[at]
	if !found {
		rt.failTestNow("no holding at %v", at)
	}
	return h
}

func (rt *Runtime) GetNow() abi.UnixTime {
	return rt.now
}

///// Mocking facilities /////

func (rt *Runtime) SetCaller(address addr.Address, actorType cid.Cid) {
	rt.caller = address
	rt.callerType = actorType
}

func (rt *Runtime) SetNow(now abi.UnixTime) {
	rt.now = now
}

func (rt *Runtime) SetHolding(at addr.Address, h runtime.TokenHolding) {
	rt.holdings[at] = h
}

func (rt *Runtime) ExpectValidateCallerAny() {
	rt.expectValidateCallerAny = true
}

func (rt *Runtime) ExpectValidateCallerAddr(addrs ...addr.Address) {
	rt.require(len(addrs) > 0, "addrs must be non-empty")
	rt.expectValidateCallerAddr = addrs[:]
}

func (rt *Runtime) ExpectValidateCallerType(types ...cid.Cid) {
	rt.require(len(types) > 0, "types must be non-empty")
	rt.expectValidateCallerType = types[:]
}

// ExpectTransfer queues an expected externally-authorized transfer.
func (rt *Runtime) ExpectTransfer(from, to addr.Address, amount abi.TokenAmount, exitCode exitcode.ExitCode) {
	rt.expectTransfers = append(rt.expectTransfers, &expectedTransfer{
		seed:     nil,
		from:     from,
		to:       to,
		amount:   amount,
		exitCode: exitCode,
	})
}

// ExpectTransferAsSelf queues an expected transfer authorized by the
// receiver's seed-derived authority.
func (rt *Runtime) ExpectTransferAsSelf(seed abi.Seed, from, to addr.Address, amount abi.TokenAmount, exitCode exitcode.ExitCode) {
	rt.expectTransfers = append(rt.expectTransfers, &expectedTransfer{
		seed:     seed,
		from:     from,
		to:       to,
		amount:   amount,
		exitCode: exitCode,
	})
}

// Verifies that expected calls were received, and resets all expectations.
func (rt *Runtime) Verify() {
	if rt.expectValidateCallerAny {
		rt.failTest("expected ValidateCallerAny, not received")
	}
	if len(rt.expectValidateCallerAddr) > 0 {
		rt.failTest("expected ValidateCallerAddr %v, not received", rt.expectValidateCallerAddr)
	}
	if len(rt.expectValidateCallerType) > 0 {
		rt.failTest("expected ValidateCallerType %v, not received", rt.expectValidateCallerType)
	}
	if len(rt.expectTransfers) > 0 {
		rt.failTest("expected all transfers to be applied, remaining: %v", rt.expectTransfers)
	}

	rt.Reset()
}

// Resets expectations.
func (rt *Runtime) Reset() {
	rt.expectValidateCallerAny = false
	rt.expectValidateCallerAddr = nil
	rt.expectValidateCallerType = nil
	rt.expectTransfers = nil
}

// Calls f() expecting it to invoke Runtime.Abortf() with a specified exit code.
func (rt *Runtime) ExpectAbort(expected exitcode.ExitCode, f func()) {
	prevState := rt.state

	defer func() {
		r := recover()
		if r == nil {
			rt.failTest("expected abort with code %v but call succeeded", expected)
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		if a.code != expected {
			rt.failTest("abort expected code %v, got %v %s", expected, a.code, a.msg)
		}
		// Roll back state change.
		rt.state = prevState
	}()
	f()
}

func (rt *Runtime) Call(method interface{}, params interface{}) interface{} {
	meth := reflect.ValueOf(method)
	rt.verifyExportedMethodType(meth)

	// There's no panic recovery here. If an abort is expected, this call will
	// be inside an ExpectAbort block. If not expected, the panic will escape
	// and cause the test to fail.

	rt.inCall = true
	defer func() { rt.inCall = false }()
	var arg reflect.Value
	if params != nil {
		arg = reflect.ValueOf(params)
	} else {
		arg = reflect.ValueOf(abi.Empty)
	}
	ret := meth.Call([]reflect.Value{reflect.ValueOf(rt), arg})
	return ret[0].Interface()
}

func (rt *Runtime) verifyExportedMethodType(meth reflect.Value) {
	t := meth.Type()
	rt.require(t.Kind() == reflect.Func, "%v is not a function", meth)
	rt.require(t.NumIn() == 2, "exported method %v must have two parameters, got %v", meth, t.NumIn())
	rt.require(t.In(0) == typeOfRuntimeInterface, "exported method first parameter must be runtime, got %v", t.In(0))
	rt.require(t.In(1).Kind() == reflect.Ptr, "exported method second parameter must be pointer to params, got %v", t.In(1))
	rt.require(t.In(1).Implements(typeOfCborUnmarshaler), "exported method second parameter must be CBOR-unmarshalable params, got %v", t.In(1))
	rt.require(t.NumOut() == 1, "exported method must return a single value")
	// A value return type whose pointer implements the marshaler (the usual
	// cbor-gen pointer-receiver pattern) is marshalable too.
	rt.require(t.Out(0).Implements(typeOfCborMarshaler) || reflect.PtrTo(t.Out(0)).Implements(typeOfCborMarshaler),
		"exported method must return CBOR-marshalable value")
}

func (rt *Runtime) requireInCall() {
	rt.require(rt.inCall, "invalid runtime invocation outside of method call")
}

func (rt *Runtime) require(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.failTestNow(msg, args...)
	}
}

func (rt *Runtime) failTest(msg string, args ...interface{}) {
	rt.t.Logf(msg, args...)
	rt.t.Logf("%s", debug.Stack())
	rt.t.Fail()
}

func (rt *Runtime) failTestNow(msg string, args ...interface{}) {
	rt.t.Logf(msg, args...)
	rt.t.Logf("%s", debug.Stack())
	rt.t.FailNow()
}
