package mock

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	cid "github.com/ipfs/go-cid"

	abi "github.com/custodia-network/vesting-actors/actors/abi"
	runtime "github.com/custodia-network/vesting-actors/actors/runtime"
)

// Builder for fluent initialization of a mock runtime.
type RuntimeBuilder struct {
	rt *Runtime
}

// Initializes a new builder with a receiving actor address.
func NewBuilder(ctx context.Context, receiver addr.Address) *RuntimeBuilder {
	m := &Runtime{
		ctx:        ctx,
		now:        0,
		receiver:   receiver,
		caller:     addr.Address{},
		callerType: cid.Undef,
		holdings:   make(map[addr.Address]runtime.TokenHolding),

		state: cid.Undef,
		store: make(map[cid.Cid][]byte),

		t: nil, // Initialized at Build()
	}
	return &RuntimeBuilder{m}
}

// Builds a new runtime object with the configured values.
func (b *RuntimeBuilder) Build(t testing.TB) *Runtime {
	cpy := *b.rt

	// Deep copy the mutable values.
	cpy.store = make(map[cid.Cid][]byte)
	for k, v := range b.rt.store {
		cpy.store[k] = v
	}
	cpy.holdings = make(map[addr.Address]runtime.TokenHolding)
	for k, v := range b.rt.holdings {
		cpy.holdings[k] = v
	}

	cpy.t = t
	return &cpy
}

func (b *RuntimeBuilder) WithNow(now abi.UnixTime) *RuntimeBuilder {
	b.rt.now = now
	return b
}

func (b *RuntimeBuilder) WithCaller(address addr.Address, code cid.Cid) *RuntimeBuilder {
	b.rt.caller = address
	b.rt.callerType = code
	return b
}

func (b *RuntimeBuilder) WithHolding(at addr.Address, h runtime.TokenHolding) *RuntimeBuilder {
	b.rt.holdings[at] = h
	return b
}
