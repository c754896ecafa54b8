package account

import (
	addr "github.com/filecoin-project/go-address"

	abi "github.com/custodia-network/vesting-actors/actors/abi"
	builtin "github.com/custodia-network/vesting-actors/actors/builtin"
	vmr "github.com/custodia-network/vesting-actors/actors/runtime"
	exitcode "github.com/custodia-network/vesting-actors/actors/runtime/exitcode"
)

type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.PubkeyAddress,
	}
}

var _ abi.Invokee = Actor{}

type State struct {
	Address addr.Address
}

// Account actors represent external signing parties. They are created
// implicitly by the host when a message targets a pubkey-style address, so
// only the system may invoke this constructor.
func (a Actor) Constructor(rt vmr.Runtime, address *addr.Address) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)
	switch address.Protocol() {
	case addr.SECP256K1:
	case addr.BLS:
		break // ok
	default:
		rt.Abortf(exitcode.SysErrorIllegalArgument, "address must use BLS or SECP protocol, got %v", address.Protocol())
	}
	st := State{Address: *address}
	rt.State().Create(&st)
	return nil
}

// Fetches the pubkey-type address from this actor.
func (a Actor) PubkeyAddress(rt vmr.Runtime, _ *abi.EmptyValue) addr.Address {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)
	return st.Address
}
