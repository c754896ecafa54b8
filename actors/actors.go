package actors

import (
	cid "github.com/ipfs/go-cid"

	"github.com/custodia-network/vesting-actors/actors/builtin"
	"github.com/custodia-network/vesting-actors/actors/builtin/account"
	"github.com/custodia-network/vesting-actors/actors/builtin/vesting"
)

type BuiltinActor struct {
	exports []interface{}
	code    cid.Cid
}

// Exports has a list of method available on the actor.
func (b BuiltinActor) Exports() []interface{} {
	return b.exports
}

// Code is the CodeID (cid) of the actor.
func (b BuiltinActor) Code() cid.Cid {
	return b.code
}

func BuiltinActors() []BuiltinActor {
	return []BuiltinActor{
		{
			exports: account.Actor{}.Exports(),
			code:    builtin.AccountActorCodeID,
		},
		{
			exports: vesting.Actor{}.Exports(),
			code:    builtin.VestingActorCodeID,
		},
	}
}
