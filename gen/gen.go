package main

import (
	gen "github.com/whyrusleeping/cbor-gen"

	account "github.com/custodia-network/vesting-actors/actors/builtin/account"
	vesting "github.com/custodia-network/vesting-actors/actors/builtin/vesting"
)

func main() {
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/account/cbor_gen.go", "account",
		account.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vesting/cbor_gen.go", "vesting",
		// actor state
		vesting.State{},
		vesting.Schedule{},
		// method params
		vesting.ConstructorParams{},
		vesting.CreateParams{},
		vesting.UnlockParams{},
		vesting.ChangeDestinationParams{},
	); err != nil {
		panic(err)
	}
}
