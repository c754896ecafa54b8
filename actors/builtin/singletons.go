package builtin

import (
	addr "github.com/filecoin-project/go-address"
)

// Addresses of singleton actors, defined for all networks.
var (
	SystemActorAddr addr.Address
)

func init() {
	mustIDAddress := func(id uint64) addr.Address {
		a, err := addr.NewIDAddress(id)
		if err != nil {
			panic(err)
		}
		return a
	}
	SystemActorAddr = mustIDAddress(0)
}
