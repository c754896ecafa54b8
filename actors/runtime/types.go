package runtime

import (
	addr "github.com/filecoin-project/go-address"

	abi "github.com/custodia-network/vesting-actors/actors/abi"
)

// TokenHolding is the read-only view of a fungible-asset holding account as
// supplied by the host ledger. Holdings are platform state: actor code never
// mutates them directly, only observes them and moves balances through the
// transfer primitives.
type TokenHolding struct {
	// The fungible asset type held.
	Asset addr.Address
	// The identity whose signature (or derived authority) moves funds out.
	Owner addr.Address
	// Balance in the asset's smallest unit.
	Amount abi.TokenAmount
	// Third party permitted to spend from the holding, or addr.Undef.
	Delegate addr.Address
	// Identity permitted to close the holding, or addr.Undef.
	CloseAuthority addr.Address
}

// HasDelegate reports whether a delegate authority is set on the holding.
func (h TokenHolding) HasDelegate() bool {
	return h.Delegate != addr.Undef
}

// HasCloseAuthority reports whether a close authority is set on the holding.
func (h TokenHolding) HasCloseAuthority() bool {
	return h.CloseAuthority != addr.Undef
}
