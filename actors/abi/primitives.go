package abi

import (
	"strconv"
)

// The abi package contains definitions of all types that cross the boundary
// between actor code and the host ledger runtime.

// UnixTime is a wall-clock timestamp in seconds since the Unix epoch, as
// observed by the ledger's time oracle. The oracle is monotonic
// non-decreasing within a network's consensus view.
type UnixTime uint64

func (t UnixTime) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// TokenAmount is a quantity of a fungible asset, denominated in the asset's
// smallest unit. Amounts are unsigned 64-bit by protocol: any aggregation
// that would exceed the representable range must fail rather than wrap.
type TokenAmount uint64

func (t TokenAmount) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// MethodNum is an integer that represents a particular method in an actor's
// function table. Method numbers are how invocations name actor code, keeping
// human-language naming concerns out of dispatch. Treat them like protobuf
// field tags: never reuse a retired number.
type MethodNum uint64

func (e MethodNum) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Seed is the caller-chosen byte string from which a vesting record's address
// and self-signing authority are derived. Only code holding the same seed can
// obtain the derived authority.
//
// Seed is an alias rather than a new type because it crosses the runtime
// boundary constantly and a defined type introduces conversion noise for no
// added safety.
type Seed = []byte
