package vesting

import (
	"math"

	addr "github.com/filecoin-project/go-address"
	"golang.org/x/xerrors"

	abi "github.com/custodia-network/vesting-actors/actors/abi"
)

// State is the persistent record of one vesting actor: a pool of custodied
// funds released to a destination holding according to a fixed list of
// time-gated schedules.
type State struct {
	// Holding entitled to receive unlocked funds. Reassignable by whoever
	// owns the currently registered destination.
	Destination addr.Address

	// Fungible asset type custodied by this record. Set once by Create.
	Asset addr.Address

	// Transitions false to true exactly once, when Create populates the
	// record. Never reverses.
	IsInitialized bool

	// Release schedules. The list length is fixed when the record is
	// allocated and never changes; amounts are zeroed in place as they are
	// paid out.
	Schedules []Schedule
}

// Schedule is a single release tranche.
type Schedule struct {
	// Unix time at which the tranche becomes payable.
	ReleaseTime abi.UnixTime
	// Quantity payable, in the asset's smallest unit. Zeroed once paid.
	Amount abi.TokenAmount
}

// UndefIdentity is the identity recorded in a freshly allocated record before
// Create populates it, the analogue of zeroed account storage.
var UndefIdentity addr.Address

func init() {
	a, err := addr.NewIDAddress(0)
	if err != nil {
		panic(err)
	}
	UndefIdentity = a
}

// ConstructState allocates an unpopulated record with capacity for exactly
// numberOfSchedules tranches. Pre-committing the capacity decouples storage
// sizing from schedule content, which is not known until Create.
func ConstructState(numberOfSchedules uint64) *State {
	return &State{
		Destination:   UndefIdentity,
		Asset:         UndefIdentity,
		IsInitialized: false,
		Schedules:     make([]Schedule, numberOfSchedules),
	}
}

// TotalScheduledAmount sums the amounts of all schedules with overflow-checked
// addition, failing rather than wrapping when the sum exceeds the unsigned
// 64-bit range.
func TotalScheduledAmount(schedules []Schedule) (abi.TokenAmount, error) {
	total := abi.TokenAmount(0)
	for _, s := range schedules {
		if s.Amount > math.MaxUint64-total {
			return 0, xerrors.Errorf("total scheduled amount overflows uint64")
		}
		total += s.Amount
	}
	return total, nil
}

// AmountDueAt returns the sum of amounts from all schedules whose release
// time has passed at the given moment. Plain summation suffices: the total is
// bounded by the record total already validated at Create.
func (st *State) AmountDueAt(now abi.UnixTime) abi.TokenAmount {
	due := abi.TokenAmount(0)
	for _, s := range st.Schedules {
		if s.ReleaseTime <= now {
			due += s.Amount
		}
	}
	return due
}

// ResetDueSchedules zeroes the amount of every schedule whose release time
// has passed at the given moment. Resetting all due schedules unconditionally
// keeps repeated unlocks safe with schedules sharing a release time: a
// tranche already paid can never pay again.
func (st *State) ResetDueSchedules(now abi.UnixTime) {
	for i := range st.Schedules {
		if st.Schedules[i].ReleaseTime <= now {
			st.Schedules[i].Amount = 0
		}
	}
}
