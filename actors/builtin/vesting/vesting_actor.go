package vesting

import (
	addr "github.com/filecoin-project/go-address"

	abi "github.com/custodia-network/vesting-actors/actors/abi"
	builtin "github.com/custodia-network/vesting-actors/actors/builtin"
	vmr "github.com/custodia-network/vesting-actors/actors/runtime"
	exitcode "github.com/custodia-network/vesting-actors/actors/runtime/exitcode"
)

// Exit codes specific to the vesting actor.
const (
	// The record has already been populated by Create.
	ErrAlreadyInitialized = exitcode.FirstActorErrorCode + iota
	// The record has not yet been populated by Create.
	ErrNotInitialized
	// The custody holding is not owned by the vesting record.
	ErrInvalidVestingTokenAuthority
	// The custody holding has a delegate authority.
	ErrInvalidVestingTokenDelegateAuthority
	// The custody holding has a close authority.
	ErrInvalidVestingTokenCloseAuthority
	// The source holding cannot cover the total scheduled amount.
	ErrInsufficientFunds
	// The supplied schedule list does not match the capacity fixed at
	// initialization.
	ErrInvalidScheduleLen
	// The sum of scheduled amounts exceeds the unsigned 64-bit range.
	ErrTotalAmountOverflow
	// The supplied destination does not match the registered destination.
	ErrInvalidDestination
	// No schedule has reached its release time yet.
	ErrReleaseTimeNotYetReached
	// The caller does not own the currently registered destination holding.
	ErrInvalidDestinationAuthority
)

type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Create,
		3:                         a.Unlock,
		4:                         a.ChangeDestination,
	}
}

var _ abi.Invokee = Actor{}

type ConstructorParams struct {
	// Seed binding this record to its derived address.
	Seed abi.Seed
	// Capacity of the schedule list, fixed for the record's lifetime.
	NumberOfSchedules uint64
}

// Constructor allocates an empty, uninitialized record sized for exactly
// NumberOfSchedules tranches. No funds move. Allocation at an occupied
// address is rejected by the host's storage allocator, not here.
func (a Actor) Constructor(rt vmr.Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	validateSeedBindsReceiver(rt, params.Seed)

	st := ConstructState(params.NumberOfSchedules)
	rt.State().Create(st)
	return nil
}

type CreateParams struct {
	Seed abi.Seed
	// Fungible asset type this record will custody.
	Asset addr.Address
	// Holding entitled to receive unlocked funds.
	Destination addr.Address
	// Custody holding that receives the locked funds. Must be owned by the
	// record itself, with no delegate and no close authority.
	VestingToken addr.Address
	// Depositor's holding the locked funds are drawn from. The caller is the
	// source authority.
	SourceToken addr.Address
	// Release schedules; length must equal the capacity fixed at allocation.
	Schedules []Schedule
}

// Create populates the record and locks the total scheduled amount into
// custody, atomically with record activation. The depositor's own signature
// authorizes the deposit transfer.
func (a Actor) Create(rt vmr.Runtime, params *CreateParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	validateSeedBindsReceiver(rt, params.Seed)

	var st State
	rt.State().Readonly(&st)
	if st.IsInitialized {
		rt.Abortf(ErrAlreadyInitialized, "cannot overwrite an existing vesting record")
	}
	if len(params.Schedules) != len(st.Schedules) {
		rt.Abortf(ErrInvalidScheduleLen, "schedule list length %d does not match capacity %d fixed at initialization",
			len(params.Schedules), len(st.Schedules))
	}

	// The custody holding must be movable by this record's authority alone:
	// no external owner, no delegate, no account-closure side channel.
	custody := requireHolding(rt, params.VestingToken)
	if custody.Owner != rt.Message().Receiver() {
		rt.Abortf(ErrInvalidVestingTokenAuthority, "custody holding %v must be owned by the vesting record", params.VestingToken)
	}
	if custody.HasDelegate() {
		rt.Abortf(ErrInvalidVestingTokenDelegateAuthority, "custody holding %v must not have a delegate authority", params.VestingToken)
	}
	if custody.HasCloseAuthority() {
		rt.Abortf(ErrInvalidVestingTokenCloseAuthority, "custody holding %v must not have a close authority", params.VestingToken)
	}

	total, err := TotalScheduledAmount(params.Schedules)
	builtin.RequireNoErr(rt, err, ErrTotalAmountOverflow, "failed to total scheduled amounts")

	// Strict inequality: a source balance exactly equal to the total is
	// rejected, leaving the depositor a unit of margin.
	source := requireHolding(rt, params.SourceToken)
	if source.Amount <= total {
		rt.Abortf(ErrInsufficientFunds, "source holding balance %v does not exceed total scheduled amount %v", source.Amount, total)
	}

	rt.State().Transaction(&st, func() interface{} {
		st.Destination = params.Destination
		st.Asset = params.Asset
		st.IsInitialized = true
		st.Schedules = params.Schedules
		return nil
	})

	code := rt.Transfer(params.SourceToken, params.VestingToken, total)
	builtin.RequireSuccess(rt, code, "failed to lock %v into custody", total)
	return nil
}

type UnlockParams struct {
	Seed abi.Seed
	// Custody holding the due funds are released from.
	VestingToken addr.Address
	// Destination holding to credit; must match the registered destination.
	DestinationToken addr.Address
}

// Unlock releases every tranche whose release time has passed, crediting the
// registered destination. The record authorizes the outgoing transfer with
// its own seed-derived authority; no external signer is involved, so anyone
// may crank a due release.
func (a Actor) Unlock(rt vmr.Runtime, params *UnlockParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	validateSeedBindsReceiver(rt, params.Seed)

	var st State
	rt.State().Readonly(&st)
	if !st.IsInitialized {
		rt.Abortf(ErrNotInitialized, "vesting record is not initialized")
	}
	if st.Destination != params.DestinationToken {
		rt.Abortf(ErrInvalidDestination, "destination %v does not match registered destination %v", params.DestinationToken, st.Destination)
	}
	custody := requireHolding(rt, params.VestingToken)
	if custody.Owner != rt.Message().Receiver() {
		rt.Abortf(ErrInvalidVestingTokenAuthority, "custody holding %v must be owned by the vesting record", params.VestingToken)
	}

	now := rt.CurrTime()
	due := st.AmountDueAt(now)
	if due == 0 {
		rt.Abortf(ErrReleaseTimeNotYetReached, "no tranche has reached its release time at %v", now)
	}

	code := rt.TransferAsSelf(params.Seed, params.VestingToken, params.DestinationToken, due)
	builtin.RequireSuccess(rt, code, "failed to release %v to %v", due, params.DestinationToken)

	// Zero out everything due at the time of this call, after the funds have
	// moved. A tranche already paid (amount zero) resets to zero again.
	rt.State().Transaction(&st, func() interface{} {
		st.ResetDueSchedules(now)
		return nil
	})
	return nil
}

type ChangeDestinationParams struct {
	Seed abi.Seed
	// Currently registered destination holding; the caller must own it.
	CurrentDestination addr.Address
	// Holding future unlocks will credit instead.
	NewDestination addr.Address
}

// ChangeDestination reassigns where future unlocks pay out. Control over the
// current destination is the only gate: destination control implies the right
// to redirect future payouts. No funds move and no schedule changes.
func (a Actor) ChangeDestination(rt vmr.Runtime, params *ChangeDestinationParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	validateSeedBindsReceiver(rt, params.Seed)

	var st State
	rt.State().Readonly(&st)
	if !st.IsInitialized {
		rt.Abortf(ErrNotInitialized, "vesting record is not initialized")
	}
	if st.Destination != params.CurrentDestination {
		rt.Abortf(ErrInvalidDestination, "holding %v does not match registered destination %v", params.CurrentDestination, st.Destination)
	}

	current := requireHolding(rt, params.CurrentDestination)
	if current.Owner != rt.Message().Caller() {
		rt.Abortf(ErrInvalidDestinationAuthority, "caller %v does not own the registered destination holding", rt.Message().Caller())
	}
	// The new destination need only exist; no relation to the depositor or
	// the current owner is required.
	requireHolding(rt, params.NewDestination)

	rt.State().Transaction(&st, func() interface{} {
		st.Destination = params.NewDestination
		return nil
	})
	return nil
}

// Every operation binds to one record address through the caller-supplied
// seed; a seed that does not derive the receiver is a host-level argument
// error, not a vesting failure.
func validateSeedBindsReceiver(rt vmr.Runtime, seed abi.Seed) {
	derived := rt.DeriveAddress(seed)
	if derived != rt.Message().Receiver() {
		rt.Abortf(exitcode.SysErrorIllegalArgument, "seed derives %v, which does not bind receiver %v", derived, rt.Message().Receiver())
	}
}

func requireHolding(rt vmr.Runtime, at addr.Address) vmr.TokenHolding {
	h, found := rt.TokenHolding(at)
	if !found {
		rt.Abortf(exitcode.SysErrorIllegalArgument, "no token holding at %v", at)
	}
	return h
}
