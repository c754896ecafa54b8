package vesting

import (
	abi "github.com/custodia-network/vesting-actors/actors/abi"
	builtin "github.com/custodia-network/vesting-actors/actors/builtin"
)

type StateSummary struct {
	Initialized      bool
	ScheduleCount    int
	TotalOutstanding abi.TokenAmount
}

// Checks internal invariants of vesting record state.
func CheckStateInvariants(st *State) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}

	if !st.IsInitialized {
		acc.Require(st.Destination == UndefIdentity, "uninitialized record has destination %v", st.Destination)
		acc.Require(st.Asset == UndefIdentity, "uninitialized record has asset %v", st.Asset)
		for i, s := range st.Schedules {
			acc.Require(s.ReleaseTime == 0 && s.Amount == 0, "uninitialized record has populated schedule %d: %v", i, s)
		}
	} else {
		acc.Require(st.Destination != UndefIdentity, "initialized record has no destination")
		acc.Require(st.Asset != UndefIdentity, "initialized record has no asset")
	}

	total, err := TotalScheduledAmount(st.Schedules)
	acc.Require(err == nil, "outstanding schedule amounts overflow: %v", err)

	return &StateSummary{
		Initialized:      st.IsInitialized,
		ScheduleCount:    len(st.Schedules),
		TotalOutstanding: total,
	}, acc
}
