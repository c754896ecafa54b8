package vesting_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/golden"

	"github.com/custodia-network/vesting-actors/actors/abi"
	"github.com/custodia-network/vesting-actors/actors/builtin/vesting"
	tutil "github.com/custodia-network/vesting-actors/support/testing"
)

func TestTotalScheduledAmount(t *testing.T) {
	t.Run("empty list totals zero", func(t *testing.T) {
		total, err := vesting.TotalScheduledAmount(nil)
		require.NoError(t, err)
		assert.Equal(t, abi.TokenAmount(0), total)
	})

	t.Run("sums tranche amounts", func(t *testing.T) {
		total, err := vesting.TotalScheduledAmount(twoTranches())
		require.NoError(t, err)
		assert.Equal(t, abi.TokenAmount(100), total)
	})

	t.Run("a sum of exactly the unsigned 64-bit maximum is legal", func(t *testing.T) {
		total, err := vesting.TotalScheduledAmount([]vesting.Schedule{
			{ReleaseTime: 100, Amount: math.MaxUint64 - 1},
			{ReleaseTime: 200, Amount: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, abi.TokenAmount(math.MaxUint64), total)
	})

	t.Run("a sum past the unsigned 64-bit maximum fails", func(t *testing.T) {
		_, err := vesting.TotalScheduledAmount([]vesting.Schedule{
			{ReleaseTime: 100, Amount: math.MaxUint64},
			{ReleaseTime: 200, Amount: 1},
		})
		require.Error(t, err)
	})
}

func TestAmountDue(t *testing.T) {
	schedules := []vesting.Schedule{
		{ReleaseTime: 100, Amount: 50},
		{ReleaseTime: 100, Amount: 25},
		{ReleaseTime: 200, Amount: 25},
	}
	st := vesting.State{Schedules: schedules}

	t.Run("nothing due before the first release time", func(t *testing.T) {
		assert.Equal(t, abi.TokenAmount(0), st.AmountDueAt(99))
	})

	t.Run("a tranche is due exactly at its release time", func(t *testing.T) {
		assert.Equal(t, abi.TokenAmount(75), st.AmountDueAt(100))
	})

	t.Run("everything is due past the last release time", func(t *testing.T) {
		assert.Equal(t, abi.TokenAmount(100), st.AmountDueAt(300))
	})

	t.Run("reset zeroes only due tranches", func(t *testing.T) {
		st := vesting.State{Schedules: append([]vesting.Schedule{}, schedules...)}
		st.ResetDueSchedules(100)
		assert.Equal(t, abi.TokenAmount(0), st.Schedules[0].Amount)
		assert.Equal(t, abi.TokenAmount(0), st.Schedules[1].Amount)
		assert.Equal(t, abi.TokenAmount(25), st.Schedules[2].Amount)
		// Release times are retained even after payout.
		assert.Equal(t, abi.UnixTime(100), st.Schedules[0].ReleaseTime)
		assert.Equal(t, abi.TokenAmount(0), st.AmountDueAt(100))
		assert.Equal(t, abi.TokenAmount(25), st.AmountDueAt(200))
	})
}

// The byte layout of a stored record is consensus-critical; pin it.
func TestStateEncoding(t *testing.T) {
	st := vesting.State{
		Destination:   tutil.NewIDAddr(t, 101),
		Asset:         tutil.NewIDAddr(t, 200),
		IsInitialized: true,
		Schedules:     twoTranches(),
	}

	var buf bytes.Buffer
	require.NoError(t, st.MarshalCBOR(&buf))
	golden.Assert(t, buf.Bytes())

	var decoded vesting.State
	require.NoError(t, decoded.UnmarshalCBOR(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, st, decoded)
}
