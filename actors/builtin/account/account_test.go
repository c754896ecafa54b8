package account_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-network/vesting-actors/actors/abi"
	"github.com/custodia-network/vesting-actors/actors/builtin"
	"github.com/custodia-network/vesting-actors/actors/builtin/account"
	"github.com/custodia-network/vesting-actors/actors/runtime/exitcode"
	"github.com/custodia-network/vesting-actors/support/mock"
	tutil "github.com/custodia-network/vesting-actors/support/testing"
)

func TestAccountActor(t *testing.T) {
	actor := account.Actor{}

	receiver := tutil.NewIDAddr(t, 100)
	builder := mock.NewBuilder(context.Background(), receiver).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)

	t.Run("construction stores the pubkey address", func(t *testing.T) {
		pkAddr := tutil.NewSECP256K1Addr(t, "secp address")
		rt := builder.Build(t)

		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		ret := rt.Call(actor.Constructor, &pkAddr)
		assert.Nil(t, ret)
		rt.Verify()

		rt.ExpectValidateCallerAny()
		got := rt.Call(actor.PubkeyAddress, &abi.EmptyValue{})
		assert.Equal(t, pkAddr, got)
		rt.Verify()

		var st account.State
		rt.GetState(&st)
		summary, acc := account.CheckStateInvariants(&st)
		assert.True(t, acc.IsEmpty(), strings.Join(acc.Messages(), "; "))
		assert.Equal(t, pkAddr, summary.PubKeyAddr)
	})

	t.Run("rejects an ID address", func(t *testing.T) {
		rt := builder.Build(t)
		idAddr := tutil.NewIDAddr(t, 1)

		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.SysErrorIllegalArgument, func() {
			rt.Call(actor.Constructor, &idAddr)
		})
	})

	t.Run("only the system may construct", func(t *testing.T) {
		pkAddr := tutil.NewBLSAddr(t, 1)
		rt := mock.NewBuilder(context.Background(), receiver).
			WithCaller(tutil.NewIDAddr(t, 999), builtin.AccountActorCodeID).
			Build(t)

		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(actor.Constructor, &pkAddr)
		})
	})
}
