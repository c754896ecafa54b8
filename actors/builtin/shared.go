package builtin

import (
	"github.com/custodia-network/vesting-actors/actors/runtime"
	"github.com/custodia-network/vesting-actors/actors/runtime/exitcode"
)

///// Code shared by multiple built-in actors. /////

// Propagates a failed transfer or send by aborting the current method with
// the same exit code.
func RequireSuccess(rt runtime.Runtime, e exitcode.ExitCode, msg string, args ...interface{}) {
	if !e.IsSuccess() {
		rt.Abortf(e, msg, args...)
	}
}

// Aborts with a formatted message if err is non-nil. If err carries an exit
// code on its chain, that code takes precedence over defaultExitCode.
func RequireNoErr(rt runtime.Runtime, err error, defaultExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	if err != nil {
		newMsg := msg + ": %s"
		newArgs := append(args, err)
		code := exitcode.Unwrap(err, defaultExitCode)
		rt.Abortf(code, newMsg, newArgs...)
	}
}

// Aborts with a message if the predicate is false.
func RequireParam(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.SysErrorIllegalArgument, msg, args...)
	}
}
