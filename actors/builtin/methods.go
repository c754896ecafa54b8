package builtin

import (
	abi "github.com/custodia-network/vesting-actors/actors/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

type vestingMethods struct {
	Constructor       abi.MethodNum
	Create            abi.MethodNum
	Unlock            abi.MethodNum
	ChangeDestination abi.MethodNum
}

var MethodsVesting = vestingMethods{MethodConstructor, 2, 3, 4}

type accountMethods struct {
	Constructor abi.MethodNum
}

var MethodsAccount = accountMethods{MethodConstructor}
