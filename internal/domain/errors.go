package domain

import "errors"

var (
	// ErrInvalidAddress is returned when an address is not a valid 20-byte hex address
	ErrInvalidAddress = errors.New("invalid address")

	// ErrUnknownNetwork is returned when a network is not configured
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrDeploymentNotFound is returned when no deployment matches a tag
	ErrDeploymentNotFound = errors.New("deployment not found")

	// ErrContractNotFound is returned when there is no bytecode at a contract address
	ErrContractNotFound = errors.New("contract not found")

	// ErrNotConnected is returned when a session is required but none is active
	ErrNotConnected = errors.New("not connected")

	// ErrChainMismatch is returned when the RPC endpoint reports a different chain than expected
	ErrChainMismatch = errors.New("chain mismatch")
)
