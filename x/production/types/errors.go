package types

import errorsmod "cosmossdk.io/errors"

// Module sentinel errors. Every precondition failure rejects the whole
// operation; there is no partial state change behind any of these.
var (
	ErrInvalidAmount         = errorsmod.Register(ModuleName, 2, "invalid amount")
	ErrAmountTooSmall        = errorsmod.Register(ModuleName, 3, "amount below minimum")
	ErrInsufficientBalance   = errorsmod.Register(ModuleName, 4, "insufficient balance")
	ErrInvalidOrderType      = errorsmod.Register(ModuleName, 5, "invalid order type")
	ErrMaxOrdersReached      = errorsmod.Register(ModuleName, 6, "max orders per creator reached")
	ErrOrderStillLocked      = errorsmod.Register(ModuleName, 7, "order still locked")
	ErrInvalidOrderIndex     = errorsmod.Register(ModuleName, 8, "order not found")
	ErrNoPendingProducts     = errorsmod.Register(ModuleName, 9, "no pending products")
	ErrInvalidAddress        = errorsmod.Register(ModuleName, 10, "invalid address")
	ErrLPPairAlreadySet      = errorsmod.Register(ModuleName, 11, "liquidity pair address already set")
	ErrExceedsProductionFund = errorsmod.Register(ModuleName, 12, "amount exceeds production fund")
	ErrModulePaused          = errorsmod.Register(ModuleName, 13, "module is paused")
	ErrUnauthorized          = errorsmod.Register(ModuleName, 14, "unauthorized")
)
