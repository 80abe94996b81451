package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

// Msg-accepting entry points. Each validates the message syntax via
// ValidateBasic and delegates to the field-based keeper operation, which
// enforces the economic preconditions under the store transaction.

// MsgCreateOrder opens a new time-locked order and returns its id.
func (k Keeper) MsgCreateOrder(ctx context.Context, msg types.MsgCreateOrder) (uint64, error) {
	if err := msg.ValidateBasic(); err != nil {
		return 0, err
	}
	return k.CreateOrder(ctx, msg.Creator, msg.Amount, msg.OrderType)
}

// MsgCompleteOrder closes an unlocked order.
func (k Keeper) MsgCompleteOrder(ctx context.Context, msg types.MsgCompleteOrder) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.CompleteOrder(ctx, msg.Creator, msg.OrderId)
}

// MsgCancelOrder exits an order early without penalty.
func (k Keeper) MsgCancelOrder(ctx context.Context, msg types.MsgCancelOrder) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.CancelOrder(ctx, msg.Creator, msg.OrderId)
}

// MsgEmergencyUnstake exits an order early, burning the exit fee.
func (k Keeper) MsgEmergencyUnstake(ctx context.Context, msg types.MsgEmergencyUnstake) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.EmergencyUnstake(ctx, msg.Creator, msg.OrderId)
}

// MsgCompoundRewards folds the creator's pending yield into the given order
// and returns the compounded amount.
func (k Keeper) MsgCompoundRewards(ctx context.Context, msg types.MsgCompoundRewards) (sdkmath.Int, error) {
	if err := msg.ValidateBasic(); err != nil {
		return sdkmath.ZeroInt(), err
	}
	return k.CompoundRewards(ctx, msg.Creator, msg.OrderId)
}

// MsgClaimYield pays out the creator's pending yield and returns the amount.
func (k Keeper) MsgClaimYield(ctx context.Context, msg types.MsgClaimYield) (sdkmath.Int, error) {
	if err := msg.ValidateBasic(); err != nil {
		return sdkmath.ZeroInt(), err
	}
	return k.ClaimYield(ctx, msg.Creator)
}

// MsgFundProductionPool deposits tokens into the production fund.
func (k Keeper) MsgFundProductionPool(ctx context.Context, msg types.MsgFundProductionPool) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.FundProductionPool(ctx, msg.Funder, msg.Amount)
}

// MsgEmergencyWithdraw moves tokens out of the tracked fund to the authority.
func (k Keeper) MsgEmergencyWithdraw(ctx context.Context, msg types.MsgEmergencyWithdraw) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.EmergencyOwnerWithdraw(ctx, msg.Authority, msg.Amount)
}

// MsgSetLPPair designates the liquidity-pair address.
func (k Keeper) MsgSetLPPair(ctx context.Context, msg types.MsgSetLPPair) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.SetLPPairAddress(ctx, msg.Authority, msg.Address)
}

// MsgPause halts every mutating production operation.
func (k Keeper) MsgPause(ctx context.Context, msg types.MsgPause) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.Pause(ctx, msg.Authority)
}

// MsgUnpause lifts the pause flag.
func (k Keeper) MsgUnpause(ctx context.Context, msg types.MsgUnpause) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.Unpause(ctx, msg.Authority)
}
