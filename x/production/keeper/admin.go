package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

// FundProductionPool pulls tokens from the authority into module custody and
// credits the production fund balance. Authority-only.
func (k Keeper) FundProductionPool(ctx context.Context, funder string, amount sdkmath.Int) error {
	if err := k.checkNotPaused(ctx); err != nil {
		return err
	}
	if funder != k.authority {
		return errorsmod.Wrapf(types.ErrUnauthorized, "only %s may fund the pool", k.authority)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if amount.LT(params.MinFundAmount) {
		return errorsmod.Wrapf(types.ErrAmountTooSmall, "got %s, min %s", amount, params.MinFundAmount)
	}

	funderAddr, err := sdk.AccAddressFromBech32(funder)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "funder: %s", err)
	}

	fund, err := k.GetFund(ctx)
	if err != nil {
		return err
	}
	if err := k.settleFund(ctx, &fund); err != nil {
		return err
	}
	fund.Balance = fund.Balance.Add(amount)
	fund.TotalRestocked = fund.TotalRestocked.Add(amount)
	if err := k.setFund(ctx, fund); err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, funderAddr, types.ModuleName, coins); err != nil {
		return err
	}

	sdkCtx, _ := contextNow(ctx)
	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		EventTypePoolFunded,
		sdk.NewAttribute(AttributeKeyFunder, funder),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	))
	return nil
}

// EmergencyOwnerWithdraw moves tokens from the tracked fund to the authority.
// The tracked fund balance and the module token balance must never diverge in
// the withdrawable direction, so both are checked.
func (k Keeper) EmergencyOwnerWithdraw(ctx context.Context, authority string, amount sdkmath.Int) error {
	if authority != k.authority {
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected %s", k.authority)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	held := k.bankKeeper.SpendableCoins(ctx, k.GetModuleAccountAddress()).AmountOf(params.Denom)
	if held.LT(amount) {
		return errorsmod.Wrapf(types.ErrInsufficientBalance, "module holds %s, need %s", held, amount)
	}

	fund, err := k.GetFund(ctx)
	if err != nil {
		return err
	}
	if err := k.settleFund(ctx, &fund); err != nil {
		return err
	}
	if amount.GT(fund.Balance) {
		return errorsmod.Wrapf(types.ErrExceedsProductionFund, "fund %s, requested %s", fund.Balance, amount)
	}
	fund.Balance = fund.Balance.Sub(amount)
	if err := k.setFund(ctx, fund); err != nil {
		return err
	}

	authorityAddr, err := sdk.AccAddressFromBech32(authority)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "authority: %s", err)
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, authorityAddr, coins); err != nil {
		return err
	}

	sdkCtx, _ := contextNow(ctx)
	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		EventTypeFundWithdrawn,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Pause trips the blanket breaker: every mutating entry point fails uniformly
// until Unpause. Read-only queries stay available.
func (k Keeper) Pause(ctx context.Context, authority string) error {
	if authority != k.authority {
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected %s", k.authority)
	}
	if err := k.Paused.Set(ctx, true); err != nil {
		return err
	}
	sdkCtx, _ := contextNow(ctx)
	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		EventTypeModulePaused,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
	))
	return nil
}

// Unpause resets the breaker.
func (k Keeper) Unpause(ctx context.Context, authority string) error {
	if authority != k.authority {
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected %s", k.authority)
	}
	if err := k.Paused.Set(ctx, false); err != nil {
		return err
	}
	sdkCtx, _ := contextNow(ctx)
	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		EventTypeModuleUnpaused,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
	))
	return nil
}
