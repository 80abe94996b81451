package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

// ---------------------------------------------------------------------------
// Order Lifecycle Manager
// ---------------------------------------------------------------------------
// Per order: Active+Locked -> Active+Unlocked -> {Completed | Cancelled |
// Compounded (stays Active)}.
//
// Orders live in a dense per-creator slice. Removal is swap-and-pop: the last
// order relocates into the removed slot, so positions are not stable. Callers
// hold the durable order id instead; the keeper resolves it to a position on
// each operation.
//
// Every entry point settles the fund accrual, finalizes all internal
// bookkeeping (reputation, fund counters, removal), and only then moves
// tokens through the bank keeper.
// ---------------------------------------------------------------------------

// CreateOrder opens a time-locked order and moves the principal into module
// custody. Returns the new order's id.
func (k Keeper) CreateOrder(ctx context.Context, creator string, amount sdkmath.Int, orderType uint32) (uint64, error) {
	if err := k.checkNotPaused(ctx); err != nil {
		return 0, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return 0, types.ErrInvalidAmount
	}
	if amount.LT(params.MinOrderAmount) {
		return 0, errorsmod.Wrapf(types.ErrAmountTooSmall, "got %s, min %s", amount, params.MinOrderAmount)
	}

	ot, err := types.GetOrderType(orderType)
	if err != nil {
		return 0, err
	}

	creatorAddr, err := sdk.AccAddressFromBech32(creator)
	if err != nil {
		return 0, errorsmod.Wrapf(types.ErrInvalidAddress, "creator: %s", err)
	}

	spendable := k.bankKeeper.SpendableCoins(ctx, creatorAddr).AmountOf(params.Denom)
	if spendable.LT(amount) {
		return 0, errorsmod.Wrapf(types.ErrInsufficientBalance, "spendable %s, need %s", spendable, amount)
	}

	acct, err := k.GetAccount(ctx, creator)
	if err != nil {
		return 0, err
	}
	if uint32(len(acct.Orders)) >= params.MaxOrdersPerCreator {
		return 0, errorsmod.Wrapf(types.ErrMaxOrdersReached, "cap %d", params.MaxOrdersPerCreator)
	}

	fund, err := k.GetFund(ctx)
	if err != nil {
		return 0, err
	}
	if err := k.settleFund(ctx, &fund); err != nil {
		return 0, err
	}
	settleAccount(fund, &acct)

	reputation, err := types.CalculateReputation(amount, orderType)
	if err != nil {
		return 0, err
	}

	orderID, err := k.nextOrderID(ctx)
	if err != nil {
		return 0, err
	}

	sdkCtx, now := contextNow(ctx)
	order := types.Order{
		Id:            orderID,
		Amount:        amount,
		Reputation:    reputation,
		OrderType:     orderType,
		StartTimeUnix: now.Unix(),
		DurationSecs:  int64(ot.LockDuration.Seconds()),
	}

	acct.Orders = append(acct.Orders, order)
	acct.TotalReputation = acct.TotalReputation.Add(reputation)
	fund.TotalReputation = fund.TotalReputation.Add(reputation)
	fund.TokensInProduction = fund.TokensInProduction.Add(amount)
	if len(acct.Orders) == 1 {
		fund.ActiveCreators++
	}

	if err := k.setAccount(ctx, acct); err != nil {
		return 0, err
	}
	if err := k.setFund(ctx, fund); err != nil {
		return 0, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creatorAddr, types.ModuleName, coins); err != nil {
		return 0, err
	}

	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		EventTypeOrderCreated,
		sdk.NewAttribute(AttributeKeyCreator, creator),
		sdk.NewAttribute(AttributeKeyOrderID, fmt.Sprintf("%d", orderID)),
		sdk.NewAttribute(AttributeKeyOrderType, ot.Name),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(AttributeKeyReputation, reputation.String()),
		sdk.NewAttribute(AttributeKeyUnlockAt, fmt.Sprintf("%d", order.UnlockTimeUnix())),
	))

	return orderID, nil
}

// CompleteOrder closes an unlocked order, paying principal plus the order's
// share of the creator's pending yield.
func (k Keeper) CompleteOrder(ctx context.Context, creator string, orderID uint64) error {
	if err := k.checkNotPaused(ctx); err != nil {
		return err
	}

	acct, order, pos, err := k.lookupOrder(ctx, creator, orderID)
	if err != nil {
		return err
	}

	sdkCtx, now := contextNow(ctx)
	if now.Unix() < order.UnlockTimeUnix() {
		return errorsmod.Wrapf(types.ErrOrderStillLocked, "unlocks at %d, now %d", order.UnlockTimeUnix(), now.Unix())
	}

	fund, err := k.GetFund(ctx)
	if err != nil {
		return err
	}
	if err := k.settleFund(ctx, &fund); err != nil {
		return err
	}
	settleAccount(fund, &acct)

	// The order's share of the account's claimable yield, computed while the
	// order still contributes to the account's reputation.
	orderYield := sdkmath.ZeroInt()
	if acct.TotalReputation.IsPositive() {
		pending := pendingYield(fund, acct)
		orderYield = pending.Mul(order.Reputation).Quo(acct.TotalReputation)
	}
	payoutFromFund(&fund, &acct, orderYield)

	removeOrderAt(&acct, pos)
	acct.TotalReputation = acct.TotalReputation.Sub(order.Reputation)
	fund.TotalReputation = fund.TotalReputation.Sub(order.Reputation)
	fund.TokensInProduction = fund.TokensInProduction.Sub(order.Amount)
	if len(acct.Orders) == 0 {
		fund.ActiveCreators--
	}

	if err := k.setAccount(ctx, acct); err != nil {
		return err
	}
	if err := k.setFund(ctx, fund); err != nil {
		return err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	creatorAddr := sdk.MustAccAddressFromBech32(creator)
	payout := order.Amount.Add(orderYield)
	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, payout))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creatorAddr, coins); err != nil {
		return err
	}

	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		EventTypeOrderCompleted,
		sdk.NewAttribute(AttributeKeyCreator, creator),
		sdk.NewAttribute(AttributeKeyOrderID, fmt.Sprintf("%d", orderID)),
		sdk.NewAttribute(AttributeKeyAmount, order.Amount.String()),
		sdk.NewAttribute(AttributeKeyYield, orderYield.String()),
	))

	return nil
}

// CancelOrder exits an order before unlock with a full principal refund.
// Yield already settled to the account remains claimable via ClaimYield.
func (k Keeper) CancelOrder(ctx context.Context, creator string, orderID uint64) error {
	return k.earlyExit(ctx, creator, orderID, false)
}

// EmergencyUnstake exits an order before unlock, burning a 1.618% fee from
// the principal and returning the remainder.
func (k Keeper) EmergencyUnstake(ctx context.Context, creator string, orderID uint64) error {
	return k.earlyExit(ctx, creator, orderID, true)
}

func (k Keeper) earlyExit(ctx context.Context, creator string, orderID uint64, burnFee bool) error {
	if err := k.checkNotPaused(ctx); err != nil {
		return err
	}

	acct, order, pos, err := k.lookupOrder(ctx, creator, orderID)
	if err != nil {
		return err
	}

	fund, err := k.GetFund(ctx)
	if err != nil {
		return err
	}
	if err := k.settleFund(ctx, &fund); err != nil {
		return err
	}
	settleAccount(fund, &acct)

	fee := sdkmath.ZeroInt()
	if burnFee {
		fee = order.Amount.Mul(sdkmath.NewInt(types.FeeNumerator)).Quo(sdkmath.NewInt(types.FeeDenominator))
		fund.TotalBurned = fund.TotalBurned.Add(fee)
	}
	returned := order.Amount.Sub(fee)

	removeOrderAt(&acct, pos)
	acct.TotalReputation = acct.TotalReputation.Sub(order.Reputation)
	fund.TotalReputation = fund.TotalReputation.Sub(order.Reputation)
	fund.TokensInProduction = fund.TokensInProduction.Sub(order.Amount)
	if len(acct.Orders) == 0 {
		fund.ActiveCreators--
	}

	if err := k.setAccount(ctx, acct); err != nil {
		return err
	}
	if err := k.setFund(ctx, fund); err != nil {
		return err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if fee.IsPositive() {
		if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, sdk.NewCoins(sdk.NewCoin(params.Denom, fee))); err != nil {
			return err
		}
	}
	creatorAddr := sdk.MustAccAddressFromBech32(creator)
	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, returned))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creatorAddr, coins); err != nil {
		return err
	}

	sdkCtx, _ := contextNow(ctx)
	eventType := EventTypeOrderCancelled
	if burnFee {
		eventType = EventTypeEmergencyUnstake
	}
	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		eventType,
		sdk.NewAttribute(AttributeKeyCreator, creator),
		sdk.NewAttribute(AttributeKeyOrderID, fmt.Sprintf("%d", orderID)),
		sdk.NewAttribute(AttributeKeyFee, fee.String()),
		sdk.NewAttribute(AttributeKeyReturned, returned.String()),
	))

	return nil
}

// CompoundRewards folds the creator's entire pending yield into the given
// order: the order's amount grows by the compounded yield and its reputation
// is recomputed at the same tier multiplier. The lock clock is not reset.
func (k Keeper) CompoundRewards(ctx context.Context, creator string, orderID uint64) (sdkmath.Int, error) {
	zero := sdkmath.ZeroInt()
	if err := k.checkNotPaused(ctx); err != nil {
		return zero, err
	}

	acct, order, pos, err := k.lookupOrder(ctx, creator, orderID)
	if err != nil {
		return zero, err
	}

	fund, err := k.GetFund(ctx)
	if err != nil {
		return zero, err
	}
	if err := k.settleFund(ctx, &fund); err != nil {
		return zero, err
	}
	settleAccount(fund, &acct)

	compounded := pendingYield(fund, acct)
	if !compounded.IsPositive() {
		return zero, types.ErrNoPendingProducts
	}

	// The yield moves from the fund into production custody; no tokens leave
	// the module account.
	fund.Balance = fund.Balance.Sub(compounded)
	acct.PendingBuffer = acct.PendingBuffer.Sub(compounded)
	fund.TotalRestocked = fund.TotalRestocked.Add(compounded)
	acct.Restocked = acct.Restocked.Add(compounded)

	order.Amount = order.Amount.Add(compounded)
	newReputation, err := types.CalculateReputation(order.Amount, order.OrderType)
	if err != nil {
		return zero, err
	}
	delta := newReputation.Sub(order.Reputation)
	order.Reputation = newReputation
	acct.Orders[pos] = order

	acct.TotalReputation = acct.TotalReputation.Add(delta)
	fund.TotalReputation = fund.TotalReputation.Add(delta)
	fund.TokensInProduction = fund.TokensInProduction.Add(compounded)

	if err := k.setAccount(ctx, acct); err != nil {
		return zero, err
	}
	if err := k.setFund(ctx, fund); err != nil {
		return zero, err
	}

	sdkCtx, _ := contextNow(ctx)
	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		EventTypeOrderExpanded,
		sdk.NewAttribute(AttributeKeyCreator, creator),
		sdk.NewAttribute(AttributeKeyOrderID, fmt.Sprintf("%d", orderID)),
		sdk.NewAttribute(AttributeKeyAmount, order.Amount.String()),
		sdk.NewAttribute(AttributeKeyReputation, newReputation.String()),
	))

	return compounded, nil
}

// ClaimYield pays the creator's pending yield. Claiming with nothing accrued
// pays zero without error, so back-to-back claims are idempotent.
func (k Keeper) ClaimYield(ctx context.Context, creator string) (sdkmath.Int, error) {
	zero := sdkmath.ZeroInt()
	if err := k.checkNotPaused(ctx); err != nil {
		return zero, err
	}

	creatorAddr, err := sdk.AccAddressFromBech32(creator)
	if err != nil {
		return zero, errorsmod.Wrapf(types.ErrInvalidAddress, "creator: %s", err)
	}

	acct, err := k.GetAccount(ctx, creator)
	if err != nil {
		return zero, err
	}
	fund, err := k.GetFund(ctx)
	if err != nil {
		return zero, err
	}
	if err := k.settleFund(ctx, &fund); err != nil {
		return zero, err
	}
	settleAccount(fund, &acct)

	payout := pendingYield(fund, acct)
	if !payout.IsPositive() {
		// Persist the settlement so the debt pointer still advances.
		if err := k.setAccount(ctx, acct); err != nil {
			return zero, err
		}
		if err := k.setFund(ctx, fund); err != nil {
			return zero, err
		}
		return zero, nil
	}

	payoutFromFund(&fund, &acct, payout)

	if err := k.setAccount(ctx, acct); err != nil {
		return zero, err
	}
	if err := k.setFund(ctx, fund); err != nil {
		return zero, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, err
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, payout))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creatorAddr, coins); err != nil {
		return zero, err
	}

	sdkCtx, _ := contextNow(ctx)
	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		EventTypeProductsClaimed,
		sdk.NewAttribute(AttributeKeyCreator, creator),
		sdk.NewAttribute(AttributeKeyYield, payout.String()),
	))

	return payout, nil
}

// lookupOrder resolves (creator, orderID) to the account, a copy of the
// order, and its current position.
func (k Keeper) lookupOrder(ctx context.Context, creator string, orderID uint64) (types.CreatorAccount, types.Order, int, error) {
	if _, err := sdk.AccAddressFromBech32(creator); err != nil {
		return types.CreatorAccount{}, types.Order{}, -1, errorsmod.Wrapf(types.ErrInvalidAddress, "creator: %s", err)
	}
	acct, err := k.GetAccount(ctx, creator)
	if err != nil {
		return types.CreatorAccount{}, types.Order{}, -1, err
	}
	pos := acct.FindOrder(orderID)
	if pos < 0 {
		return types.CreatorAccount{}, types.Order{}, -1, errorsmod.Wrapf(types.ErrInvalidOrderIndex, "order %d", orderID)
	}
	return acct, acct.Orders[pos], pos, nil
}

// removeOrderAt removes the order at pos via swap-and-pop: the last order
// relocates into the vacated slot and the slice shrinks by one. Every other
// order's fields are untouched.
func removeOrderAt(acct *types.CreatorAccount, pos int) {
	last := len(acct.Orders) - 1
	acct.Orders[pos] = acct.Orders[last]
	acct.Orders = acct.Orders[:last]
}
