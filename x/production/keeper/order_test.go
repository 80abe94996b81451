package keeper_test

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

func TestCreateOrderSnapshotsReputation(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(1000))

	orderID, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(1000), 0)
	require.NoError(t, err)

	orders, err := k.GetActiveOrders(ctx, creatorOne)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, orderID, orders[0].Id)
	require.Equal(t, sdkmath.NewInt(1000), orders[0].Amount)
	// 1000 * 0.618
	require.Equal(t, sdkmath.NewInt(618), orders[0].Reputation)
	require.Equal(t, int64((5 * 24 * time.Hour).Seconds()), orders[0].DurationSecs)

	stats, err := k.GetContractStats(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(618), stats.FundTotalReputation)
	require.Equal(t, sdkmath.NewInt(1000), stats.TokensInProduction)
	require.Equal(t, uint64(1), stats.ActiveCreators)

	// Principal moved into module custody.
	require.True(t, bank.balanceOf(creatorOne, types.DefaultDenom).IsZero())
	require.Equal(t, sdkmath.NewInt(1000), bank.balanceOf(moduleAddrString(), types.DefaultDenom))
}

func TestCreateOrderPreconditions(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(1_000_000))

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.MinOrderAmount = sdkmath.NewInt(100)
	require.NoError(t, k.SetParams(ctx, params))

	_, err = k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(99), 0)
	require.ErrorIs(t, err, types.ErrAmountTooSmall)

	_, err = k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(100), 7)
	require.ErrorIs(t, err, types.ErrInvalidOrderType)

	_, err = k.CreateOrder(ctx, creatorTwo, sdkmath.NewInt(100), 0)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestCreateOrderCapAtFifty(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(1_000_000))

	for i := 0; i < 50; i++ {
		_, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(10), 0)
		require.NoError(t, err)
	}

	_, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(10), 0)
	require.ErrorIs(t, err, types.ErrMaxOrdersReached)

	orders, err := k.GetActiveOrders(ctx, creatorOne)
	require.NoError(t, err)
	require.Len(t, orders, 50)
}

func TestCompleteOrderAfterUnlock(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(1000))

	orderID, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(1000), 0)
	require.NoError(t, err)

	// Still locked one second before the boundary.
	lockedCtx := advance(ctx, 5*24*time.Hour-time.Second)
	err = k.CompleteOrder(lockedCtx, creatorOne, orderID)
	require.ErrorIs(t, err, types.ErrOrderStillLocked)

	unlockedCtx := advance(ctx, 5*24*time.Hour+time.Second)
	require.NoError(t, k.CompleteOrder(unlockedCtx, creatorOne, orderID))

	// Empty fund: principal back, no yield.
	require.Equal(t, sdkmath.NewInt(1000), bank.balanceOf(creatorOne, types.DefaultDenom))

	orders, err := k.GetActiveOrders(unlockedCtx, creatorOne)
	require.NoError(t, err)
	require.Empty(t, orders)

	stats, err := k.GetContractStats(unlockedCtx)
	require.NoError(t, err)
	require.True(t, stats.FundTotalReputation.IsZero())
	require.True(t, stats.TokensInProduction.IsZero())
	require.Equal(t, uint64(0), stats.ActiveCreators)
}

func TestCompleteOrderUnknownID(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(1000))

	_, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(1000), 0)
	require.NoError(t, err)

	err = k.CompleteOrder(ctx, creatorOne, 999)
	require.ErrorIs(t, err, types.ErrInvalidOrderIndex)
}

func TestCompleteOrderPaysYieldShare(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(1000))
	bank.setBalance(authority, coins(10_000))

	require.NoError(t, k.FundProductionPool(ctx, authority, sdkmath.NewInt(10_000)))
	orderID, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(1000), 0)
	require.NoError(t, err)

	doneCtx := advance(ctx, 6*24*time.Hour)
	require.NoError(t, k.CompleteOrder(doneCtx, creatorOne, orderID))

	got := bank.balanceOf(creatorOne, types.DefaultDenom)
	require.True(t, got.GT(sdkmath.NewInt(1000)), "expected principal plus yield, got %s", got)

	stats, err := k.GetContractStats(doneCtx)
	require.NoError(t, err)
	require.False(t, stats.FundBalance.IsNegative())
	require.Equal(t, got.SubRaw(1000), stats.ProductsClaimed)
}

func TestCancelOrderFullRefund(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(1000))

	orderID, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(1000), 3)
	require.NoError(t, err)

	// Immediately, long before the 89-day unlock.
	require.NoError(t, k.CancelOrder(ctx, creatorOne, orderID))
	require.Equal(t, sdkmath.NewInt(1000), bank.balanceOf(creatorOne, types.DefaultDenom))

	stats, err := k.GetContractStats(ctx)
	require.NoError(t, err)
	require.True(t, stats.FundTotalReputation.IsZero())
	require.True(t, stats.TotalBurned.IsZero())
}

func TestEmergencyUnstakeBurnsFee(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(100_000))

	orderID, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(100_000), 6)
	require.NoError(t, err)

	require.NoError(t, k.EmergencyUnstake(ctx, creatorOne, orderID))

	// fee = 100000 * 1618 / 100000
	require.Equal(t, sdkmath.NewInt(98_382), bank.balanceOf(creatorOne, types.DefaultDenom))
	require.Equal(t, sdkmath.NewInt(1618), bank.burned.AmountOf(types.DefaultDenom))

	stats, err := k.GetContractStats(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1618), stats.TotalBurned)
	require.True(t, stats.TokensInProduction.IsZero())
}

func TestSwapAndPopPreservesOtherOrders(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(10_000))

	idA, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(1000), 0)
	require.NoError(t, err)
	idB, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(2000), 2)
	require.NoError(t, err)
	idC, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(3000), 6)
	require.NoError(t, err)

	before, err := k.GetActiveOrders(ctx, creatorOne)
	require.NoError(t, err)
	require.Len(t, before, 3)

	// Remove the middle order; the last one relocates into its slot.
	require.NoError(t, k.CancelOrder(ctx, creatorOne, idB))

	after, err := k.GetActiveOrders(ctx, creatorOne)
	require.NoError(t, err)
	require.Len(t, after, 2)
	require.Equal(t, idA, after[0].Id)
	require.Equal(t, idC, after[1].Id)

	// Surviving orders are byte-for-byte what they were.
	require.Equal(t, before[0], after[0])
	require.Equal(t, before[2], after[1])

	// The durable ids still resolve after the relocation.
	require.NoError(t, k.CompleteOrder(advance(ctx, 6*24*time.Hour), creatorOne, idA))
	require.NoError(t, k.CompleteOrder(advance(ctx, 1598*24*time.Hour), creatorOne, idC))
}

func TestCompoundRewardsGrowsOrder(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(100_000))
	bank.setBalance(authority, coins(1_000_000))

	require.NoError(t, k.FundProductionPool(ctx, authority, sdkmath.NewInt(1_000_000)))
	orderID, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(100_000), 0)
	require.NoError(t, err)

	laterCtx := advance(ctx, 100*24*time.Hour)
	compounded, err := k.CompoundRewards(laterCtx, creatorOne, orderID)
	require.NoError(t, err)
	require.True(t, compounded.IsPositive())

	orders, err := k.GetActiveOrders(laterCtx, creatorOne)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, sdkmath.NewInt(100_000).Add(compounded), orders[0].Amount)

	// Reputation recomputed at the same tier multiplier.
	wantRep, err := types.CalculateReputation(orders[0].Amount, 0)
	require.NoError(t, err)
	require.Equal(t, wantRep, orders[0].Reputation)

	// The lock clock is untouched.
	require.Equal(t, ctx.BlockTime().Unix(), orders[0].StartTimeUnix)

	// Compounding consumed the accrued yield; nothing left to claim.
	claimed, err := k.ClaimYield(laterCtx, creatorOne)
	require.NoError(t, err)
	require.True(t, claimed.IsZero())

	// Restocked counts both the pool funding and the compounded yield.
	stats, err := k.GetContractStats(laterCtx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1_000_000).Add(compounded), stats.ProductsRestocked)
}

func TestCompoundRewardsRequiresPendingYield(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(1000))

	orderID, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(1000), 0)
	require.NoError(t, err)

	// Empty fund: nothing accrues no matter how long we wait.
	_, err = k.CompoundRewards(advance(ctx, 100*24*time.Hour), creatorOne, orderID)
	require.ErrorIs(t, err, types.ErrNoPendingProducts)
}

func TestPauseBlocksMutations(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(10_000))
	bank.setBalance(authority, coins(10_000))

	orderID, err := k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(1000), 0)
	require.NoError(t, err)

	require.NoError(t, k.Pause(ctx, authority))

	_, err = k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(1000), 0)
	require.ErrorIs(t, err, types.ErrModulePaused)
	err = k.CompleteOrder(advance(ctx, 6*24*time.Hour), creatorOne, orderID)
	require.ErrorIs(t, err, types.ErrModulePaused)
	err = k.CancelOrder(ctx, creatorOne, orderID)
	require.ErrorIs(t, err, types.ErrModulePaused)
	err = k.EmergencyUnstake(ctx, creatorOne, orderID)
	require.ErrorIs(t, err, types.ErrModulePaused)
	_, err = k.CompoundRewards(ctx, creatorOne, orderID)
	require.ErrorIs(t, err, types.ErrModulePaused)
	_, err = k.ClaimYield(ctx, creatorOne)
	require.ErrorIs(t, err, types.ErrModulePaused)
	err = k.FundProductionPool(ctx, authority, sdkmath.NewInt(1000))
	require.ErrorIs(t, err, types.ErrModulePaused)

	// Views stay available while paused.
	_, err = k.GetActiveOrders(ctx, creatorOne)
	require.NoError(t, err)
	_, err = k.GetContractStats(ctx)
	require.NoError(t, err)

	require.NoError(t, k.Unpause(ctx, authority))
	_, err = k.CreateOrder(ctx, creatorOne, sdkmath.NewInt(1000), 0)
	require.NoError(t, err)
}
