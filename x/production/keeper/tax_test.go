package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

func TestSetLPPairOnce(t *testing.T) {
	k, ctx, _ := setupKeeper(t)

	_, found := k.GetLPPair(ctx)
	require.False(t, found)

	err := k.SetLPPairAddress(ctx, creatorOne, lpPairAddr)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, k.SetLPPairAddress(ctx, authority, lpPairAddr))

	got, found := k.GetLPPair(ctx)
	require.True(t, found)
	require.Equal(t, lpPairAddr, got)

	// The pair is write-once, even for the authority.
	err = k.SetLPPairAddress(ctx, authority, recipientOne)
	require.ErrorIs(t, err, types.ErrLPPairAlreadySet)
}

func TestTransferToLPPairTaxed(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	require.NoError(t, k.SetLPPairAddress(ctx, authority, lpPairAddr))
	bank.setBalance(creatorOne, coins(100_000))

	net, err := k.TransferWithTax(ctx, creatorOne, lpPairAddr, sdkmath.NewInt(100_000))
	require.NoError(t, err)

	// tax = 100000 * 1618 / 100000
	require.Equal(t, sdkmath.NewInt(98_382), net)
	require.Equal(t, sdkmath.NewInt(98_382), bank.balanceOf(lpPairAddr, types.DefaultDenom))
	require.True(t, bank.balanceOf(creatorOne, types.DefaultDenom).IsZero())
	require.Equal(t, sdkmath.NewInt(1618), bank.balanceOf(moduleAddrString(), types.DefaultDenom))

	stats, err := k.GetContractStats(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1618), stats.FundBalance)
	require.Equal(t, sdkmath.NewInt(1618), stats.ProductsRestocked)
}

func TestTransferFromLPPairTaxed(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	require.NoError(t, k.SetLPPairAddress(ctx, authority, lpPairAddr))
	bank.setBalance(lpPairAddr, coins(100_000))

	net, err := k.TransferWithTax(ctx, lpPairAddr, creatorOne, sdkmath.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(98_382), net)
	require.Equal(t, sdkmath.NewInt(98_382), bank.balanceOf(creatorOne, types.DefaultDenom))
}

func TestWalletToWalletUntaxed(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	require.NoError(t, k.SetLPPairAddress(ctx, authority, lpPairAddr))
	bank.setBalance(creatorOne, coins(100_000))

	net, err := k.TransferWithTax(ctx, creatorOne, recipientOne, sdkmath.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(100_000), net)
	require.Equal(t, sdkmath.NewInt(100_000), bank.balanceOf(recipientOne, types.DefaultDenom))

	stats, err := k.GetContractStats(ctx)
	require.NoError(t, err)
	require.True(t, stats.FundBalance.IsZero())
}

func TestTransfersUntaxedBeforePairSet(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	bank.setBalance(creatorOne, coins(100_000))

	// lpPairAddr is just another wallet until it is registered.
	net, err := k.TransferWithTax(ctx, creatorOne, lpPairAddr, sdkmath.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(100_000), net)
	require.Equal(t, sdkmath.NewInt(100_000), bank.balanceOf(lpPairAddr, types.DefaultDenom))
}

func TestAuthorityExemptFromTax(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	require.NoError(t, k.SetLPPairAddress(ctx, authority, lpPairAddr))
	bank.setBalance(authority, coins(100_000))

	net, err := k.TransferWithTax(ctx, authority, lpPairAddr, sdkmath.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(100_000), net)
	require.Equal(t, sdkmath.NewInt(100_000), bank.balanceOf(lpPairAddr, types.DefaultDenom))
}

func TestTinyTransferTaxTruncatesToZero(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	require.NoError(t, k.SetLPPairAddress(ctx, authority, lpPairAddr))
	bank.setBalance(creatorOne, coins(61))

	// 61 * 1618 / 100000 truncates to 0: the full amount goes through.
	net, err := k.TransferWithTax(ctx, creatorOne, lpPairAddr, sdkmath.NewInt(61))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(61), net)
	require.Equal(t, sdkmath.NewInt(61), bank.balanceOf(lpPairAddr, types.DefaultDenom))
}

func TestTaxedTransferWorksWhilePaused(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	require.NoError(t, k.SetLPPairAddress(ctx, authority, lpPairAddr))
	require.NoError(t, k.Pause(ctx, authority))
	bank.setBalance(creatorOne, coins(100_000))

	// Pause freezes production, not token movement.
	net, err := k.TransferWithTax(ctx, creatorOne, lpPairAddr, sdkmath.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(98_382), net)
}
