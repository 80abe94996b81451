package keeper_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storemetrics "cosmossdk.io/store/metrics"
	"cosmossdk.io/store/rootmulti"
	storetypes "cosmossdk.io/store/types"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/keeper"
	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

var (
	authority    = sdk.AccAddress(bytes.Repeat([]byte{0xAA}, 20)).String()
	creatorOne   = sdk.AccAddress(bytes.Repeat([]byte{0x01}, 20)).String()
	creatorTwo   = sdk.AccAddress(bytes.Repeat([]byte{0x02}, 20)).String()
	lpPairAddr   = sdk.AccAddress(bytes.Repeat([]byte{0x03}, 20)).String()
	recipientOne = sdk.AccAddress(bytes.Repeat([]byte{0x04}, 20)).String()
)

// mockBankKeeper is a minimal in-memory token ledger. It enforces balance
// sufficiency so custody bugs in the keeper surface as test failures.
type mockBankKeeper struct {
	balances map[string]sdk.Coins
	burned   sdk.Coins
}

func newMockBank() *mockBankKeeper {
	return &mockBankKeeper{
		balances: make(map[string]sdk.Coins),
		burned:   sdk.NewCoins(),
	}
}

func moduleAddrString() string {
	return authtypes.NewModuleAddress(types.ModuleName).String()
}

func (m *mockBankKeeper) setBalance(addr string, coins sdk.Coins) {
	m.balances[addr] = coins
}

func (m *mockBankKeeper) balanceOf(addr, denom string) sdkmath.Int {
	return m.balances[addr].AmountOf(denom)
}

func (m *mockBankKeeper) move(from, to string, amt sdk.Coins) error {
	fromCoins, hasNeg := m.balances[from].SafeSub(amt...)
	if hasNeg {
		return types.ErrInsufficientBalance
	}
	m.balances[from] = fromCoins
	m.balances[to] = m.balances[to].Add(amt...)
	return nil
}

func (m *mockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.move(fromAddr.String(), toAddr.String(), amt)
}

func (m *mockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.move(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

func (m *mockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.move(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

func (m *mockBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	moduleAddr := authtypes.NewModuleAddress(moduleName).String()
	remaining, hasNeg := m.balances[moduleAddr].SafeSub(amt...)
	if hasNeg {
		return types.ErrInsufficientBalance
	}
	m.balances[moduleAddr] = remaining
	m.burned = m.burned.Add(amt...)
	return nil
}

func (m *mockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

func setupKeeper(t *testing.T) (keeper.Keeper, sdk.Context, *mockBankKeeper) {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	cms := rootmulti.NewStore(db, log.NewNopLogger(), storemetrics.NoOpMetrics{})
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	require.NoError(t, cms.LoadLatestVersion())

	header := tmproto.Header{
		ChainID: "crikz-test-1",
		Height:  1,
		Time:    time.Unix(1_760_000_000, 0).UTC(),
	}
	ctx := sdk.NewContext(cms, header, false, log.NewNopLogger())

	reg := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(reg)
	cdc := codec.NewProtoCodec(reg)

	bank := newMockBank()
	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		bank,
		authority,
	)

	params := types.DefaultParams()
	params.MinOrderAmount = sdkmath.NewInt(1)
	params.MinFundAmount = sdkmath.NewInt(1)
	require.NoError(t, k.SetParams(ctx, params))

	return k, ctx, bank
}

func coins(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, sdkmath.NewInt(amount)))
}

func advance(ctx sdk.Context, d time.Duration) sdk.Context {
	return ctx.WithBlockTime(ctx.BlockTime().Add(d))
}
