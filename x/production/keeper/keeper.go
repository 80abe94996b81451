package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

// BankKeeper defines the expected bank keeper interface. The bank module is
// the token ledger; the production module account is the engine's custody for
// both staked principal and the production fund.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// Keeper manages the production module state: per-creator order lists, the
// global production fund, the liquidity-pair tax hook, and the pause flag.
//
// Every mutating entry point settles the fund accrual first, finalizes all
// internal bookkeeping, and only then performs bank transfers. The SDK's
// per-message cache-wrap gives each operation all-or-nothing semantics.
type Keeper struct {
	cdc          codec.Codec
	storeService store.KVStoreService
	authority    string
	logger       log.Logger

	bankKeeper BankKeeper

	Accounts      collections.Map[string, string]
	Fund          collections.Item[string]
	Params        collections.Item[string]
	LPPair        collections.Item[string]
	Paused        collections.Item[bool]
	OrderSequence collections.Item[uint64]
}

// NewKeeper creates a new production keeper.
func NewKeeper(
	cdc codec.Codec,
	storeService store.KVStoreService,
	bankKeeper BankKeeper,
	authority string,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	return Keeper{
		cdc:          cdc,
		storeService: storeService,
		authority:    authority,
		logger:       log.NewNopLogger(),
		bankKeeper:   bankKeeper,
		Accounts: collections.NewMap(
			sb,
			collections.NewPrefix(types.AccountKeyPrefix),
			"accounts",
			collections.StringKey,
			collections.StringValue,
		),
		Fund: collections.NewItem(
			sb,
			collections.NewPrefix(types.FundKey),
			"fund",
			collections.StringValue,
		),
		Params: collections.NewItem(
			sb,
			collections.NewPrefix(types.ParamsKey),
			"params",
			collections.StringValue,
		),
		LPPair: collections.NewItem(
			sb,
			collections.NewPrefix(types.LPPairKey),
			"lp_pair",
			collections.StringValue,
		),
		Paused: collections.NewItem(
			sb,
			collections.NewPrefix(types.PausedKey),
			"paused",
			collections.BoolValue,
		),
		OrderSequence: collections.NewItem(
			sb,
			collections.NewPrefix(types.OrderSequenceKey),
			"order_sequence",
			collections.Uint64Value,
		),
	}
}

// SetLogger replaces the keeper logger.
func (k *Keeper) SetLogger(logger log.Logger) {
	k.logger = logger
}

// GetAuthority returns the keeper authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAccountAddress returns the production module account address,
// derived deterministically from the module name.
func (k Keeper) GetModuleAccountAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetParams loads module params, falling back to defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	raw, err := k.Params.Get(ctx)
	if err != nil {
		return types.DefaultParams(), nil
	}
	var params types.Params
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return types.Params{}, fmt.Errorf("decode params: %w", err)
	}
	return params, nil
}

// SetParams validates and stores module params.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return k.Params.Set(ctx, string(raw))
}

// GetFund loads the fund record, initializing an empty fund anchored at the
// current block time on first use.
func (k Keeper) GetFund(ctx context.Context) (types.FundState, error) {
	raw, err := k.Fund.Get(ctx)
	if err != nil {
		_, now := contextNow(ctx)
		return types.NewFundState(now.Unix()), nil
	}
	var fund types.FundState
	if err := json.Unmarshal([]byte(raw), &fund); err != nil {
		return types.FundState{}, fmt.Errorf("decode fund: %w", err)
	}
	return fund, nil
}

func (k Keeper) setFund(ctx context.Context, fund types.FundState) error {
	raw, err := json.Marshal(fund)
	if err != nil {
		return err
	}
	return k.Fund.Set(ctx, string(raw))
}

// GetAccount loads a creator account, returning an empty record when the
// address has never staked.
func (k Keeper) GetAccount(ctx context.Context, address string) (types.CreatorAccount, error) {
	raw, err := k.Accounts.Get(ctx, address)
	if err != nil {
		return types.NewCreatorAccount(address), nil
	}
	var acct types.CreatorAccount
	if err := json.Unmarshal([]byte(raw), &acct); err != nil {
		return types.CreatorAccount{}, fmt.Errorf("decode account %s: %w", address, err)
	}
	return acct, nil
}

func (k Keeper) setAccount(ctx context.Context, acct types.CreatorAccount) error {
	raw, err := json.Marshal(acct)
	if err != nil {
		return err
	}
	return k.Accounts.Set(ctx, acct.Address, string(raw))
}

// IsPaused reports the emergency pause flag.
func (k Keeper) IsPaused(ctx context.Context) bool {
	paused, err := k.Paused.Get(ctx)
	if err != nil {
		return false
	}
	return paused
}

// checkNotPaused gates every mutating entry point uniformly.
func (k Keeper) checkNotPaused(ctx context.Context) error {
	if k.IsPaused(ctx) {
		return types.ErrModulePaused
	}
	return nil
}

func (k Keeper) nextOrderID(ctx context.Context) (uint64, error) {
	seq, err := k.OrderSequence.Get(ctx)
	if err != nil {
		seq = 0
	}
	if err := k.OrderSequence.Set(ctx, seq+1); err != nil {
		return 0, err
	}
	return seq, nil
}

func unwrapSDKContext(ctx context.Context) (sdk.Context, bool) {
	if ctx == nil {
		return sdk.Context{}, false
	}
	if sdkCtx, ok := ctx.(sdk.Context); ok {
		return sdkCtx, true
	}
	if val := ctx.Value(sdk.SdkContextKey); val != nil {
		if sdkCtx, ok := val.(sdk.Context); ok {
			return sdkCtx, true
		}
	}
	return sdk.Context{}, false
}

func contextNow(ctx context.Context) (sdk.Context, time.Time) {
	if sdkCtx, ok := unwrapSDKContext(ctx); ok {
		return sdkCtx, sdkCtx.BlockTime()
	}
	return sdk.Context{}, time.Now().UTC()
}

func emitEventIfPossible(ctx sdk.Context, event sdk.Event) {
	if em := ctx.EventManager(); em != nil {
		em.EmitEvent(event)
	}
}
