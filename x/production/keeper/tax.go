package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

// ---------------------------------------------------------------------------
// Transfer Tax Hook
// ---------------------------------------------------------------------------
// Plain token transfers route through TransferWithTax. Transfers touching the
// designated liquidity-pair address pay exactly 1.618% into the production
// fund; wallet-to-wallet transfers move the full amount. The module account
// and the authority are tax-exempt.
//
// The hook runs independently of the order lifecycle and is not gated by the
// pause flag: pausing halts the staking engine, not the token itself.
// ---------------------------------------------------------------------------

// GetLPPair returns the liquidity-pair address and whether it has been set.
func (k Keeper) GetLPPair(ctx context.Context) (string, bool) {
	pair, err := k.LPPair.Get(ctx)
	if err != nil || pair == "" {
		return "", false
	}
	return pair, true
}

// SetLPPairAddress designates the liquidity-pair address. Authority-only and
// settable exactly once.
func (k Keeper) SetLPPairAddress(ctx context.Context, authority, address string) error {
	if authority != k.authority {
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected %s", k.authority)
	}
	if _, err := sdk.AccAddressFromBech32(address); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "pair: %s", err)
	}
	if _, set := k.GetLPPair(ctx); set {
		return types.ErrLPPairAlreadySet
	}
	if err := k.LPPair.Set(ctx, address); err != nil {
		return err
	}

	sdkCtx, _ := contextNow(ctx)
	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		EventTypeLPPairSet,
		sdk.NewAttribute(AttributeKeyPair, address),
	))
	return nil
}

// taxExempt reports whether an address never pays the transfer tax.
func (k Keeper) taxExempt(address string) bool {
	return address == k.authority || address == k.GetModuleAccountAddress().String()
}

// TransferWithTax moves amount from sender to recipient, diverting the
// 1.618% tax into the production fund when either side is the liquidity-pair
// address. Returns the amount delivered to the recipient.
func (k Keeper) TransferWithTax(ctx context.Context, sender, recipient string, amount sdkmath.Int) (sdkmath.Int, error) {
	zero := sdkmath.ZeroInt()
	if amount.IsNil() || !amount.IsPositive() {
		return zero, types.ErrInvalidAmount
	}
	senderAddr, err := sdk.AccAddressFromBech32(sender)
	if err != nil {
		return zero, errorsmod.Wrapf(types.ErrInvalidAddress, "sender: %s", err)
	}
	recipientAddr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return zero, errorsmod.Wrapf(types.ErrInvalidAddress, "recipient: %s", err)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, err
	}

	pair, set := k.GetLPPair(ctx)
	taxable := set &&
		(sender == pair || recipient == pair) &&
		!k.taxExempt(sender) && !k.taxExempt(recipient)

	if !taxable {
		coins := sdk.NewCoins(sdk.NewCoin(params.Denom, amount))
		if err := k.bankKeeper.SendCoins(ctx, senderAddr, recipientAddr, coins); err != nil {
			return zero, err
		}
		return amount, nil
	}

	tax := amount.Mul(sdkmath.NewInt(types.FeeNumerator)).Quo(sdkmath.NewInt(types.FeeDenominator))
	net := amount.Sub(tax)

	fund, err := k.GetFund(ctx)
	if err != nil {
		return zero, err
	}
	if err := k.settleFund(ctx, &fund); err != nil {
		return zero, err
	}
	fund.Balance = fund.Balance.Add(tax)
	fund.TotalRestocked = fund.TotalRestocked.Add(tax)
	if err := k.setFund(ctx, fund); err != nil {
		return zero, err
	}

	if tax.IsPositive() {
		taxCoins := sdk.NewCoins(sdk.NewCoin(params.Denom, tax))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, types.ModuleName, taxCoins); err != nil {
			return zero, err
		}
	}
	netCoins := sdk.NewCoins(sdk.NewCoin(params.Denom, net))
	if err := k.bankKeeper.SendCoins(ctx, senderAddr, recipientAddr, netCoins); err != nil {
		return zero, err
	}

	sdkCtx, _ := contextNow(ctx)
	emitEventIfPossible(sdkCtx, sdk.NewEvent(
		EventTypeTransferTaxed,
		sdk.NewAttribute(AttributeKeySender, sender),
		sdk.NewAttribute(AttributeKeyRecipient, recipient),
		sdk.NewAttribute(AttributeKeyTax, tax.String()),
		sdk.NewAttribute(AttributeKeyNet, net.String()),
	))

	return net, nil
}
