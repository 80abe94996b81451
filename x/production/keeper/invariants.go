package keeper

import (
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

// RegisterInvariants registers all module invariants with the invariant registry.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reputation-consistency", ReputationConsistencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "production-consistency", ProductionConsistencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "fund-non-negative", FundNonNegativeInvariant(k))
	ir.RegisterRoute(types.ModuleName, "active-creators", ActiveCreatorsInvariant(k))
}

// AllInvariants runs all invariants of the production module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		invariants := []sdk.Invariant{
			ReputationConsistencyInvariant(k),
			ProductionConsistencyInvariant(k),
			FundNonNegativeInvariant(k),
			ActiveCreatorsInvariant(k),
		}
		for _, inv := range invariants {
			if msg, broken := inv(ctx); broken {
				return msg, broken
			}
		}
		return "", false
	}
}

// ReputationConsistencyInvariant checks that the fund's total reputation
// equals the sum of every live order's reputation, and that each account's
// total equals the sum over its own orders.
func ReputationConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false

		total := sdkmath.ZeroInt()
		_ = k.Accounts.Walk(ctx, nil, func(addr string, raw string) (bool, error) {
			var acct types.CreatorAccount
			if err := json.Unmarshal([]byte(raw), &acct); err != nil {
				msg += fmt.Sprintf("INVARIANT BROKEN: account %s undecodable: %v\n", addr, err)
				broken = true
				return false, nil
			}
			sum := sdkmath.ZeroInt()
			for _, o := range acct.Orders {
				sum = sum.Add(o.Reputation)
			}
			if !acct.TotalReputation.Equal(sum) {
				msg += fmt.Sprintf("INVARIANT BROKEN: account %s reputation %s != order sum %s\n",
					addr, acct.TotalReputation, sum)
				broken = true
			}
			total = total.Add(sum)
			return false, nil
		})

		fund, err := k.GetFund(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reputation-consistency", err.Error()), true
		}
		if !fund.TotalReputation.Equal(total) {
			msg += fmt.Sprintf("INVARIANT BROKEN: fund reputation %s != sum over orders %s\n",
				fund.TotalReputation, total)
			broken = true
		}

		if broken {
			return sdk.FormatInvariant(types.ModuleName, "reputation-consistency", msg), true
		}
		return "", false
	}
}

// ProductionConsistencyInvariant checks that the tokens-in-production counter
// equals the sum of every live order's principal.
func ProductionConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		total := sdkmath.ZeroInt()
		_ = k.Accounts.Walk(ctx, nil, func(_ string, raw string) (bool, error) {
			var acct types.CreatorAccount
			if err := json.Unmarshal([]byte(raw), &acct); err != nil {
				return false, nil
			}
			for _, o := range acct.Orders {
				total = total.Add(o.Amount)
			}
			return false, nil
		})

		fund, err := k.GetFund(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "production-consistency", err.Error()), true
		}
		if !fund.TokensInProduction.Equal(total) {
			msg := fmt.Sprintf("INVARIANT BROKEN: tokens in production %s != sum over orders %s\n",
				fund.TokensInProduction, total)
			return sdk.FormatInvariant(types.ModuleName, "production-consistency", msg), true
		}
		return "", false
	}
}

// FundNonNegativeInvariant checks that no fund amount has gone negative.
func FundNonNegativeInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		fund, err := k.GetFund(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "fund-non-negative", err.Error()), true
		}
		if err := fund.Validate(); err != nil {
			msg := fmt.Sprintf("INVARIANT BROKEN: %v\n", err)
			return sdk.FormatInvariant(types.ModuleName, "fund-non-negative", msg), true
		}
		return "", false
	}
}

// ActiveCreatorsInvariant checks the active-creators counter against the
// number of accounts holding at least one live order.
func ActiveCreatorsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		active := uint64(0)
		_ = k.Accounts.Walk(ctx, nil, func(_ string, raw string) (bool, error) {
			var acct types.CreatorAccount
			if err := json.Unmarshal([]byte(raw), &acct); err != nil {
				return false, nil
			}
			if len(acct.Orders) > 0 {
				active++
			}
			return false, nil
		})

		fund, err := k.GetFund(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "active-creators", err.Error()), true
		}
		if fund.ActiveCreators != active {
			msg := fmt.Sprintf("INVARIANT BROKEN: active creators %d != accounts with orders %d\n",
				fund.ActiveCreators, active)
			return sdk.FormatInvariant(types.ModuleName, "active-creators", msg), true
		}
		return "", false
	}
}
