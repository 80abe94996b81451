package keeper

import (
	"context"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

// Queries never mutate state; pending amounts are projected against a copy of
// the fund.

// GetActiveOrders returns a copy of the creator's live orders, ids included.
func (k Keeper) GetActiveOrders(ctx context.Context, creator string) ([]types.Order, error) {
	acct, err := k.GetAccount(ctx, creator)
	if err != nil {
		return nil, err
	}
	orders := make([]types.Order, len(acct.Orders))
	copy(orders, acct.Orders)
	return orders, nil
}

// GetContractStats returns the module-wide counters.
func (k Keeper) GetContractStats(ctx context.Context) (types.ContractStats, error) {
	fund, err := k.GetFund(ctx)
	if err != nil {
		return types.ContractStats{}, err
	}
	return types.ContractStats{
		TokensInProduction:  fund.TokensInProduction,
		ActiveCreators:      fund.ActiveCreators,
		FundBalance:         fund.Balance,
		FundTotalReputation: fund.TotalReputation,
		ProductsClaimed:     fund.TotalClaimed,
		ProductsRestocked:   fund.TotalRestocked,
		TotalBurned:         fund.TotalBurned,
	}, nil
}

// GetCreatorStats returns the creator's counters. PendingProducts is live: it
// projects the fund accrual to the current block time without writing.
func (k Keeper) GetCreatorStats(ctx context.Context, creator string) (types.CreatorStats, error) {
	acct, err := k.GetAccount(ctx, creator)
	if err != nil {
		return types.CreatorStats{}, err
	}
	fund, err := k.GetFund(ctx)
	if err != nil {
		return types.CreatorStats{}, err
	}
	if err := k.settleFund(ctx, &fund); err != nil {
		return types.CreatorStats{}, err
	}
	settleAccount(fund, &acct)

	return types.CreatorStats{
		TotalReputation: acct.TotalReputation,
		YieldDebt:       acct.YieldDebt,
		PendingProducts: pendingYield(fund, acct),
		OrderCount:      len(acct.Orders),
		Claimed:         acct.Claimed,
		Restocked:       acct.Restocked,
	}, nil
}

// GetOrderTypeDetails returns the tier table entry for the given index.
func (k Keeper) GetOrderTypeDetails(index uint32) (types.OrderTypeDetails, error) {
	ot, err := types.GetOrderType(index)
	if err != nil {
		return types.OrderTypeDetails{}, err
	}
	return types.OrderTypeDetails{
		LockDurationSecs: int64(ot.LockDuration.Seconds()),
		Multiplier:       ot.ReputationMultiplier,
		Name:             ot.Name,
	}, nil
}
