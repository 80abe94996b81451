package keeper

import (
	"context"
	"fmt"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

// InitGenesis writes the full genesis state to the store.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return fmt.Errorf("invalid %s genesis: %w", types.ModuleName, err)
	}
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}
	if err := k.setFund(ctx, gs.Fund); err != nil {
		return err
	}
	for _, acct := range gs.Accounts {
		if err := k.setAccount(ctx, acct); err != nil {
			return err
		}
	}
	if gs.LPPairAddress != "" {
		if err := k.LPPair.Set(ctx, gs.LPPairAddress); err != nil {
			return err
		}
	}
	if err := k.Paused.Set(ctx, gs.Paused); err != nil {
		return err
	}
	return k.OrderSequence.Set(ctx, gs.OrderSequence)
}

// ExportGenesis reads the full module state back out of the store.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	fund, err := k.GetFund(ctx)
	if err != nil {
		return nil, err
	}

	var accounts []types.CreatorAccount
	err = k.Accounts.Walk(ctx, nil, func(addr string, _ string) (bool, error) {
		acct, err := k.GetAccount(ctx, addr)
		if err != nil {
			return true, err
		}
		accounts = append(accounts, acct)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	pair, _ := k.GetLPPair(ctx)
	seq, err := k.OrderSequence.Get(ctx)
	if err != nil {
		seq = 0
	}

	return &types.GenesisState{
		Params:        params,
		Fund:          fund,
		Accounts:      accounts,
		LPPairAddress: pair,
		Paused:        k.IsPaused(ctx),
		OrderSequence: seq,
	}, nil
}
