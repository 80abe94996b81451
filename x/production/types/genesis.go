package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// GenesisState is the full persisted state of the production module.
type GenesisState struct {
	Params        Params           `json:"params"`
	Fund          FundState        `json:"fund"`
	Accounts      []CreatorAccount `json:"accounts"`
	LPPairAddress string           `json:"lp_pair_address,omitempty"`
	Paused        bool             `json:"paused"`
	OrderSequence uint64           `json:"order_sequence"`
}

// DefaultGenesis returns an empty fund with default params.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		Fund:          NewFundState(0),
		Accounts:      []CreatorAccount{},
		LPPairAddress: "",
		Paused:        false,
		OrderSequence: 0,
	}
}

// Validate checks the genesis state for internal consistency: valid params,
// non-negative fund, per-account consistency, the order cap, and that the
// fund's aggregate counters equal the sums over all live orders.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if err := gs.Fund.Validate(); err != nil {
		return fmt.Errorf("invalid fund: %w", err)
	}

	totalReputation := sdkmath.ZeroInt()
	totalStaked := sdkmath.ZeroInt()
	active := uint64(0)
	seen := make(map[string]bool, len(gs.Accounts))
	for i, acct := range gs.Accounts {
		if err := acct.Validate(); err != nil {
			return fmt.Errorf("invalid account at index %d: %w", i, err)
		}
		if seen[acct.Address] {
			return fmt.Errorf("duplicate account %s", acct.Address)
		}
		seen[acct.Address] = true
		if uint32(len(acct.Orders)) > gs.Params.MaxOrdersPerCreator {
			return fmt.Errorf("account %s exceeds order cap %d", acct.Address, gs.Params.MaxOrdersPerCreator)
		}
		for _, o := range acct.Orders {
			if o.Id >= gs.OrderSequence {
				return fmt.Errorf("account %s: order id %d not below sequence %d", acct.Address, o.Id, gs.OrderSequence)
			}
			totalStaked = totalStaked.Add(o.Amount)
		}
		totalReputation = totalReputation.Add(acct.TotalReputation)
		if len(acct.Orders) > 0 {
			active++
		}
	}

	if !gs.Fund.TotalReputation.Equal(totalReputation) {
		return fmt.Errorf("fund total reputation %s != sum over accounts %s", gs.Fund.TotalReputation, totalReputation)
	}
	if !gs.Fund.TokensInProduction.Equal(totalStaked) {
		return fmt.Errorf("tokens in production %s != sum over orders %s", gs.Fund.TokensInProduction, totalStaked)
	}
	if gs.Fund.ActiveCreators != active {
		return fmt.Errorf("active creators %d != accounts with live orders %d", gs.Fund.ActiveCreators, active)
	}
	return nil
}
