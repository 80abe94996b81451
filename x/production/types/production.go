package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// SecondsPerYear is the accrual year used by the APR formula (365 days).
const SecondsPerYear = 365 * 24 * 60 * 60

// Order is a single time-locked stake. Reputation is a snapshot of
// amount * tier multiplier taken at creation or compounding. Duration is
// copied from the tier at creation and is immune to later tier changes.
//
// Orders are stored in a dense per-creator slice with swap-and-pop removal;
// Id is the durable handle callers hold across removals, since positions are
// not stable.
type Order struct {
	Id            uint64      `json:"id"`
	Amount        sdkmath.Int `json:"amount"`
	Reputation    sdkmath.Int `json:"reputation"`
	OrderType     uint32      `json:"order_type"`
	StartTimeUnix int64       `json:"start_time_unix"`
	DurationSecs  int64       `json:"duration_secs"`
}

// UnlockTimeUnix returns the unix time at which the order may be completed.
func (o Order) UnlockTimeUnix() int64 {
	return o.StartTimeUnix + o.DurationSecs
}

// Validate checks structural consistency of a single order.
func (o Order) Validate() error {
	if o.Amount.IsNil() || !o.Amount.IsPositive() {
		return fmt.Errorf("order %d: amount must be positive", o.Id)
	}
	if o.Reputation.IsNil() || o.Reputation.IsNegative() {
		return fmt.Errorf("order %d: reputation must be non-negative", o.Id)
	}
	if o.OrderType >= NumOrderTypes {
		return fmt.Errorf("order %d: order type %d out of range", o.Id, o.OrderType)
	}
	if o.DurationSecs <= 0 {
		return fmt.Errorf("order %d: duration must be positive", o.Id)
	}
	return nil
}

// CreatorAccount is the per-address staking record. It is created on the
// first order and reverts to an empty state when the order count reaches
// zero; lifetime counters survive.
//
// YieldDebt is the fund accrual index this account was last settled up to.
// PendingBuffer holds yield that has been settled to the account but not yet
// claimed, so reputation changes never lose or double-pay accrued yield.
type CreatorAccount struct {
	Address         string      `json:"address"`
	Orders          []Order     `json:"orders"`
	TotalReputation sdkmath.Int `json:"total_reputation"`
	YieldDebt       sdkmath.Int `json:"yield_debt"`
	PendingBuffer   sdkmath.Int `json:"pending_buffer"`
	Claimed         sdkmath.Int `json:"claimed"`
	Restocked       sdkmath.Int `json:"restocked"`
}

// NewCreatorAccount returns an empty account with all amounts zeroed.
func NewCreatorAccount(address string) CreatorAccount {
	return CreatorAccount{
		Address:         address,
		Orders:          []Order{},
		TotalReputation: sdkmath.ZeroInt(),
		YieldDebt:       sdkmath.ZeroInt(),
		PendingBuffer:   sdkmath.ZeroInt(),
		Claimed:         sdkmath.ZeroInt(),
		Restocked:       sdkmath.ZeroInt(),
	}
}

// FindOrder returns the position of the order with the given id, or -1.
func (a CreatorAccount) FindOrder(orderID uint64) int {
	for i, o := range a.Orders {
		if o.Id == orderID {
			return i
		}
	}
	return -1
}

// Validate checks internal consistency: per-order validity and that
// TotalReputation equals the sum of live order reputations.
func (a CreatorAccount) Validate() error {
	if a.Address == "" {
		return fmt.Errorf("creator account missing address")
	}
	sum := sdkmath.ZeroInt()
	seen := make(map[uint64]bool, len(a.Orders))
	for _, o := range a.Orders {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("account %s: %w", a.Address, err)
		}
		if seen[o.Id] {
			return fmt.Errorf("account %s: duplicate order id %d", a.Address, o.Id)
		}
		seen[o.Id] = true
		sum = sum.Add(o.Reputation)
	}
	if a.TotalReputation.IsNil() || !a.TotalReputation.Equal(sum) {
		return fmt.Errorf("account %s: total reputation %s != sum of orders %s", a.Address, a.TotalReputation, sum)
	}
	if a.PendingBuffer.IsNil() || a.PendingBuffer.IsNegative() {
		return fmt.Errorf("account %s: pending buffer must be non-negative", a.Address)
	}
	if a.YieldDebt.IsNil() || a.YieldDebt.IsNegative() {
		return fmt.Errorf("account %s: yield debt must be non-negative", a.Address)
	}
	return nil
}

// FundState is the single global production fund record: the drawdown pool
// yield is paid out of, plus the accrual pointer and module-wide counters.
// Yield is never minted on demand; it only ever draws down Balance.
type FundState struct {
	Balance            sdkmath.Int `json:"balance"`
	TotalReputation    sdkmath.Int `json:"total_reputation"`
	AccrualIndex       sdkmath.Int `json:"accrual_index"`
	LastUpdateUnix     int64       `json:"last_update_unix"`
	TokensInProduction sdkmath.Int `json:"tokens_in_production"`
	ActiveCreators     uint64      `json:"active_creators"`
	TotalClaimed       sdkmath.Int `json:"total_claimed"`
	TotalRestocked     sdkmath.Int `json:"total_restocked"`
	TotalBurned        sdkmath.Int `json:"total_burned"`
}

// NewFundState returns an empty fund anchored at the given time.
func NewFundState(nowUnix int64) FundState {
	return FundState{
		Balance:            sdkmath.ZeroInt(),
		TotalReputation:    sdkmath.ZeroInt(),
		AccrualIndex:       sdkmath.ZeroInt(),
		LastUpdateUnix:     nowUnix,
		TokensInProduction: sdkmath.ZeroInt(),
		ActiveCreators:     0,
		TotalClaimed:       sdkmath.ZeroInt(),
		TotalRestocked:     sdkmath.ZeroInt(),
		TotalBurned:        sdkmath.ZeroInt(),
	}
}

// Validate rejects negative balances and counters.
func (f FundState) Validate() error {
	for name, v := range map[string]sdkmath.Int{
		"balance":              f.Balance,
		"total_reputation":     f.TotalReputation,
		"accrual_index":        f.AccrualIndex,
		"tokens_in_production": f.TokensInProduction,
		"total_claimed":        f.TotalClaimed,
		"total_restocked":      f.TotalRestocked,
		"total_burned":         f.TotalBurned,
	} {
		if v.IsNil() || v.IsNegative() {
			return fmt.Errorf("fund %s must be non-negative", name)
		}
	}
	return nil
}

// ContractStats is the module-wide read surface.
type ContractStats struct {
	TokensInProduction  sdkmath.Int `json:"tokens_in_production"`
	ActiveCreators      uint64      `json:"active_creators"`
	FundBalance         sdkmath.Int `json:"fund_balance"`
	FundTotalReputation sdkmath.Int `json:"fund_total_reputation"`
	ProductsClaimed     sdkmath.Int `json:"products_claimed"`
	ProductsRestocked   sdkmath.Int `json:"products_restocked"`
	TotalBurned         sdkmath.Int `json:"total_burned"`
}

// CreatorStats is the per-creator read surface. PendingProducts includes
// accrual that has not yet been settled to the account.
type CreatorStats struct {
	TotalReputation sdkmath.Int `json:"total_reputation"`
	YieldDebt       sdkmath.Int `json:"yield_debt"`
	PendingProducts sdkmath.Int `json:"pending_products"`
	OrderCount      int         `json:"order_count"`
	Claimed         sdkmath.Int `json:"claimed"`
	Restocked       sdkmath.Int `json:"restocked"`
}

// OrderTypeDetails is the tier read surface.
type OrderTypeDetails struct {
	LockDurationSecs int64       `json:"lock_duration_secs"`
	Multiplier       sdkmath.Int `json:"multiplier"`
	Name             string      `json:"name"`
}
