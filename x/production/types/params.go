package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Tax and emergency-exit fee ratio: exactly 1.618% = 1618 / 100000.
const (
	FeeNumerator   int64 = 1618
	FeeDenominator int64 = 100000
)

// Params holds the module's economic parameters.
type Params struct {
	// Denom is the staking token denomination.
	Denom string `json:"denom"`

	// MinOrderAmount is the smallest principal accepted by CreateOrder.
	MinOrderAmount sdkmath.Int `json:"min_order_amount"`

	// MinFundAmount is the smallest deposit accepted by FundProductionPool.
	MinFundAmount sdkmath.Int `json:"min_fund_amount"`

	// MaxOrdersPerCreator caps the per-account order list.
	MaxOrdersPerCreator uint32 `json:"max_orders_per_creator"`

	// BaseAPRWad is the annualized accrual rate as a WAD fraction
	// (default 6.182% = 0.06182 * 10^18).
	BaseAPRWad sdkmath.Int `json:"base_apr_wad"`
}

// DefaultParams returns production defaults.
func DefaultParams() Params {
	return Params{
		Denom:               DefaultDenom,
		MinOrderAmount:      sdkmath.NewInt(1_000_000), // 1 CRIKZ at 6 decimals
		MinFundAmount:       sdkmath.NewInt(1_000_000),
		MaxOrdersPerCreator: 50,
		BaseAPRWad:          sdkmath.NewInt(61_820_000_000_000_000),
	}
}

// Validate performs basic parameter validation.
func (p Params) Validate() error {
	if p.Denom == "" {
		return fmt.Errorf("denom cannot be empty")
	}
	if p.MinOrderAmount.IsNil() || !p.MinOrderAmount.IsPositive() {
		return fmt.Errorf("min_order_amount must be positive")
	}
	if p.MinFundAmount.IsNil() || !p.MinFundAmount.IsPositive() {
		return fmt.Errorf("min_fund_amount must be positive")
	}
	if p.MaxOrdersPerCreator == 0 {
		return fmt.Errorf("max_orders_per_creator must be positive")
	}
	if p.BaseAPRWad.IsNil() || !p.BaseAPRWad.IsPositive() {
		return fmt.Errorf("base_apr_wad must be positive")
	}
	if p.BaseAPRWad.GTE(WadScale) {
		return fmt.Errorf("base_apr_wad must be below 100%%")
	}
	return nil
}
