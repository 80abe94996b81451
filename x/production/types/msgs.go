package types

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Msg structs cover address and amount syntax only; economic preconditions
// (balances, caps, lock times) are checked by the keeper under the store
// transaction.

// MsgCreateOrder opens a new time-locked production order.
type MsgCreateOrder struct {
	Creator   string      `json:"creator"`
	Amount    sdkmath.Int `json:"amount"`
	OrderType uint32      `json:"order_type"`
}

func (m MsgCreateOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return fmt.Errorf("invalid creator address: %w", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if m.OrderType >= NumOrderTypes {
		return fmt.Errorf("order type %d out of range", m.OrderType)
	}
	return nil
}

// MsgCompleteOrder closes an unlocked order, returning principal plus yield.
type MsgCompleteOrder struct {
	Creator string `json:"creator"`
	OrderId uint64 `json:"order_id"`
}

func (m MsgCompleteOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return fmt.Errorf("invalid creator address: %w", err)
	}
	return nil
}

// MsgCancelOrder exits an order early with a full principal refund.
type MsgCancelOrder struct {
	Creator string `json:"creator"`
	OrderId uint64 `json:"order_id"`
}

func (m MsgCancelOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return fmt.Errorf("invalid creator address: %w", err)
	}
	return nil
}

// MsgEmergencyUnstake exits an order early, burning a 1.618% fee.
type MsgEmergencyUnstake struct {
	Creator string `json:"creator"`
	OrderId uint64 `json:"order_id"`
}

func (m MsgEmergencyUnstake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return fmt.Errorf("invalid creator address: %w", err)
	}
	return nil
}

// MsgCompoundRewards folds the creator's pending yield into one order.
type MsgCompoundRewards struct {
	Creator string `json:"creator"`
	OrderId uint64 `json:"order_id"`
}

func (m MsgCompoundRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return fmt.Errorf("invalid creator address: %w", err)
	}
	return nil
}

// MsgClaimYield pays out the creator's pending yield.
type MsgClaimYield struct {
	Creator string `json:"creator"`
}

func (m MsgClaimYield) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return fmt.Errorf("invalid creator address: %w", err)
	}
	return nil
}

// MsgFundProductionPool deposits tokens into the production fund.
type MsgFundProductionPool struct {
	Funder string      `json:"funder"`
	Amount sdkmath.Int `json:"amount"`
}

func (m MsgFundProductionPool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Funder); err != nil {
		return fmt.Errorf("invalid funder address: %w", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// MsgEmergencyWithdraw moves tokens out of the tracked fund to the authority.
type MsgEmergencyWithdraw struct {
	Authority string      `json:"authority"`
	Amount    sdkmath.Int `json:"amount"`
}

func (m MsgEmergencyWithdraw) ValidateBasic() error {
	if strings.TrimSpace(m.Authority) == "" {
		return fmt.Errorf("authority cannot be empty")
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// MsgPause halts every mutating production operation.
type MsgPause struct {
	Authority string `json:"authority"`
}

func (m MsgPause) ValidateBasic() error {
	if strings.TrimSpace(m.Authority) == "" {
		return fmt.Errorf("authority cannot be empty")
	}
	return nil
}

// MsgUnpause lifts the pause flag.
type MsgUnpause struct {
	Authority string `json:"authority"`
}

func (m MsgUnpause) ValidateBasic() error {
	if strings.TrimSpace(m.Authority) == "" {
		return fmt.Errorf("authority cannot be empty")
	}
	return nil
}

// MsgSetLPPair designates the liquidity-pair address. Settable exactly once.
type MsgSetLPPair struct {
	Authority string `json:"authority"`
	Address   string `json:"address"`
}

func (m MsgSetLPPair) ValidateBasic() error {
	if strings.TrimSpace(m.Authority) == "" {
		return fmt.Errorf("authority cannot be empty")
	}
	if _, err := sdk.AccAddressFromBech32(m.Address); err != nil {
		return fmt.Errorf("invalid pair address: %w", err)
	}
	return nil
}
