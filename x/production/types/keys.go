package types

const (
	// ModuleName defines the module name. The production module account holds
	// both staked principal and the production fund used to pay yield.
	ModuleName = "production"

	// StoreKey is the module KV store key.
	StoreKey = ModuleName

	// DefaultDenom is the staking token denomination.
	DefaultDenom = "ucrikz"
)

var (
	// AccountKeyPrefix stores per-creator account records.
	AccountKeyPrefix = []byte{0x01}

	// FundKey stores the single global production fund record.
	FundKey = []byte{0x02}

	// ParamsKey stores module parameters.
	ParamsKey = []byte{0x03}

	// LPPairKey stores the designated liquidity-pair address.
	LPPairKey = []byte{0x04}

	// PausedKey stores the emergency pause flag.
	PausedKey = []byte{0x05}

	// OrderSequenceKey stores the next order id.
	OrderSequenceKey = []byte{0x06}
)
