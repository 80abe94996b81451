package keeper

// Event type constants
const (
	EventTypeOrderCreated     = "order_created"
	EventTypeOrderCompleted   = "order_completed"
	EventTypeOrderCancelled   = "order_cancelled"
	EventTypeEmergencyUnstake = "emergency_unstake"
	EventTypeOrderExpanded    = "order_expanded"
	EventTypeProductsClaimed  = "products_claimed"
	EventTypePoolFunded       = "pool_funded"
	EventTypeFundWithdrawn    = "fund_withdrawn"
	EventTypeTransferTaxed    = "transfer_taxed"
	EventTypeLPPairSet        = "lp_pair_set"
	EventTypeModulePaused     = "module_paused"
	EventTypeModuleUnpaused   = "module_unpaused"

	// Attribute keys
	AttributeKeyCreator    = "creator"
	AttributeKeyOrderID    = "order_id"
	AttributeKeyOrderType  = "order_type"
	AttributeKeyAmount     = "amount"
	AttributeKeyReputation = "reputation"
	AttributeKeyYield      = "yield"
	AttributeKeyFee        = "fee"
	AttributeKeyReturned   = "returned"
	AttributeKeyFunder     = "funder"
	AttributeKeySender     = "sender"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyTax        = "tax"
	AttributeKeyNet        = "net"
	AttributeKeyPair       = "pair"
	AttributeKeyAuthority  = "authority"
	AttributeKeyUnlockAt   = "unlock_at_unix"
)
