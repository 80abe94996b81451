package types

import (
	"time"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// NumOrderTypes is the number of production tiers. The table below is fixed
// at deployment: durations and multipliers are never mutated.
const NumOrderTypes = 7

// OrderType is one immutable production tier: a lock duration and a
// WAD-scaled reputation multiplier following a Fibonacci-inspired curve.
type OrderType struct {
	LockDuration         time.Duration
	ReputationMultiplier sdkmath.Int
	Name                 string
}

var orderTypes = [NumOrderTypes]OrderType{
	{LockDuration: 5 * 24 * time.Hour, ReputationMultiplier: sdkmath.NewInt(618_000_000_000_000_000), Name: "Scout Run"},
	{LockDuration: 13 * 24 * time.Hour, ReputationMultiplier: sdkmath.NewInt(787_000_000_000_000_000), Name: "Sprint Run"},
	{LockDuration: 34 * 24 * time.Hour, ReputationMultiplier: sdkmath.NewInt(1_001_000_000_000_000_000), Name: "Standard Run"},
	{LockDuration: 89 * 24 * time.Hour, ReputationMultiplier: sdkmath.NewInt(1_273_000_000_000_000_000), Name: "Extended Run"},
	{LockDuration: 233 * 24 * time.Hour, ReputationMultiplier: sdkmath.NewInt(1_619_000_000_000_000_000), Name: "Season Run"},
	{LockDuration: 610 * 24 * time.Hour, ReputationMultiplier: sdkmath.NewInt(2_059_000_000_000_000_000), Name: "Flagship Run"},
	{LockDuration: 1597 * 24 * time.Hour, ReputationMultiplier: sdkmath.NewInt(2_618_000_000_000_000_000), Name: "Legacy Run"},
}

// GetOrderType returns the tier at the given index. Pure lookup, safe from
// any context including queries.
func GetOrderType(index uint32) (OrderType, error) {
	if index >= NumOrderTypes {
		return OrderType{}, errorsmod.Wrapf(ErrInvalidOrderType, "index %d out of range [0,%d]", index, NumOrderTypes-1)
	}
	return orderTypes[index], nil
}

// CalculateReputation returns amount * multiplier / WAD for the given tier.
// The result is snapshotted onto orders at creation and compounding; it is
// never recomputed from later tier state.
func CalculateReputation(amount sdkmath.Int, index uint32) (sdkmath.Int, error) {
	ot, err := GetOrderType(index)
	if err != nil {
		return sdkmath.ZeroInt(), err
	}
	return MulWad(amount, ot.ReputationMultiplier), nil
}

// GetLockDuration returns the tier's lock duration.
func GetLockDuration(index uint32) (time.Duration, error) {
	ot, err := GetOrderType(index)
	if err != nil {
		return 0, err
	}
	return ot.LockDuration, nil
}

// GetTierName returns the tier's display name.
func GetTierName(index uint32) (string, error) {
	ot, err := GetOrderType(index)
	if err != nil {
		return "", err
	}
	return ot.Name, nil
}
