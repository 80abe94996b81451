package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/Crikz-Staking/Crikz-sub001/x/production/types"
)

// ---------------------------------------------------------------------------
// Production Fund / Yield Distributor
// ---------------------------------------------------------------------------
// The fund is a drawdown pool: yield is paid out of FundState.Balance, which
// is replenished by FundProductionPool deposits and the transfer tax. Nothing
// is ever minted on demand.
//
// Distribution uses a pull-based accumulator. The fund carries a WAD-scaled
// accrual index (cumulative yield per reputation unit); each account records
// the index value it was last settled up to (YieldDebt). An account's newly
// accrued yield is reputation * (index - debt) / WAD, moved into its
// PendingBuffer whenever its reputation is about to change so nothing is
// lost or paid twice.
//
// All arithmetic is sdkmath.Int, multiplication before division, truncating.
// ---------------------------------------------------------------------------

// settleFund advances the accrual index for the time elapsed since the last
// update:
//
//	totalYield = min(balance, balance * APR / WAD * elapsed / secondsPerYear)
//	index     += totalYield * WAD / totalReputation
//
// The min clamp guarantees the fund can never be overdrawn, even under
// pathological elapsed-time inputs.
func (k Keeper) settleFund(ctx context.Context, fund *types.FundState) error {
	_, now := contextNow(ctx)
	nowUnix := now.Unix()

	elapsed := nowUnix - fund.LastUpdateUnix
	if elapsed <= 0 {
		return nil
	}
	fund.LastUpdateUnix = nowUnix

	if !fund.TotalReputation.IsPositive() || !fund.Balance.IsPositive() {
		return nil
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	accrued := fund.Balance.
		Mul(params.BaseAPRWad).
		Mul(sdkmath.NewInt(elapsed)).
		Quo(types.WadScale).
		Quo(sdkmath.NewInt(types.SecondsPerYear))
	totalYield := types.MinInt(fund.Balance, accrued)
	if !totalYield.IsPositive() {
		return nil
	}

	fund.AccrualIndex = fund.AccrualIndex.Add(types.DivWad(totalYield, fund.TotalReputation))
	return nil
}

// settleAccount moves the account's newly accrued yield into its pending
// buffer and advances its debt to the current index. Must be called before
// any change to the account's reputation.
func settleAccount(fund types.FundState, acct *types.CreatorAccount) {
	if acct.TotalReputation.IsPositive() {
		accrued := types.MulWad(acct.TotalReputation, fund.AccrualIndex.Sub(acct.YieldDebt))
		if accrued.IsPositive() {
			acct.PendingBuffer = acct.PendingBuffer.Add(accrued)
		}
	}
	acct.YieldDebt = fund.AccrualIndex
}

// pendingYield returns the account's claimable yield assuming fund and
// account are already settled. The payout is hard-capped by the fund balance
// at payout time.
func pendingYield(fund types.FundState, acct types.CreatorAccount) sdkmath.Int {
	return types.MinInt(acct.PendingBuffer, fund.Balance)
}

// payoutFromFund debits an already-capped payout from the fund and the
// account buffer and advances the lifetime claim counters.
func payoutFromFund(fund *types.FundState, acct *types.CreatorAccount, amount sdkmath.Int) {
	if !amount.IsPositive() {
		return
	}
	fund.Balance = fund.Balance.Sub(amount)
	fund.TotalClaimed = fund.TotalClaimed.Add(amount)
	acct.PendingBuffer = acct.PendingBuffer.Sub(amount)
	acct.Claimed = acct.Claimed.Add(amount)
}
