package strategy

import (
	"errors"

	"github.com/noah-isme/sales-report/internal/report"
)

var (
	// ErrNegativeProfit rejects bonus computation over a loss.
	ErrNegativeProfit = errors.New("profit must not be negative")
	// ErrInvalidRank rejects a rank outside [0, total).
	ErrInvalidRank = errors.New("rank arguments out of range")
)

// RankBonus pays a share of profit keyed off the seller's profit rank: 15%
// for the leader, 10% for second and third place, nothing for last place and
// 5% for everyone in between. With a single seller the leader rule wins over
// the last-place rule.
type RankBonus struct{}

// ComputeBonus implements report.BonusStrategy.
func (RankBonus) ComputeBonus(rank, total int, seller report.SellerStats) (float64, error) {
	if seller.Profit < 0 {
		return 0, ErrNegativeProfit
	}
	if rank < 0 || total <= 0 || rank >= total {
		return 0, ErrInvalidRank
	}
	switch {
	case rank == 0:
		return seller.Profit * 0.15, nil
	case rank == 1 || rank == 2:
		return seller.Profit * 0.10, nil
	case rank == total-1:
		return 0, nil
	default:
		return seller.Profit * 0.05, nil
	}
}
