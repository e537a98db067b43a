package pricing

import "avrental/pkg/models"

// JobCosts is the sum of a job's cost lines.
type JobCosts struct {
	ProjectedCents int64 `json:"projected_cents"`
	ActualCents    int64 `json:"actual_cents"`
}

func SumCosts(costs []models.Cost) JobCosts {
	var sum JobCosts
	for _, cost := range costs {
		sum.ProjectedCents += cost.ProjectedCents
		sum.ActualCents += cost.ActualCents
	}
	return sum
}

// Profitability compares a job's revenue with one of its cost totals.
// Margin is in basis points: 2550 means 25.50%.
type Profitability struct {
	RevenueCents      int64 `json:"revenue_cents"`
	CostCents         int64 `json:"cost_cents"`
	ProfitCents       int64 `json:"profit_cents"`
	MarginBasisPoints int64 `json:"margin_basis_points"`
}

func ComputeProfit(revenueCents, costCents int64) Profitability {
	profit := revenueCents - costCents
	return Profitability{
		RevenueCents:      revenueCents,
		CostCents:         costCents,
		ProfitCents:       profit,
		MarginBasisPoints: MarginBasisPoints(profit, revenueCents),
	}
}

// MarginBasisPoints is profit/revenue*10000 rounded half away from zero.
// A job without revenue has no margin and reports 0.
func MarginBasisPoints(profitCents, revenueCents int64) int64 {
	if revenueCents <= 0 {
		return 0
	}
	scaled := profitCents * 10000
	if scaled < 0 {
		return -((-scaled*2 + revenueCents) / (revenueCents * 2))
	}
	return (scaled*2 + revenueCents) / (revenueCents * 2)
}
