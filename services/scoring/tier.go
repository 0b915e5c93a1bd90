package scoring

// Tier is a named bracket of cumulative points conferring an insurance
// discount percentage. Ranges are contiguous and exhaustive; MaxPoints < 0
// marks the open-ended top bracket.
type Tier struct {
	Name            string `json:"name"`
	MinPoints       int    `json:"min_points"`
	MaxPoints       int    `json:"max_points"`
	DiscountPercent int    `json:"discount_percent"`
}

var tiers = []Tier{
	{Name: "Starter", MinPoints: 0, MaxPoints: 99, DiscountPercent: 0},
	{Name: "Bronze", MinPoints: 100, MaxPoints: 249, DiscountPercent: 5},
	{Name: "Silver", MinPoints: 250, MaxPoints: 499, DiscountPercent: 8},
	{Name: "Gold", MinPoints: 500, MaxPoints: 999, DiscountPercent: 10},
	{Name: "Platinum", MinPoints: 1000, MaxPoints: 1999, DiscountPercent: 15},
	{Name: "Diamond", MinPoints: 2000, MaxPoints: -1, DiscountPercent: 20},
}

// Tiers returns the tier table in ascending order.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// ResolveTier returns the tier whose range contains totalPoints. The ranges
// are exhaustive by construction, so the lowest-tier default is unreachable
// in practice.
func ResolveTier(totalPoints int) Tier {
	for _, t := range tiers {
		if totalPoints >= t.MinPoints && (t.MaxPoints < 0 || totalPoints <= t.MaxPoints) {
			return t
		}
	}
	return tiers[0]
}
