package story

// assistPoints converts an assist total into roll points: divide by the
// source's divisor rounding up, clamp to the cap. Cap 0 disables the source,
// base amount included. The ceiling intentionally favors the acting party
// when contributions split unevenly across assistants.
func assistPoints(assistTotal int, cost PointCost, base int) int {
	if cost.Cap <= 0 {
		return 0
	}
	divisor := cost.Divisor
	if divisor < 1 {
		divisor = 1
	}
	points := ceilDiv(assistTotal, divisor)
	if points > cost.Cap {
		points = cost.Cap
	}
	return base + points
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

// RollTotal is the full outcome score: the owner's weighted roll plus the flat
// modifier, the capped assist-roll pool, then each resource source. The
// owner's own resource amounts ride along at face value (no divisor) whenever
// that source is enabled; effort points never feed the roll.
func (a *Action) RollTotal(ownerRoll int, assistRolls []int) int {
	base := ownerRoll + a.Tuning.AdditionalModifier

	rollSum := 0
	for _, r := range assistRolls {
		rollSum += r
	}
	base += assistPoints(rollSum, a.Tuning.Assists, 0)

	base += assistPoints(a.assistSpent(ResourceSilver), a.Tuning.Silver, a.Pool.Silver)
	base += assistPoints(a.assistSpent(ResourceEconomic), a.Tuning.Economic, a.Pool.Economic)
	base += assistPoints(a.assistSpent(ResourceSocial), a.Tuning.Social, a.Pool.Social)
	base += assistPoints(a.assistSpent(ResourceMilitary), a.Tuning.Military, a.Pool.Military)
	return base
}

func (a *Action) assistSpent(t ResourceType) int {
	total := 0
	for i := range a.Assists {
		total += a.Assists[i].Pool.Amount(t)
	}
	return total
}
