package story

const (
	AttendingLimit = 5

	// Paid once when an assistant first writes a story. Zero today, kept as
	// the single knob if assists ever cost effort up front.
	InitialAssistAPCost = 0

	DefaultSilverDivisor   = 100000
	DefaultMilitaryDivisor = 1000
	DefaultEconomicDivisor = 1000
	DefaultSocialDivisor   = 1000
	DefaultAPDivisor       = 100
	DefaultAssistDivisor   = 3
	DefaultAssistCap       = 300
)

// DefaultRollTuning mirrors a freshly created action: every resource source
// disabled (cap 0) until staff opens it, assists enabled at the stock
// divisor/cap.
func DefaultRollTuning() RollTuning {
	return RollTuning{
		Silver:       PointCost{Divisor: DefaultSilverDivisor},
		Military:     PointCost{Divisor: DefaultMilitaryDivisor},
		Economic:     PointCost{Divisor: DefaultEconomicDivisor},
		Social:       PointCost{Divisor: DefaultSocialDivisor},
		ActionPoints: PointCost{Divisor: DefaultAPDivisor},
		Assists:      PointCost{Divisor: DefaultAssistDivisor, Cap: DefaultAssistCap},
	}
}
