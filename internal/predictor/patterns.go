package predictor

// Pattern tables approximating Bangalore commute behaviour. Values are PCU
// (Passenger Car Units) per hour before time-of-day adjustments.

type hourBand struct {
	From       int
	To         int // inclusive
	Multiplier float64
}

var (
	baseTraffic = map[string]float64{
		"silk_board": 2500, // highest congestion corridor
		"kr_puram":   2200,
		"whitefield": 1800,
		"hebbal":     2000,
	}

	defaultBaseTraffic = 1500.0

	// Two commute bulges, a lunch bump and quiet night hours.
	hourBands = []hourBand{
		{From: 8, To: 10, Multiplier: 1.8},  // morning rush
		{From: 17, To: 20, Multiplier: 2.0}, // evening rush
		{From: 12, To: 14, Multiplier: 1.3}, // lunch
		{From: 0, To: 5, Multiplier: 0.3},   // late night, early morning
		{From: 22, To: 23, Multiplier: 0.5}, // late night
	}

	dayFactors = map[string]float64{
		"Friday": 1.15,
		"Monday": 1.1,
	}

	weekendFactor = 0.6

	weekendDays = map[string]bool{
		"Saturday": true,
		"Sunday":   true,
	}
)

func hourMultiplier(hour int) float64 {
	for _, band := range hourBands {
		if hour >= band.From && hour <= band.To {
			return band.Multiplier
		}
	}
	return 1.0
}

func dayFactor(day string) float64 {
	if f, ok := dayFactors[day]; ok {
		return f
	}
	return 1.0
}
