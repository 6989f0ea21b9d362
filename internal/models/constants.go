package models

const (
	TrafficLevelNormal   = "Normal"
	TrafficLevelModerate = "Moderate"
	TrafficLevelHigh     = "High"

	SeverityNormal   = 1
	SeverityModerate = 2
	SeverityHigh     = 3

	EventTypePredictionRequested = "prediction_requested"
)

// DaysOfWeek in the order exposed by the API.
var DaysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// IsDayOfWeek reports whether day is one of the supported day names.
func IsDayOfWeek(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// TrafficTier is one band of the severity classification. The same table
// drives computation, the wire payload and the front end, so a level label
// always carries the same color and severity.
type TrafficTier struct {
	MaxPCU   float64 // exclusive upper bound, zero means unbounded
	Level    string
	Color    string
	Severity int
}

// TrafficTiers maps a PCU value to its severity band, lowest first.
var TrafficTiers = []TrafficTier{
	{MaxPCU: 1500, Level: TrafficLevelNormal, Color: "#10B981", Severity: SeverityNormal},
	{MaxPCU: 2500, Level: TrafficLevelModerate, Color: "#F59E0B", Severity: SeverityModerate},
	{Level: TrafficLevelHigh, Color: "#EF4444", Severity: SeverityHigh},
}

// ClassifyTraffic returns the severity band for a PCU value.
func ClassifyTraffic(pcu float64) TrafficTier {
	for _, tier := range TrafficTiers {
		if tier.MaxPCU > 0 && pcu < tier.MaxPCU {
			return tier
		}
	}
	return TrafficTiers[len(TrafficTiers)-1]
}
