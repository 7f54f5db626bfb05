package performance

// Band is an accuracy bucket used to colour topic charts.
type Band struct {
	Name  string
	Color string
}

var (
	BandExceptional  = Band{Name: "exceptional", Color: "#059669"}
	BandHigh         = Band{Name: "high", Color: "#10b981"}
	BandAboveAverage = Band{Name: "above_average", Color: "#a3e635"}
	BandMedium       = Band{Name: "medium", Color: "#f59e0b"}
	BandLow          = Band{Name: "low", Color: "#ef4444"}
)

// BandFor maps an accuracy percentage to its band. Thresholds are inclusive
// lower bounds: 90, 75, 60, 40.
func BandFor(accuracy float64) Band {
	switch {
	case accuracy >= 90:
		return BandExceptional
	case accuracy >= 75:
		return BandHigh
	case accuracy >= 60:
		return BandAboveAverage
	case accuracy >= 40:
		return BandMedium
	default:
		return BandLow
	}
}
