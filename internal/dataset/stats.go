package dataset

import "github.com/walksafe/seedgen/internal/model"

// AccidentStats summarizes an accident batch for post-generation reporting.
type AccidentStats struct {
	Total      int `json:"total"`
	Real       int `json:"real"`
	Synthetic  int `json:"synthetic"`
	Pedestrian int `json:"pedestrian"`
	Bicycle    int `json:"bicycle"`
	Severe     int `json:"severe"` // severity >= 0.9
}

// SummarizeAccidents tallies an accident batch.
func SummarizeAccidents(records []model.AccidentRecord) AccidentStats {
	var s AccidentStats
	s.Total = len(records)
	for _, r := range records {
		switch r.Source {
		case model.SourceReal:
			s.Real++
		case model.SourceSynthetic:
			s.Synthetic++
		}
		if r.PedestrianInvolved {
			s.Pedestrian++
		}
		if r.BicycleInvolved {
			s.Bicycle++
		}
		if r.Severity >= 0.9 {
			s.Severe++
		}
	}
	return s
}

// CrimeStats summarizes a crime batch.
type CrimeStats struct {
	Total     int `json:"total"`
	Real      int `json:"real"`
	Synthetic int `json:"synthetic"`
	Violent   int `json:"violent"`
	Property  int `json:"property"`
	Night     int `json:"night"`
}

var (
	violentTypes  = map[string]bool{"violent": true, "assault": true, "robbery": true}
	propertyTypes = map[string]bool{"theft": true, "burglary": true}
)

// SummarizeCrimes tallies a crime batch.
func SummarizeCrimes(records []model.CrimeRecord) CrimeStats {
	var s CrimeStats
	s.Total = len(records)
	for _, r := range records {
		switch r.Source {
		case model.SourceReal:
			s.Real++
		case model.SourceSynthetic:
			s.Synthetic++
		}
		if violentTypes[r.CrimeType] {
			s.Violent++
		}
		if propertyTypes[r.CrimeType] {
			s.Property++
		}
		if r.TimeCategory == "night" {
			s.Night++
		}
	}
	return s
}
