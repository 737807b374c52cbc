package synth

import (
	"github.com/walksafe/seedgen/internal/geo"
	"github.com/walksafe/seedgen/internal/model"
	"github.com/walksafe/seedgen/internal/profile"
)

// Accidents generates count tier-biased synthetic accident records.
func (s *Synthesizer) Accidents(tier profile.Spec, count int) []model.AccidentRecord {
	records := make([]model.AccidentRecord, 0, count)
	for i := 0; i < count; i++ {
		p := s.placeNear(tier.Clusters)
		records = append(records, model.AccidentRecord{
			ID:                 s.recordID("SYNTH_ACC", tier.Name, i),
			Lat:                p.Lat,
			Lon:                p.Lon,
			Date:               s.recentDate(),
			Time:               s.timeOfDay(),
			Severity:           s.severityIn(tier.Severity),
			PedestrianInvolved: s.chance(tier.PedestrianProb),
			BicycleInvolved:    s.chance(tier.BicycleProb),
			DayOfWeek:          pick(s.rng, daysOfWeek),
			Weather:            pick(s.rng, weathers),
			RoadType:           tier.RoadType,
			SpeedLimit:         pick(s.rng, tier.SpeedLimits),
			Intersection:       s.chance(tier.IntersectionProb),
			LightCondition:     pick(s.rng, lightConditions),
			Address:            s.address(),
			Source:             model.SourceSynthetic,
			SafetyLevel:        string(tier.Name),
		})
	}
	return records
}

// BaselineAccidents generates count unbiased records standing in for a real
// historical feed: uniform disk placement and unweighted categorical draws.
func (s *Synthesizer) BaselineAccidents(count int) []model.AccidentRecord {
	records := make([]model.AccidentRecord, 0, count)
	for i := 0; i < count; i++ {
		p := geo.RandomPointInDisk(s.rng, s.cfg.Area)
		records = append(records, model.AccidentRecord{
			ID:                 s.recordID("REAL_ACC", "", i),
			Lat:                p.Lat,
			Lon:                p.Lon,
			Date:               s.recentDate(),
			Time:               s.timeOfDay(),
			Severity:           s.severityIn(profile.Band{Min: 0.3, Max: 1.0}),
			PedestrianInvolved: s.chance(0.15),
			BicycleInvolved:    s.chance(0.08),
			DayOfWeek:          pick(s.rng, daysOfWeek),
			Weather:            pick(s.rng, weathers),
			RoadType:           pick(s.rng, roadTypes),
			SpeedLimit:         pick(s.rng, speedLimits),
			Intersection:       s.chance(0.35),
			LightCondition:     pick(s.rng, lightConditions),
			Address:            s.address(),
			Source:             model.SourceReal,
		})
	}
	return records
}
