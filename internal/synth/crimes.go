package synth

import (
	"github.com/walksafe/seedgen/internal/geo"
	"github.com/walksafe/seedgen/internal/model"
	"github.com/walksafe/seedgen/internal/profile"
)

// Crimes generates count tier-biased synthetic crime records. Crime types
// and time-of-day categories are drawn from the tier's restricted sets.
func (s *Synthesizer) Crimes(tier profile.Spec, count int) []model.CrimeRecord {
	records := make([]model.CrimeRecord, 0, count)
	for i := 0; i < count; i++ {
		p := s.placeNear(tier.Clusters)
		records = append(records, model.CrimeRecord{
			ID:           s.recordID("SYNTH_CRIME", tier.Name, i),
			Lat:          p.Lat,
			Lon:          p.Lon,
			Date:         s.recentDate(),
			Time:         s.timeOfDay(),
			CrimeType:    pick(s.rng, tier.CrimeTypes),
			Severity:     s.severityIn(tier.Severity),
			DayOfWeek:    pick(s.rng, daysOfWeek),
			TimeCategory: pick(s.rng, tier.TimeCategories),
			Address:      s.address(),
			Source:       model.SourceSynthetic,
			SafetyLevel:  string(tier.Name),
		})
	}
	return records
}

// BaselineCrimes generates count unbiased crime records.
func (s *Synthesizer) BaselineCrimes(count int) []model.CrimeRecord {
	records := make([]model.CrimeRecord, 0, count)
	for i := 0; i < count; i++ {
		p := geo.RandomPointInDisk(s.rng, s.cfg.Area)
		records = append(records, model.CrimeRecord{
			ID:           s.recordID("REAL_CRIME", "", i),
			Lat:          p.Lat,
			Lon:          p.Lon,
			Date:         s.recentDate(),
			Time:         s.timeOfDay(),
			CrimeType:    pick(s.rng, crimeTypes),
			Severity:     s.severityIn(profile.Band{Min: 0.2, Max: 1.0}),
			DayOfWeek:    pick(s.rng, daysOfWeek),
			TimeCategory: pick(s.rng, timeCategories),
			Address:      s.address(),
			Source:       model.SourceReal,
		})
	}
	return records
}
