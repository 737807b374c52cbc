package dataset

import (
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/walksafe/seedgen/internal/model"
)

// combinedTimeLayout parses the concatenated date and time columns.
const combinedTimeLayout = "2006-01-02 15:04"

// Combine maps both record kinds into the shared wide schema and sorts the
// result most-recent first. Rows with an unparseable date+time sort last; a
// warning is logged per offending row instead of rejecting the batch.
func Combine(accidents []model.AccidentRecord, crimes []model.CrimeRecord) []model.CombinedRecord {
	rows := make([]model.CombinedRecord, 0, len(accidents)+len(crimes))

	for _, a := range accidents {
		rows = append(rows, model.CombinedRecord{
			Type:           model.CombinedAccident,
			ID:             a.ID,
			Lat:            a.Lat,
			Lon:            a.Lon,
			Date:           a.Date,
			Time:           a.Time,
			Severity:       a.Severity,
			Description:    accidentDescription(a),
			Category:       accidentCategory(a),
			DayOfWeek:      a.DayOfWeek,
			Weather:        a.Weather,
			RoadType:       a.RoadType,
			SpeedLimit:     strconv.Itoa(a.SpeedLimit),
			Intersection:   FormatBool(a.Intersection),
			LightCondition: a.LightCondition,
			Address:        a.Address,
			Source:         a.Source,
		})
	}

	for _, c := range crimes {
		rows = append(rows, model.CombinedRecord{
			Type:        model.CombinedCrime,
			ID:          c.ID,
			Lat:         c.Lat,
			Lon:         c.Lon,
			Date:        c.Date,
			Time:        c.Time,
			Severity:    c.Severity,
			Description: c.CrimeType + " crime",
			Category:    c.CrimeType,
			DayOfWeek:   c.DayOfWeek,
			Address:     c.Address,
			Source:      c.Source,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return sortKey(rows[i]).After(sortKey(rows[j]))
	})

	return rows
}

// sortKey parses a row's date+time. Failures return the zero time, which
// sorts last under the descending comparator.
func sortKey(r model.CombinedRecord) time.Time {
	ts, err := time.Parse(combinedTimeLayout, r.Date+" "+r.Time)
	if err != nil {
		zap.L().Warn("combined sort: unparseable date/time, sorting last",
			zap.String("id", r.ID),
			zap.String("date", r.Date),
			zap.String("time", r.Time),
		)
		return time.Time{}
	}
	return ts
}

func accidentDescription(a model.AccidentRecord) string {
	desc := ""
	if a.PedestrianInvolved {
		desc += "Pedestrian "
	}
	if a.BicycleInvolved {
		desc += "Bicycle "
	}
	return desc + "Accident"
}

func accidentCategory(a model.AccidentRecord) string {
	switch {
	case a.PedestrianInvolved:
		return "pedestrian"
	case a.BicycleInvolved:
		return "bicycle"
	default:
		return "vehicle"
	}
}

// FormatBool serializes booleans the way the downstream ingester expects.
func FormatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
