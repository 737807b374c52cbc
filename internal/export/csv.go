// Package export serializes generated batches. Column sets are fixed per
// domain rather than derived from record introspection, so every row is
// aligned regardless of which optional fields a record carries.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rotisserie/eris"

	"github.com/walksafe/seedgen/internal/dataset"
	"github.com/walksafe/seedgen/internal/model"
)

// ErrEmptyBatch is returned when an export is attempted before generation.
var ErrEmptyBatch = eris.New("export: nothing to export")

// Ordered column sets for the downstream ingester. Stable; do not reorder.
var (
	accidentColumns = []string{
		"id", "lat", "lon", "date", "time", "severity",
		"pedestrianInvolved", "bicycleInvolved", "dayOfWeek", "weather",
		"roadType", "speedLimit", "intersection", "lightCondition",
		"address", "source", "safetyLevel",
	}
	crimeColumns = []string{
		"id", "lat", "lon", "date", "time", "crimeType", "severity",
		"dayOfWeek", "timeCategory", "address", "source", "safetyLevel",
	}
	combinedColumns = []string{
		"type", "id", "lat", "lon", "date", "time", "severity",
		"description", "category", "dayOfWeek", "weather", "roadType",
		"speedLimit", "intersection", "lightCondition", "address", "source",
	}
)

// AccidentsCSV writes an accident batch as CSV.
func AccidentsCSV(w io.Writer, records []model.AccidentRecord) error {
	if len(records) == 0 {
		return ErrEmptyBatch
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, accidentRow(r))
	}
	return writeCSV(w, accidentColumns, rows)
}

// CrimesCSV writes a crime batch as CSV.
func CrimesCSV(w io.Writer, records []model.CrimeRecord) error {
	if len(records) == 0 {
		return ErrEmptyBatch
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, crimeRow(r))
	}
	return writeCSV(w, crimeColumns, rows)
}

// CombinedCSV writes merged rows as CSV.
func CombinedCSV(w io.Writer, records []model.CombinedRecord) error {
	if len(records) == 0 {
		return ErrEmptyBatch
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, combinedRow(r))
	}
	return writeCSV(w, combinedColumns, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "export: flush")
	}
	return nil
}

func accidentRow(r model.AccidentRecord) []string {
	return []string{
		r.ID,
		formatCoord(r.Lat),
		formatCoord(r.Lon),
		r.Date,
		r.Time,
		formatSeverity(r.Severity),
		dataset.FormatBool(r.PedestrianInvolved),
		dataset.FormatBool(r.BicycleInvolved),
		r.DayOfWeek,
		r.Weather,
		r.RoadType,
		strconv.Itoa(r.SpeedLimit),
		dataset.FormatBool(r.Intersection),
		r.LightCondition,
		r.Address,
		string(r.Source),
		r.SafetyLevel,
	}
}

func crimeRow(r model.CrimeRecord) []string {
	return []string{
		r.ID,
		formatCoord(r.Lat),
		formatCoord(r.Lon),
		r.Date,
		r.Time,
		r.CrimeType,
		formatSeverity(r.Severity),
		r.DayOfWeek,
		r.TimeCategory,
		r.Address,
		string(r.Source),
		r.SafetyLevel,
	}
}

func combinedRow(r model.CombinedRecord) []string {
	return []string{
		string(r.Type),
		r.ID,
		formatCoord(r.Lat),
		formatCoord(r.Lon),
		r.Date,
		r.Time,
		formatSeverity(r.Severity),
		r.Description,
		r.Category,
		r.DayOfWeek,
		r.Weather,
		r.RoadType,
		r.SpeedLimit,
		r.Intersection,
		r.LightCondition,
		r.Address,
		string(r.Source),
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatSeverity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Filename builds the conventional export filename,
// e.g. "delray_beach_accidents_2024-06-15.csv".
func Filename(area string, kind string, format string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.%s", area, kind, now.Format("2006-01-02"), format)
}
