package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/walksafe/seedgen/internal/model"
)

func sampleAccident() model.AccidentRecord {
	return model.AccidentRecord{
		ID:                 "SYNTH_ACC_1718452800000_very-dangerous_0",
		Lat:                26.458501,
		Lon:                -80.0772,
		Date:               "2024-06-01",
		Time:               "18:45",
		Severity:           0.87,
		PedestrianInvolved: true,
		BicycleInvolved:    false,
		DayOfWeek:          "Saturday",
		Weather:            "Rain",
		RoadType:           "State Highway",
		SpeedLimit:         50,
		Intersection:       true,
		LightCondition:     "Dusk",
		Address:            "4821 Atlantic Ave",
		Source:             model.SourceSynthetic,
		SafetyLevel:        "very-dangerous",
	}
}

func sampleCrime() model.CrimeRecord {
	return model.CrimeRecord{
		ID:           "REAL_CRIME_1718452800000_0",
		Lat:          26.4615,
		Lon:          -80.0728,
		Date:         "2024-06-02",
		Time:         "23:10",
		CrimeType:    "robbery",
		Severity:     0.9,
		DayOfWeek:    "Sunday",
		TimeCategory: "night",
		Address:      "17 Linton Blvd",
		Source:       model.SourceReal,
	}
}

func TestAccidentsCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	rec := sampleAccident()
	var buf bytes.Buffer
	require.NoError(t, AccidentsCSV(&buf, []model.AccidentRecord{rec}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"id", "lat", "lon", "date", "time", "severity",
		"pedestrianInvolved", "bicycleInvolved", "dayOfWeek", "weather",
		"roadType", "speedLimit", "intersection", "lightCondition",
		"address", "source", "safetyLevel",
	}, rows[0])

	row := rows[1]
	assert.Equal(t, rec.ID, row[0])

	lat, err := strconv.ParseFloat(row[1], 64)
	require.NoError(t, err)
	assert.Equal(t, rec.Lat, lat)

	lon, err := strconv.ParseFloat(row[2], 64)
	require.NoError(t, err)
	assert.Equal(t, rec.Lon, lon)

	assert.Equal(t, rec.Date, row[3])
	assert.Equal(t, rec.Time, row[4])

	sev, err := strconv.ParseFloat(row[5], 64)
	require.NoError(t, err)
	assert.Equal(t, rec.Severity, sev)

	assert.Equal(t, "TRUE", row[6])
	assert.Equal(t, "FALSE", row[7])
	assert.Equal(t, "50", row[11])
	assert.Equal(t, "TRUE", row[12])
	assert.Equal(t, rec.Address, row[14])
	assert.Equal(t, "SYNTHETIC", row[15])
	assert.Equal(t, "very-dangerous", row[16])
}

func TestCrimesCSV_BaselineRowHasEmptySafetyLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, CrimesCSV(&buf, []model.CrimeRecord{sampleCrime()}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Fixed schema: safetyLevel column exists on every row, empty here.
	assert.Equal(t, "safetyLevel", rows[0][11])
	assert.Equal(t, "", rows[1][11])
	assert.Equal(t, "robbery", rows[1][5])
	assert.Equal(t, "REAL", rows[1][10])
}

func TestCSV_QuotesCommasAndQuotes(t *testing.T) {
	t.Parallel()

	rec := sampleAccident()
	rec.Address = `123 Atlantic Ave, Suite "B"`

	var buf bytes.Buffer
	require.NoError(t, AccidentsCSV(&buf, []model.AccidentRecord{rec}))

	raw := buf.String()
	assert.Contains(t, raw, `"123 Atlantic Ave, Suite ""B"""`)

	// And it still parses back to the original value.
	rows, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, rec.Address, rows[1][14])
}

func TestCombinedCSV_Schema(t *testing.T) {
	t.Parallel()

	rows := []model.CombinedRecord{{
		Type: model.CombinedCrime, ID: "CRIME_1", Date: "2024-01-02", Time: "23:00",
		Severity: 0.4, Description: "theft crime", Category: "theft",
		DayOfWeek: "Tuesday", Address: "1 Jog Rd", Source: model.SourceSynthetic,
	}}

	var buf bytes.Buffer
	require.NoError(t, CombinedCSV(&buf, rows))

	parsed, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, []string{
		"type", "id", "lat", "lon", "date", "time", "severity",
		"description", "category", "dayOfWeek", "weather", "roadType",
		"speedLimit", "intersection", "lightCondition", "address", "source",
	}, parsed[0])
	assert.Equal(t, "CRIME", parsed[1][0])
	assert.Equal(t, "", parsed[1][10]) // weather blank for crimes
}

func TestExport_EmptyBatchRejected(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.True(t, eris.Is(AccidentsCSV(&buf, nil), ErrEmptyBatch))
	assert.True(t, eris.Is(CrimesCSV(&buf, nil), ErrEmptyBatch))
	assert.True(t, eris.Is(CombinedCSV(&buf, nil), ErrEmptyBatch))
	assert.True(t, eris.Is(AccidentsXLSX(&buf, nil), ErrEmptyBatch))
	assert.True(t, eris.Is(CrimesXLSX(&buf, nil), ErrEmptyBatch))
	assert.True(t, eris.Is(CombinedXLSX(&buf, nil), ErrEmptyBatch))
	assert.Zero(t, buf.Len(), "rejected export must not write")
}

func TestAccidentsXLSX_RoundTrip(t *testing.T) {
	t.Parallel()

	rec := sampleAccident()
	path := filepath.Join(t.TempDir(), "accidents.xlsx")

	var buf bytes.Buffer
	require.NoError(t, AccidentsXLSX(&buf, []model.AccidentRecord{rec}))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	assert.Equal(t, "accidents", sheet.Name)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "id", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, rec.ID, sheet.Rows[1].Cells[0].String())
	assert.Equal(t, "TRUE", sheet.Rows[1].Cells[6].String())
}

func TestFilename(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "delray_beach_accidents_2024-06-15.csv",
		Filename("delray_beach", "accidents", "csv", now))
	assert.Equal(t, "delray_beach_combined_2024-06-15.xlsx",
		Filename("delray_beach", "combined", "xlsx", now))
}
