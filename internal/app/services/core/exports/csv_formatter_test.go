package exports

import (
	"bytes"
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/cfs"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnIndex(t *testing.T, title string) int {
	t.Helper()
	for i, h := range Headers() {
		if h == title {
			return i
		}
	}
	t.Fatalf("missing column %q", title)
	return -1
}

func TestHeaders(t *testing.T) {
	headers := Headers()
	require.Len(t, headers, 56)
	assert.Equal(t, "Assessment ID", headers[0])
	assert.Equal(t, "Terminally Ill", headers[14])
	assert.Equal(t, "Other Conditions Details", headers[48])
	assert.Equal(t, "Length of Stay (Days)", headers[55])
}

func TestRow(t *testing.T) {
	assessment := &models.Assessment{
		ID: 12,
		Responses: cfs.Answers{
			cfs.FieldTerminally:      "0",
			cfs.FieldDress:           "1",
			cfs.FieldEat:             "0",
			cfs.FieldStroke:          "1",
			cfs.FieldCancer:          "0",
			cfs.FieldOtherConditions: "gout, asthma",
			cfs.FieldHealth:          "2",
		},
		BasicDetails: map[string]string{"mrno": "MR-12", "disposition": "Admitted"},
		Score:        6,
		LevelTitle:   "stale title",
		Timestamp:    time.Date(2024, 2, 3, 4, 5, 6, 0, time.FixedZone("UTC+3", 3*3600)),
	}

	row := Row(assessment)
	require.Len(t, row, 56)

	assert.Equal(t, "12", row[columnIndex(t, "Assessment ID")])
	assert.Equal(t, "2024-02-03 01:05:06", row[columnIndex(t, "Timestamp")])
	assert.Equal(t, "MR-12", row[columnIndex(t, "Patient MRNO")])
	assert.Equal(t, "6", row[columnIndex(t, "CFS Score")])
	assert.Equal(t, cfs.LevelTitle(6), row[columnIndex(t, "CFS Level")])
	assert.Equal(t, "No", row[columnIndex(t, "Terminally Ill")])
	assert.Equal(t, "No", row[columnIndex(t, "BADLS - Dress")])
	assert.Equal(t, "Yes", row[columnIndex(t, "BADLS - Eat")])
	assert.Equal(t, "", row[columnIndex(t, "BADLS - Walk")])
	assert.Equal(t, "Yes", row[columnIndex(t, "Chronic - Stroke")])
	assert.Equal(t, "No", row[columnIndex(t, "Chronic - Cancer")])
	assert.Equal(t, "Excellent", row[columnIndex(t, "Health Rating")])
	assert.Equal(t, "", row[columnIndex(t, "Sports Activity")])
	assert.Equal(t, "Admitted", row[columnIndex(t, "ED Disposition")])
	assert.Equal(t, "", row[columnIndex(t, "DNR Order")])
}

func TestRow_UnknownScoreKeepsStoredTitle(t *testing.T) {
	row := Row(&models.Assessment{LevelTitle: "legacy"})
	assert.Equal(t, "", row[columnIndex(t, "CFS Score")])
	assert.Equal(t, "legacy", row[columnIndex(t, "CFS Level")])
	assert.Equal(t, "", row[columnIndex(t, "Timestamp")])
}

func TestCSVFormatter_QuotesFreeText(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVFormatter(&buf).WriteAll([]models.Assessment{{
		ID:        1,
		Responses: cfs.Answers{cfs.FieldOtherConditions: "gout, asthma"},
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Len(t, records[1], 56)
	assert.Equal(t, "gout, asthma", records[1][columnIndex(t, "Other Conditions Details")])
}
