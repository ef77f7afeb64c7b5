package utils

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWT(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", time.Minute)
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err, "a token signed with another secret must be rejected")

	expired, err := GenerateSessionJWT("session-1", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.Error(t, err, "an expired token must be rejected")
}

func TestParseBearerToken(t *testing.T) {
	token, ok := ParseBearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = ParseBearerToken("Bearer ")
	assert.False(t, ok)
	_, ok = ParseBearerToken("Basic abc")
	assert.False(t, ok)
}

func TestParseAssessmentID(t *testing.T) {
	id, err := ParseAssessmentID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, param := range []string{"", "abc", "0", "-3"} {
		_, err := ParseAssessmentID(param)
		assert.Error(t, err, param)
	}
}

func TestExportTimestamps(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 9, 0, time.FixedZone("WIB", 7*3600))
	assert.Equal(t, "2024-03-05 07:07:09", FormatExportTimestamp(ts))
	assert.Equal(t, "", FormatExportTimestamp(time.Time{}))
	assert.Equal(t, "cfs_assessments_2024-03-05.csv", GenerateExportFileName(ts))
}

func TestParseLegacyTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		millis int64
		want   time.Time
		ok     bool
	}{
		{"rfc3339", "2024-01-02T03:04:05Z", 0, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), true},
		{"rfc3339 with millis", "2024-01-02T03:04:05.250+01:00", 0, time.Date(2024, 1, 2, 2, 4, 5, 250000000, time.UTC), true},
		{"export layout", "2024-01-02 03:04:05", 0, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), true},
		{"epoch millis", "", 1704164645000, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), true},
		{"garbage", "yesterday", 0, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLegacyTimestamp(tt.value, tt.millis)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

type answerInput struct {
	Field string `validate:"required,cfs_field"`
	Value string `validate:"required,cfs_value=Field"`
}

func TestValidateStruct_CFSTags(t *testing.T) {
	assert.NoError(t, ValidateStruct(&answerInput{Field: "health", Value: "2"}))

	err := ValidateStruct(&answerInput{Field: "health", Value: "3"})
	require.Error(t, err)
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "cfs_value", validationErrors[0].Tag())

	err = ValidateStruct(&answerInput{Field: "pulse", Value: "1"})
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "cfs_field", validationErrors[0].Tag())
}
