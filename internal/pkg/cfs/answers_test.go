package cfs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary(t *testing.T) {
	assert.Len(t, BADLSFields, 5)
	assert.Len(t, IADLSFields, 6)
	assert.Len(t, ChronicFields, 22)
	assert.Len(t, SelfCareFields, 3)

	assert.Equal(t, GroupBADLS, FieldBath.Group())
	assert.Equal(t, GroupChronic, FieldOthers.Group())
	assert.Equal(t, GroupDetail, FieldOtherConditions.Group())
	assert.False(t, FieldOtherConditions.IsScored())
	assert.True(t, FieldTerminally.IsScored())
	assert.Equal(t, Group(""), Field("pulse").Group())
}

func TestParseField(t *testing.T) {
	f, err := ParseField(" Heart_Disease ")
	require.NoError(t, err)
	assert.Equal(t, FieldHeartDisease, f)

	_, err = ParseField("pulse")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestValidateValue(t *testing.T) {
	tests := []struct {
		field Field
		value string
		ok    bool
	}{
		{FieldTerminally, "1", true},
		{FieldTerminally, "2", false},
		{FieldDress, "0", true},
		{FieldDress, "yes", false},
		{FieldHealth, "2", true},
		{FieldHealth, "3", false},
		{FieldEffort, "2", true},
		{FieldSports, "2", false},
		{FieldOtherConditions, "anything at all", true},
		{Field("pulse"), "1", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.field)+"="+tt.value, func(t *testing.T) {
			err := ValidateValue(tt.field, tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewAnswers(t *testing.T) {
	a, err := NewAnswers(map[string]string{"terminally": "0", "dress": "1"})
	require.NoError(t, err)
	assert.Equal(t, Answers{FieldTerminally: "0", FieldDress: "1"}, a)
	assert.Equal(t, map[string]string{"terminally": "0", "dress": "1"}, a.ToMap())

	_, err = NewAnswers(map[string]string{"terminally": "maybe"})
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Equal(t, []Field{FieldTerminally}, ErrorFields(err))

	_, err = NewAnswers(map[string]string{"pulse": "1"})
	assert.True(t, errors.Is(err, ErrUnknownField))

	_, err = NewAnswers(map[string]string{"Dress": "1", "dress": "0", "terminally": "0"})
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Equal(t, []Field{FieldDress}, ErrorFields(err))
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, "No", DisplayValue(FieldDress, "1"))
	assert.Equal(t, "Yes", DisplayValue(FieldDress, "0"))
	assert.Equal(t, "Yes", DisplayValue(FieldCancer, "1"))
	assert.Equal(t, "Yes", DisplayValue(FieldTerminally, "1"))
	assert.Equal(t, "Excellent", DisplayValue(FieldHealth, "2"))
	assert.Equal(t, "Some/Occasional", DisplayValue(FieldEffort, "1"))
	assert.Equal(t, "Never/Seldom", DisplayValue(FieldSports, "0"))
	assert.Equal(t, "", DisplayValue(FieldSports, ""))
	assert.Equal(t, "gout", DisplayValue(FieldOtherConditions, "gout"))
}

func TestFieldError(t *testing.T) {
	err := &FieldError{Err: ErrIncompleteInput, Fields: []Field{FieldEat, FieldBath}, Detail: "answer them"}
	assert.Equal(t, "cfs: answers are incomplete [eat, bath]: answer them", err.Error())
	assert.Nil(t, ErrorFields(errors.New("other")))
}
