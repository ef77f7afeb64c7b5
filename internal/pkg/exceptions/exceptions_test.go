package exceptions

import (
	"cfs-service/internal/pkg/cfs"
	"cfs-service/internal/pkg/constvars"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError(t *testing.T) {
	base := errors.New("connection refused")
	err := ErrRedisGet(base)

	assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
	assert.Equal(t, constvars.ErrDevRedisGetData+": connection refused", err.DevMessage)
	require.Len(t, err.Locations, 1)
	assert.Contains(t, err.Locations[0].FunctionName, "TestBuildNewCustomError")
	assert.True(t, errors.Is(err, base))
}

func TestBuildNewCustomError_Wrapped(t *testing.T) {
	inner := ErrAssessmentNotFound(nil, 7)
	outer := ErrServerProcess(inner)

	assert.Len(t, outer.Locations, 2)
	assert.Contains(t, outer.DevMessage, "assessment 7 not found")
	assert.Equal(t, constvars.StatusNotFound, StatusCodeOf(inner))
	assert.Equal(t, constvars.StatusInternalServerError, StatusCodeOf(errors.New("plain")))
}

func TestFromCFSError(t *testing.T) {
	_, scoreErr := cfs.ComputeScore(cfs.Answers{})
	mapped := FromCFSError(scoreErr)
	assert.Equal(t, constvars.StatusUnprocessableEntity, mapped.StatusCode)
	assert.Equal(t, FieldDetails{Fields: []cfs.Field{cfs.FieldTerminally}}, mapped.Details)
	assert.True(t, errors.Is(mapped, cfs.ErrIncompleteInput))

	_, parseErr := cfs.NewAnswers(map[string]string{"dress": "7"})
	assert.Equal(t, constvars.StatusBadRequest, FromCFSError(parseErr).StatusCode)

	assert.Equal(t, constvars.StatusUnprocessableEntity, FromCFSError(cfs.ErrChecklistNotOffered).StatusCode)
	assert.Equal(t, constvars.StatusInternalServerError, FromCFSError(errors.New("boom")).StatusCode)
	assert.Nil(t, FromCFSError(nil))

	existing := ErrSessionPersisted(nil)
	assert.Same(t, existing, FromCFSError(existing))
}

func TestFormatValidationErrors(t *testing.T) {
	type input struct {
		Field string `validate:"required"`
		Mode  string `validate:"oneof=new edit"`
	}
	err := validator.New().Struct(input{Mode: "other"})
	require.Error(t, err)

	assert.Equal(t, "field is required", FormatFirstValidationError(err))
	assert.Equal(t, "field is required, mode must be one of: new, edit", FormatAllValidationErrors(err))
	assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("x")))
	assert.Contains(t, ErrInputValidation(err).DevMessage, constvars.ErrDevValidationFailed)
}
