package exceptions

import (
	"cfs-service/internal/pkg/cfs"
	"errors"
)

// FieldDetails is the client payload for scoring errors tied to questions.
type FieldDetails struct {
	Fields []cfs.Field `json:"fields"`
}

// FromCFSError maps a scoring engine error to its HTTP error. Errors that do
// not come from the engine are treated as server failures.
func FromCFSError(err error) *CustomError {
	var customErr *CustomError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &customErr):
		return customErr
	case errors.Is(err, cfs.ErrIncompleteInput):
		return ErrAnswersIncomplete(err).WithDetails(FieldDetails{Fields: cfs.ErrorFields(err)})
	case errors.Is(err, cfs.ErrUnmatchedLeaf):
		return ErrScoreUnmatchedLeaf(err).WithDetails(FieldDetails{Fields: cfs.ErrorFields(err)})
	case errors.Is(err, cfs.ErrUnknownField), errors.Is(err, cfs.ErrInvalidValue):
		return ErrInvalidAnswer(err).WithDetails(FieldDetails{Fields: cfs.ErrorFields(err)})
	case errors.Is(err, cfs.ErrChecklistNotOffered):
		return ErrChecklistNotOffered(err)
	default:
		return ErrServerProcess(err)
	}
}
