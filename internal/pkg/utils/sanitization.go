package utils

import (
	"cfs-service/internal/pkg/cfs"
	"sort"
	"strings"
)

// SanitizeBasicDetails trims keys and values and drops empty entries.
func SanitizeBasicDetails(input map[string]string) map[string]string {
	sanitized := make(map[string]string, len(input))
	for key, value := range input {
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		sanitized[key] = value
	}
	return sanitized
}

// SanitizeAnswers trims keys and values and lowercases keys. Free text
// answers keep their case. Two keys that normalize to the same field are
// rejected with cfs.ErrInvalidValue.
func SanitizeAnswers(input map[string]string) (map[string]string, error) {
	sanitized := make(map[string]string, len(input))
	var duplicates []string
	for key, value := range input {
		key = strings.ToLower(strings.TrimSpace(key))
		if _, seen := sanitized[key]; seen {
			duplicates = append(duplicates, key)
		}
		sanitized[key] = strings.TrimSpace(value)
	}
	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		fields := make([]cfs.Field, len(duplicates))
		for i, key := range duplicates {
			fields[i] = cfs.Field(key)
		}
		return nil, &cfs.FieldError{Err: cfs.ErrInvalidValue, Fields: fields, Detail: "field is given more than once"}
	}
	return sanitized, nil
}

// MergeDetails returns a copy of base overlaid with the non-empty values of
// overlay.
func MergeDetails(base, overlay map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range SanitizeBasicDetails(overlay) {
		merged[key] = value
	}
	return merged
}
