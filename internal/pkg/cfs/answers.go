package cfs

import "sort"

// Answers is the answer set under evaluation. A field missing from the map
// is unanswered, which is different from "0".
type Answers map[Field]string

// NewAnswers decodes a raw key/value map, rejecting unknown fields, keys
// that name the same field twice and values outside a field's domain.
func NewAnswers(raw map[string]string) (Answers, error) {
	answers := make(Answers, len(raw))
	var duplicates []Field
	for k, v := range raw {
		f, err := ParseField(k)
		if err != nil {
			return nil, err
		}
		if answers.Has(f) {
			duplicates = append(duplicates, f)
		}
		answers[f] = v
	}
	if len(duplicates) > 0 {
		return nil, &FieldError{Err: ErrInvalidValue, Fields: sortFields(duplicates), Detail: "field is given more than once"}
	}
	if err := answers.Validate(); err != nil {
		return nil, err
	}
	return answers, nil
}

func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func (a Answers) Has(f Field) bool {
	_, ok := a[f]
	return ok
}

// Validate reports every unknown field, then every invalid value.
func (a Answers) Validate() error {
	var unknown, invalid []Field
	for f, v := range a {
		if !f.IsKnown() {
			unknown = append(unknown, f)
			continue
		}
		if err := ValidateValue(f, v); err != nil {
			invalid = append(invalid, f)
		}
	}
	if len(unknown) > 0 {
		return &FieldError{Err: ErrUnknownField, Fields: sortFields(unknown)}
	}
	if len(invalid) > 0 {
		return &FieldError{Err: ErrInvalidValue, Fields: sortFields(invalid)}
	}
	return nil
}

// ToMap returns the wire form of a.
func (a Answers) ToMap() map[string]string {
	out := make(map[string]string, len(a))
	for k, v := range a {
		out[string(k)] = v
	}
	return out
}

func (a Answers) terminal() (ConditionPresence, bool) {
	return ParseConditionPresence(a[FieldTerminally])
}

// countImpaired counts fields answered "needs help".
func (a Answers) countImpaired(fields []Field) int {
	n := 0
	for _, f := range fields {
		if v, ok := ParseImpairment(a[f]); ok && v == NeedsHelp {
			n++
		}
	}
	return n
}

// countPresent counts fields answered "condition present".
func (a Answers) countPresent(fields []Field) int {
	n := 0
	for _, f := range fields {
		if v, ok := ParseConditionPresence(a[f]); ok && v == ConditionPresent {
			n++
		}
	}
	return n
}

func (a Answers) missing(fields []Field) []Field {
	var out []Field
	for _, f := range fields {
		if !a.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func sortFields(fields []Field) []Field {
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}
