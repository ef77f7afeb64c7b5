package cfs

// DefaultValue is written into unanswered fields of visible groups before
// scoring. It reads as "independent" for BADLS/IADLS and "no condition" for
// the chronic checklist.
const DefaultValue = "0"

// ApplyDefaults returns a copy of answers in which every unanswered field of
// a visible BADLS, IADLS or chronic group is set to DefaultValue. The input
// is never modified. Filling zeros cannot reveal or hide a group, so a
// second application changes nothing.
func ApplyDefaults(answers Answers) Answers {
	filled := answers.Clone()
	v := ResolveVisibility(answers)

	if v.BADLS {
		fillMissing(filled, BADLSFields)
	}
	if v.IADLS {
		fillMissing(filled, IADLSFields)
	}
	if v.Chronic {
		fillMissing(filled, ChronicFields)
	}
	return filled
}

func fillMissing(answers Answers, fields []Field) {
	for _, f := range fields {
		if !answers.Has(f) {
			answers[f] = DefaultValue
		}
	}
}

// MergeChecklist folds the post-score chronic checklist into answers. The
// checklist only accepts chronic fields and the other-conditions detail, and
// it is only offered from level ChecklistMinLevel up; there every chronic
// field left unanswered defaults to DefaultValue.
func MergeChecklist(answers, checklist Answers, level int) (Answers, error) {
	if !OffersChronicChecklist(level) {
		if len(checklist) > 0 {
			return nil, ErrChecklistNotOffered
		}
		return answers.Clone(), nil
	}

	var rejected []Field
	for f := range checklist {
		if g := f.Group(); g != GroupChronic && g != GroupDetail {
			rejected = append(rejected, f)
		}
	}
	if len(rejected) > 0 {
		return nil, &FieldError{
			Err:    ErrUnknownField,
			Fields: sortFields(rejected),
			Detail: "not part of the chronic checklist",
		}
	}
	if err := checklist.Validate(); err != nil {
		return nil, err
	}

	merged := answers.Clone()
	for f, v := range checklist {
		merged[f] = v
	}
	fillMissing(merged, ChronicFields)
	return merged, nil
}
