package cfs

// IsComplete gates scoring. The gate must be answered; when the patient is
// terminally ill nothing else is required, otherwise every field of each
// visible BADLS, IADLS and chronic group must be answered. Self-care answers
// are not part of the check.
func IsComplete(answers Answers) bool {
	return len(MissingFields(answers)) == 0
}

// MissingFields lists the unanswered fields that keep answers from being
// complete, in questionnaire order.
func MissingFields(answers Answers) []Field {
	terminal, ok := answers.terminal()
	if !ok {
		return []Field{FieldTerminally}
	}
	if terminal == ConditionPresent {
		return nil
	}

	v := ResolveVisibility(answers)
	var missing []Field
	if v.BADLS {
		missing = append(missing, answers.missing(BADLSFields)...)
	}
	if v.IADLS {
		missing = append(missing, answers.missing(IADLSFields)...)
	}
	if v.Chronic {
		missing = append(missing, answers.missing(ChronicFields)...)
	}
	return missing
}

// MissingSelfCare lists the visible self-care fields still unanswered.
// Scoring such answers ends in ErrUnmatchedLeaf.
func MissingSelfCare(answers Answers) []Field {
	return answers.missing(ResolveVisibility(answers).requiredSelfCare())
}
