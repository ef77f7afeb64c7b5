package cfs

// ChronicSelfCareThreshold is the chronic-condition count at which the
// self-care questions stop being asked.
const ChronicSelfCareThreshold = 10

// Visibility reports which question groups are shown and required.
type Visibility struct {
	BADLS    bool `json:"badls"`
	IADLS    bool `json:"iadls"`
	Chronic  bool `json:"chronic"`
	SelfCare bool `json:"self_care"`
	Effort   bool `json:"effort"`
	Sports   bool `json:"sports"`
}

// ResolveVisibility walks the gate and each group in order, revealing the
// next group only while the previous one records no impairment.
// It must be called again after every single answer change.
func ResolveVisibility(answers Answers) Visibility {
	var v Visibility

	terminal, ok := answers.terminal()
	if !ok {
		return v
	}

	v.BADLS = true
	if terminal == ConditionPresent {
		return v
	}

	if answers.countImpaired(BADLSFields) > 0 {
		return v
	}
	v.IADLS = true

	if answers.countImpaired(IADLSFields) > 0 {
		return v
	}
	v.Chronic = true

	if answers.countPresent(ChronicFields) >= ChronicSelfCareThreshold {
		return v
	}
	v.SelfCare = true

	if health, ok := ParseHealth(answers[FieldHealth]); ok && health == HealthFairPoor {
		return v
	}
	v.Effort = true
	if effort, ok := ParseEffort(answers[FieldEffort]); ok && effort == EffortAllTheTime {
		return v
	}
	v.Sports = true

	return v
}

// VisibleGroups lists the visible groups in questionnaire order.
func (v Visibility) VisibleGroups() []Group {
	var groups []Group
	if v.BADLS {
		groups = append(groups, GroupBADLS)
	}
	if v.IADLS {
		groups = append(groups, GroupIADLS)
	}
	if v.Chronic {
		groups = append(groups, GroupChronic)
	}
	if v.SelfCare {
		groups = append(groups, GroupSelfCare)
	}
	return groups
}

// requiredSelfCare lists the self-care fields currently asked.
func (v Visibility) requiredSelfCare() []Field {
	if !v.SelfCare {
		return nil
	}
	fields := []Field{FieldHealth}
	if v.Effort {
		fields = append(fields, FieldEffort)
	}
	if v.Sports {
		fields = append(fields, FieldSports)
	}
	return fields
}
