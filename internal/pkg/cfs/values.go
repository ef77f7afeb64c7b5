package cfs

// ConditionPresence encodes the terminally-ill gate and the chronic
// condition checklist, where "1" means the condition is present.
type ConditionPresence string

const (
	ConditionAbsent  ConditionPresence = "0"
	ConditionPresent ConditionPresence = "1"
)

// Impairment encodes BADLS and IADLS answers, where "1" means the patient
// needs help with the activity.
type Impairment string

const (
	Independent Impairment = "0"
	NeedsHelp   Impairment = "1"
)

type Health string

const (
	HealthFairPoor  Health = "0"
	HealthGood      Health = "1"
	HealthExcellent Health = "2"
)

type Effort string

const (
	EffortRarely     Effort = "0"
	EffortSometimes  Effort = "1"
	EffortAllTheTime Effort = "2"
)

type Sports string

const (
	SportsSeldom Sports = "0"
	SportsOften  Sports = "1"
)

func ParseConditionPresence(s string) (ConditionPresence, bool) {
	switch v := ConditionPresence(s); v {
	case ConditionAbsent, ConditionPresent:
		return v, true
	}
	return "", false
}

func ParseImpairment(s string) (Impairment, bool) {
	switch v := Impairment(s); v {
	case Independent, NeedsHelp:
		return v, true
	}
	return "", false
}

func ParseHealth(s string) (Health, bool) {
	switch v := Health(s); v {
	case HealthFairPoor, HealthGood, HealthExcellent:
		return v, true
	}
	return "", false
}

func ParseEffort(s string) (Effort, bool) {
	switch v := Effort(s); v {
	case EffortRarely, EffortSometimes, EffortAllTheTime:
		return v, true
	}
	return "", false
}

func ParseSports(s string) (Sports, bool) {
	switch v := Sports(s); v {
	case SportsSeldom, SportsOften:
		return v, true
	}
	return "", false
}

// Label is the yes/no wording shown for a condition question.
func (c ConditionPresence) Label() string {
	switch c {
	case ConditionPresent:
		return "Yes"
	case ConditionAbsent:
		return "No"
	}
	return ""
}

// Label answers the question "can the patient do this without help?", so
// the wording is inverted relative to the encoded value.
func (i Impairment) Label() string {
	switch i {
	case Independent:
		return "Yes"
	case NeedsHelp:
		return "No"
	}
	return ""
}

func (h Health) Label() string {
	switch h {
	case HealthExcellent:
		return "Excellent"
	case HealthGood:
		return "Very Good/Good"
	case HealthFairPoor:
		return "Fair/Poor"
	}
	return ""
}

func (e Effort) Label() string {
	switch e {
	case EffortRarely:
		return "Rarely/Never"
	case EffortSometimes:
		return "Some/Occasional"
	case EffortAllTheTime:
		return "All the time"
	}
	return ""
}

func (s Sports) Label() string {
	switch s {
	case SportsSeldom:
		return "Never/Seldom"
	case SportsOften:
		return "Sometimes/Often"
	}
	return ""
}

// DisplayValue renders the stored encoding of f for people, returning ""
// for unanswered or undecodable values.
func DisplayValue(f Field, value string) string {
	spec, ok := vocabulary[f]
	if !ok {
		return ""
	}
	switch spec.kind {
	case kindPresence:
		v, _ := ParseConditionPresence(value)
		return v.Label()
	case kindImpairment:
		v, _ := ParseImpairment(value)
		return v.Label()
	case kindHealth:
		v, _ := ParseHealth(value)
		return v.Label()
	case kindEffort:
		v, _ := ParseEffort(value)
		return v.Label()
	case kindSports:
		v, _ := ParseSports(value)
		return v.Label()
	}
	return value
}
