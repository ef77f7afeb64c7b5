package cfs

import "fmt"

// ScoreResult is a computed level. It is a value: every computation
// returns a new one.
type ScoreResult struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Rule  string `json:"rule"`
}

// profile is the typed view of an answer set that the rules read.
type profile struct {
	terminal ConditionPresence

	badls   int
	iadls   int
	chronic int

	health    Health
	hasHealth bool
	effort    Effort
	hasEffort bool
	sports    Sports
	hasSports bool
}

func newProfile(answers Answers) profile {
	p := profile{
		badls:   answers.countImpaired(BADLSFields),
		iadls:   answers.countImpaired(IADLSFields),
		chronic: answers.countPresent(ChronicFields),
	}
	p.terminal, _ = answers.terminal()
	p.health, p.hasHealth = ParseHealth(answers[FieldHealth])
	p.effort, p.hasEffort = ParseEffort(answers[FieldEffort])
	p.sports, p.hasSports = ParseSports(answers[FieldSports])
	return p
}

type scoreRule struct {
	name  string
	level int
	match func(p profile) bool
}

// scoreRules is the decision tree flattened in evaluation order; the first
// matching rule sets the level.
var scoreRules = []scoreRule{
	{name: "terminal_dependent", level: 9, match: func(p profile) bool {
		return p.terminal == ConditionPresent && p.badls > 2
	}},
	{name: "terminal", level: 8, match: func(p profile) bool {
		return p.terminal == ConditionPresent
	}},
	{name: "badls_over_2", level: 7, match: func(p profile) bool { return p.badls > 2 }},
	{name: "badls_any", level: 6, match: func(p profile) bool { return p.badls > 0 }},
	{name: "iadls_over_4", level: 6, match: func(p profile) bool { return p.iadls > 4 }},
	{name: "iadls_any", level: 5, match: func(p profile) bool { return p.iadls > 0 }},
	{name: "chronic_over_9", level: 4, match: func(p profile) bool { return p.chronic > 9 }},

	selfCareRule(4, HealthExcellent, EffortAllTheTime),
	selfCareRule(1, HealthExcellent, EffortRarely, SportsOften),
	selfCareRule(2, HealthExcellent, EffortRarely, SportsSeldom),
	selfCareRule(2, HealthExcellent, EffortSometimes, SportsOften),
	selfCareRule(3, HealthExcellent, EffortSometimes, SportsSeldom),

	selfCareRule(4, HealthGood, EffortAllTheTime),
	selfCareRule(2, HealthGood, EffortRarely, SportsOften),
	selfCareRule(3, HealthGood, EffortRarely, SportsSeldom),
	selfCareRule(2, HealthGood, EffortSometimes, SportsOften),
	selfCareRule(3, HealthGood, EffortSometimes, SportsSeldom),

	{name: "health_fair_poor", level: 4, match: func(p profile) bool {
		return p.hasHealth && p.health == HealthFairPoor
	}},
}

// selfCareRule matches one leaf of the self-care table. With no sports
// value the leaf ignores the sports answer.
func selfCareRule(level int, health Health, effort Effort, sports ...Sports) scoreRule {
	name := fmt.Sprintf("self_care_h%s_e%s", health, effort)
	if len(sports) > 0 {
		name += "_s" + string(sports[0])
	}
	return scoreRule{
		name:  name,
		level: level,
		match: func(p profile) bool {
			if !p.hasHealth || p.health != health || !p.hasEffort || p.effort != effort {
				return false
			}
			if len(sports) == 0 {
				return true
			}
			return p.hasSports && p.sports == sports[0]
		},
	}
}

// ComputeScore maps a complete answer set to a level. Incomplete answers
// return ErrIncompleteInput and uncovered self-care combinations return
// ErrUnmatchedLeaf; neither case yields a level.
func ComputeScore(answers Answers) (ScoreResult, error) {
	if missing := MissingFields(answers); len(missing) > 0 {
		return ScoreResult{}, &FieldError{Err: ErrIncompleteInput, Fields: missing}
	}
	if err := answers.Validate(); err != nil {
		return ScoreResult{}, err
	}

	p := newProfile(answers)
	for _, rule := range scoreRules {
		if rule.match(p) {
			return ScoreResult{Level: rule.level, Title: LevelTitle(rule.level), Rule: rule.name}, nil
		}
	}

	return ScoreResult{}, &FieldError{
		Err:    ErrUnmatchedLeaf,
		Fields: MissingSelfCare(answers),
		Detail: fmt.Sprintf("health=%q effort=%q sports=%q",
			answers[FieldHealth], answers[FieldEffort], answers[FieldSports]),
	}
}

// Evaluation is the outcome of the full scoring flow.
type Evaluation struct {
	Answers Answers
	Result  ScoreResult
}

// Evaluate runs the completeness gate, default-fill and scoring in order.
// The returned answers are the default-filled copy that was scored.
func Evaluate(answers Answers) (Evaluation, error) {
	if missing := MissingFields(answers); len(missing) > 0 {
		return Evaluation{}, &FieldError{Err: ErrIncompleteInput, Fields: missing}
	}
	filled := ApplyDefaults(answers)
	result, err := ComputeScore(filled)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{Answers: filled, Result: result}, nil
}
