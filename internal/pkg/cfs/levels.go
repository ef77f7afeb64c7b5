package cfs

const (
	MinLevel = 1
	MaxLevel = 9

	// ChecklistMinLevel is the lowest level at which the chronic checklist
	// is offered after scoring.
	ChecklistMinLevel = 5
)

// LevelInfo is one row of the Clinical Frailty Scale.
type LevelInfo struct {
	Level       int    `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var levels = [MaxLevel]LevelInfo{
	{
		Level:       1,
		Title:       "Very Fit",
		Description: "People who are robust, active, energetic and motivated. These people commonly exercise regularly. They are among the fittest for their age.",
	},
	{
		Level:       2,
		Title:       "Fit",
		Description: "People who have no active disease symptoms but are less fit than category 1. Often, they exercise or are very active occasionally, e.g. seasonally.",
	},
	{
		Level:       3,
		Title:       "Managing Well",
		Description: "Medical problems are well controlled, but are not regularly active beyond routine walking.",
	},
	{
		Level:       4,
		Title:       "Living with Very Mild Frailty",
		Description: "While not dependent on others for daily help, often symptoms limit activities. A common complaint is being 'slowed up', and/or being tired during the day.",
	},
	{
		Level:       5,
		Title:       "Living with Mild Frailty",
		Description: "These people often have more evident slowing, and need help in high order IADLs (finances, transportation, heavy housework, medications). Typically, mild frailty progressively impairs shopping and walking outside alone, meal preparation and housework.",
	},
	{
		Level:       6,
		Title:       "Living with Moderate Frailty",
		Description: "People need help with all outside activities and with keeping house. Inside, they often have problems with stairs and need help with bathing and might need minimal assistance (cuing) with dressing.",
	},
	{
		Level:       7,
		Title:       "Living with Severe Frailty",
		Description: "Completely dependent for personal care, from whatever cause (physical or cognitive). Even so, they seem stable and not at high risk of dying (within ~ 6 months).",
	},
	{
		Level:       8,
		Title:       "Living with Very Severe Frailty",
		Description: "Completely dependent, approaching the end of life. Typically, they could not recover even from a minor illness.",
	},
	{
		Level:       9,
		Title:       "Terminally Ill",
		Description: "Approaching the end of life. This category applies to people with a life expectancy <6 months, who are not otherwise evidently frail.",
	},
}

// Levels returns a copy of the level table, ordered from 1 to 9.
func Levels() []LevelInfo {
	out := make([]LevelInfo, len(levels))
	copy(out, levels[:])
	return out
}

func LevelFor(level int) (LevelInfo, bool) {
	if level < MinLevel || level > MaxLevel {
		return LevelInfo{}, false
	}
	return levels[level-1], true
}

// LevelTitle returns the title of level, or "" when out of range.
func LevelTitle(level int) string {
	info, _ := LevelFor(level)
	return info.Title
}

// OffersChronicChecklist reports whether the chronic checklist is asked
// after a score of level.
func OffersChronicChecklist(level int) bool {
	return level >= ChecklistMinLevel
}
