package responses

import "cfs-service/internal/pkg/cfs"

type FieldGroup struct {
	Group  cfs.Group   `json:"group"`
	Fields []cfs.Field `json:"fields"`
}

type Visibility struct {
	Visibility      cfs.Visibility `json:"visibility"`
	VisibleGroups   []cfs.Group    `json:"visible_groups"`
	MissingFields   []cfs.Field    `json:"missing_fields"`
	MissingSelfCare []cfs.Field    `json:"missing_self_care"`
	Complete        bool           `json:"complete"`
}

type Score struct {
	Level            int         `json:"level"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Rule             string      `json:"rule"`
	Answers          cfs.Answers `json:"answers"`
	ChecklistOffered bool        `json:"checklist_offered"`
}

func NewScore(eval cfs.Evaluation) Score {
	info, _ := cfs.LevelFor(eval.Result.Level)
	return Score{
		Level:            eval.Result.Level,
		Title:            eval.Result.Title,
		Description:      info.Description,
		Rule:             eval.Result.Rule,
		Answers:          eval.Answers,
		ChecklistOffered: cfs.OffersChronicChecklist(eval.Result.Level),
	}
}

func NewVisibility(answers cfs.Answers) Visibility {
	visibility := cfs.ResolveVisibility(answers)
	return Visibility{
		Visibility:      visibility,
		VisibleGroups:   visibility.VisibleGroups(),
		MissingFields:   cfs.MissingFields(answers),
		MissingSelfCare: cfs.MissingSelfCare(answers),
		Complete:        cfs.IsComplete(answers),
	}
}
