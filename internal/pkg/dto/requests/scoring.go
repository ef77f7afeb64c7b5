package requests

type EvaluateAnswers struct {
	Answers map[string]string `json:"answers" validate:"required,dive,keys,cfs_field,endkeys"`
}
