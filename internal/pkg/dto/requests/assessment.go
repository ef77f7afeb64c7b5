package requests

// SubmitAssessment is a full answer set submitted in one request.
type SubmitAssessment struct {
	Responses    map[string]string `json:"responses" validate:"required,dive,keys,cfs_field,endkeys"`
	BasicDetails map[string]string `json:"basicDetails"`
	Checklist    map[string]string `json:"checklist" validate:"omitempty,dive,keys,cfs_field,endkeys"`
}
