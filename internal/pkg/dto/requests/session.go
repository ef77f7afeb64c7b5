package requests

type StartSession struct {
	BasicDetails map[string]string `json:"basicDetails"`
}

// SetAnswer takes Field from the URL path.
type SetAnswer struct {
	Field string `json:"-" validate:"required,cfs_field"`
	Value string `json:"value" validate:"required,cfs_value=Field"`
}

type UpdateBasicDetails struct {
	BasicDetails map[string]string `json:"basicDetails" validate:"required"`
}

type Outcome struct {
	Disposition  string `json:"disposition" validate:"omitempty,max=100"`
	DNROrder     string `json:"dnr_order" validate:"omitempty,max=100"`
	Mortality    string `json:"mortality" validate:"omitempty,max=100"`
	LengthOfStay string `json:"length_of_stay" validate:"omitempty,numeric"`
}

type SaveSession struct {
	Outcome   Outcome           `json:"outcome"`
	Checklist map[string]string `json:"checklist" validate:"omitempty,dive,keys,cfs_field,endkeys"`
}
