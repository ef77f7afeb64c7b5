package cfs

import (
	"fmt"
	"strings"
)

// Field is a key of the fixed questionnaire vocabulary.
type Field string

const (
	FieldTerminally Field = "terminally"

	FieldDress Field = "dress"
	FieldEat   Field = "eat"
	FieldWalk  Field = "walk"
	FieldBed   Field = "bed"
	FieldBath  Field = "bath"

	FieldTelephone Field = "telephone"
	FieldShopping  Field = "shopping"
	FieldCooking   Field = "cooking"
	FieldHousework Field = "housework"
	FieldMedicine  Field = "medicine"
	FieldMoney     Field = "money"

	FieldEmphysema           Field = "emphysema"
	FieldBP                  Field = "bp"
	FieldHeartDisease        Field = "heart_disease"
	FieldAngina              Field = "angina"
	FieldCancer              Field = "cancer"
	FieldMemory              Field = "memory"
	FieldDementia            Field = "dementia"
	FieldOsteoarthritis      Field = "osteoarthritis"
	FieldRheumatoid          Field = "rheumatoid"
	FieldPeripheralVascular  Field = "peripheral_vascular"
	FieldStroke              Field = "stroke"
	FieldMiniStroke          Field = "mini_stroke"
	FieldParkinsons          Field = "parkinsons"
	FieldUlcers              Field = "ulcers"
	FieldBowelDisorder       Field = "bowel_disorder"
	FieldGlaucoma            Field = "glaucoma"
	FieldMacularDegeneration Field = "macular_degeneration"
	FieldOsteoporosis        Field = "osteoporosis"
	FieldBackProblems        Field = "back_problems"
	FieldThyroidGland        Field = "thyroid_gland"
	FieldKidneyDisease       Field = "kidney_disease"
	FieldOthers              Field = "others"

	FieldHealth Field = "health"
	FieldEffort Field = "effort"
	FieldSports Field = "sports"

	// FieldOtherConditions holds free text describing FieldOthers. It is
	// stored with the responses but never scored.
	FieldOtherConditions Field = "other_conditions"
)

// Group names a block of questions revealed together.
type Group string

const (
	GroupGate     Group = "gate"
	GroupBADLS    Group = "badls"
	GroupIADLS    Group = "iadls"
	GroupChronic  Group = "chronic"
	GroupSelfCare Group = "self_care"
	GroupDetail   Group = "detail"
)

var (
	BADLSFields = []Field{FieldDress, FieldEat, FieldWalk, FieldBed, FieldBath}

	IADLSFields = []Field{
		FieldTelephone, FieldShopping, FieldCooking,
		FieldHousework, FieldMedicine, FieldMoney,
	}

	ChronicFields = []Field{
		FieldEmphysema, FieldBP, FieldHeartDisease, FieldAngina, FieldCancer,
		FieldMemory, FieldDementia, FieldOsteoarthritis, FieldRheumatoid,
		FieldPeripheralVascular, FieldStroke, FieldMiniStroke, FieldParkinsons,
		FieldUlcers, FieldBowelDisorder, FieldGlaucoma, FieldMacularDegeneration,
		FieldOsteoporosis, FieldBackProblems, FieldThyroidGland,
		FieldKidneyDisease, FieldOthers,
	}

	SelfCareFields = []Field{FieldHealth, FieldEffort, FieldSports}
)

// valueKind tells which typed enum decodes a field.
type valueKind int

const (
	kindPresence valueKind = iota
	kindImpairment
	kindHealth
	kindEffort
	kindSports
	kindText
)

type fieldSpec struct {
	group Group
	kind  valueKind
}

var vocabulary = buildVocabulary()

func buildVocabulary() map[Field]fieldSpec {
	v := map[Field]fieldSpec{
		FieldTerminally:      {group: GroupGate, kind: kindPresence},
		FieldHealth:          {group: GroupSelfCare, kind: kindHealth},
		FieldEffort:          {group: GroupSelfCare, kind: kindEffort},
		FieldSports:          {group: GroupSelfCare, kind: kindSports},
		FieldOtherConditions: {group: GroupDetail, kind: kindText},
	}
	for _, f := range BADLSFields {
		v[f] = fieldSpec{group: GroupBADLS, kind: kindImpairment}
	}
	for _, f := range IADLSFields {
		v[f] = fieldSpec{group: GroupIADLS, kind: kindImpairment}
	}
	for _, f := range ChronicFields {
		v[f] = fieldSpec{group: GroupChronic, kind: kindPresence}
	}
	return v
}

// ParseField normalizes s and checks it against the vocabulary.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := vocabulary[f]; !ok {
		return "", &FieldError{Err: ErrUnknownField, Fields: []Field{Field(s)}}
	}
	return f, nil
}

func (f Field) IsKnown() bool {
	_, ok := vocabulary[f]
	return ok
}

// Group returns the group f belongs to, or "" for unknown fields.
func (f Field) Group() Group {
	return vocabulary[f].group
}

// IsScored reports whether f takes part in visibility or scoring.
func (f Field) IsScored() bool {
	def, ok := vocabulary[f]
	return ok && def.kind != kindText
}

// ValidateValue checks that value is a legal encoding for f.
func ValidateValue(f Field, value string) error {
	def, ok := vocabulary[f]
	if !ok {
		return &FieldError{Err: ErrUnknownField, Fields: []Field{f}}
	}

	var valid bool
	switch def.kind {
	case kindPresence:
		_, valid = ParseConditionPresence(value)
	case kindImpairment:
		_, valid = ParseImpairment(value)
	case kindHealth:
		_, valid = ParseHealth(value)
	case kindEffort:
		_, valid = ParseEffort(value)
	case kindSports:
		_, valid = ParseSports(value)
	case kindText:
		valid = true
	}
	if !valid {
		return &FieldError{
			Err:    ErrInvalidValue,
			Fields: []Field{f},
			Detail: fmt.Sprintf("value %q is not allowed", value),
		}
	}
	return nil
}

// FieldsOf returns the ordered fields of g.
func FieldsOf(g Group) []Field {
	switch g {
	case GroupGate:
		return []Field{FieldTerminally}
	case GroupBADLS:
		return append([]Field(nil), BADLSFields...)
	case GroupIADLS:
		return append([]Field(nil), IADLSFields...)
	case GroupChronic:
		return append([]Field(nil), ChronicFields...)
	case GroupSelfCare:
		return append([]Field(nil), SelfCareFields...)
	case GroupDetail:
		return []Field{FieldOtherConditions}
	}
	return nil
}

// Groups lists every group in questionnaire order.
func Groups() []Group {
	return []Group{GroupGate, GroupBADLS, GroupIADLS, GroupChronic, GroupSelfCare, GroupDetail}
}
