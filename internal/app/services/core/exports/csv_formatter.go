package exports

import (
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/cfs"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/utils"
	"encoding/csv"
	"io"
	"strconv"
)

var detailHeaders = []struct {
	title string
	key   string
}{
	{"Patient MRNO", constvars.DetailMRNO},
	{"Patient Age", constvars.DetailAge},
	{"Gender", constvars.DetailGender},
	{"ED Visit Date", constvars.DetailEDVisitDate},
	{"ED Visit Time", constvars.DetailEDVisitTime},
	{"Presenting Complaints", constvars.DetailPresentingComplaints},
	{"BP (mmHg)", constvars.DetailBPCount},
	{"RR (breaths/min)", constvars.DetailRRCount},
	{"HR (bpm)", constvars.DetailHRCount},
	{"SpO2 (%)", constvars.DetailSpO2Count},
}

var outcomeHeaders = []struct {
	title string
	key   string
}{
	{"ED Disposition", constvars.DetailDisposition},
	{"DNR Order", constvars.DetailDNROrder},
	{"In-hospital Mortality", constvars.DetailMortality},
	{"Length of Stay (Days)", constvars.DetailLengthOfStay},
}

var answerHeaders = map[cfs.Field]string{
	cfs.FieldTerminally:          "Terminally Ill",
	cfs.FieldDress:               "BADLS - Dress",
	cfs.FieldEat:                 "BADLS - Eat",
	cfs.FieldWalk:                "BADLS - Walk",
	cfs.FieldBed:                 "BADLS - Bed",
	cfs.FieldBath:                "BADLS - Bath",
	cfs.FieldTelephone:           "IADLS - Telephone",
	cfs.FieldShopping:            "IADLS - Shopping",
	cfs.FieldCooking:             "IADLS - Cooking",
	cfs.FieldHousework:           "IADLS - Housework",
	cfs.FieldMedicine:            "IADLS - Medicine",
	cfs.FieldMoney:               "IADLS - Money",
	cfs.FieldEmphysema:           "Chronic - Emphysema",
	cfs.FieldBP:                  "Chronic - High BP",
	cfs.FieldHeartDisease:        "Chronic - Heart Disease",
	cfs.FieldAngina:              "Chronic - Angina",
	cfs.FieldCancer:              "Chronic - Cancer",
	cfs.FieldMemory:              "Chronic - Memory",
	cfs.FieldDementia:            "Chronic - Dementia",
	cfs.FieldOsteoarthritis:      "Chronic - Osteoarthritis",
	cfs.FieldRheumatoid:          "Chronic - Rheumatoid",
	cfs.FieldPeripheralVascular:  "Chronic - Peripheral Vascular",
	cfs.FieldStroke:              "Chronic - Stroke",
	cfs.FieldMiniStroke:          "Chronic - Mini Stroke",
	cfs.FieldParkinsons:          "Chronic - Parkinsons",
	cfs.FieldUlcers:              "Chronic - Ulcers",
	cfs.FieldBowelDisorder:       "Chronic - Bowel Disorder",
	cfs.FieldGlaucoma:            "Chronic - Glaucoma",
	cfs.FieldMacularDegeneration: "Chronic - Macular Degeneration",
	cfs.FieldOsteoporosis:        "Chronic - Osteoporosis",
	cfs.FieldBackProblems:        "Chronic - Back Problems",
	cfs.FieldThyroidGland:        "Chronic - Thyroid",
	cfs.FieldKidneyDisease:       "Chronic - Kidney Disease",
	cfs.FieldOthers:              "Chronic - Other Conditions",
	cfs.FieldOtherConditions:     "Other Conditions Details",
	cfs.FieldHealth:              "Health Rating",
	cfs.FieldEffort:              "Effort Frequency",
	cfs.FieldSports:              "Sports Activity",
}

// answerColumns is the order answers appear in after the level columns.
func answerColumns() []cfs.Field {
	columns := []cfs.Field{cfs.FieldTerminally}
	columns = append(columns, cfs.BADLSFields...)
	columns = append(columns, cfs.IADLSFields...)
	columns = append(columns, cfs.ChronicFields...)
	columns = append(columns, cfs.FieldOtherConditions)
	return append(columns, cfs.SelfCareFields...)
}

// Headers returns the export column titles.
func Headers() []string {
	headers := []string{"Assessment ID", "Timestamp"}
	for _, h := range detailHeaders {
		headers = append(headers, h.title)
	}
	headers = append(headers, "CFS Score", "CFS Level")
	for _, f := range answerColumns() {
		headers = append(headers, answerHeaders[f])
	}
	for _, h := range outcomeHeaders {
		headers = append(headers, h.title)
	}
	return headers
}

// Row renders one assessment. Coded answers become their display labels
// and unanswered fields stay empty.
func Row(assessment *models.Assessment) []string {
	row := []string{formatInt(assessment.ID), utils.FormatExportTimestamp(assessment.Timestamp)}
	for _, h := range detailHeaders {
		row = append(row, assessment.Detail(h.key))
	}

	title := cfs.LevelTitle(assessment.Score)
	if title == "" {
		title = assessment.LevelTitle
	}
	row = append(row, formatInt(int64(assessment.Score)), title)

	for _, f := range answerColumns() {
		value, ok := assessment.Responses[f]
		if !ok {
			row = append(row, "")
			continue
		}
		row = append(row, cfs.DisplayValue(f, value))
	}
	for _, h := range outcomeHeaders {
		row = append(row, assessment.Detail(h.key))
	}
	return row
}

func formatInt(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

type CSVFormatter struct {
	writer *csv.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: csv.NewWriter(w)}
}

func (f *CSVFormatter) WriteAll(assessments []models.Assessment) error {
	if err := f.writer.Write(Headers()); err != nil {
		return err
	}
	for i := range assessments {
		if err := f.writer.Write(Row(&assessments[i])); err != nil {
			return err
		}
	}
	f.writer.Flush()
	return f.writer.Error()
}
