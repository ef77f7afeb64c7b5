package assessments

import (
	"cfs-service/internal/pkg/cfs"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// LegacyRecord is one assessment from a browser-era JSON dump.
type LegacyRecord struct {
	LegacyID     string
	Responses    map[string]string
	BasicDetails map[string]string
	Score        int
	LevelTitle   string
	Timestamp    time.Time
	UpdatedAt    *time.Time
}

// ParseLegacyDump reads either a bare array of assessments or an object
// with an "assessments" array. Older records keep their details under
// "demographics" instead of "basicDetails".
func ParseLegacyDump(raw []byte) ([]LegacyRecord, error) {
	if !gjson.ValidBytes(raw) {
		return nil, exceptions.ErrImportParse(nil, "payload is not valid JSON")
	}

	root := gjson.ParseBytes(raw)
	list := root
	if root.IsObject() {
		list = root.Get("assessments")
	}
	if !list.IsArray() {
		return nil, exceptions.ErrImportParse(nil, "expected an array of assessments")
	}

	var records []LegacyRecord
	list.ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		details := value.Get("basicDetails")
		if !details.IsObject() {
			details = value.Get("demographics")
		}

		record := LegacyRecord{
			LegacyID:     value.Get("id").String(),
			Responses:    stringMap(value.Get("responses")),
			BasicDetails: stringMap(details),
			Score:        int(value.Get("score").Int()),
			LevelTitle:   value.Get("levelTitle").String(),
		}
		record.Timestamp, _ = parseLegacyTime(value.Get("timestamp"))
		if updatedAt, ok := parseLegacyTime(value.Get("updatedAt")); ok {
			record.UpdatedAt = &updatedAt
		}
		records = append(records, record)
		return true
	})
	return records, nil
}

func stringMap(result gjson.Result) map[string]string {
	out := map[string]string{}
	if !result.IsObject() {
		return out
	}
	result.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Null {
			out[key.String()] = value.String()
		}
		return true
	})
	return out
}

func parseLegacyTime(result gjson.Result) (time.Time, bool) {
	switch result.Type {
	case gjson.Number:
		return utils.ParseLegacyTimestamp("", result.Int())
	case gjson.String:
		return utils.ParseLegacyTimestamp(result.String(), 0)
	}
	return time.Time{}, false
}

// legacyOutcomeKeys were written into responses by older app versions.
var legacyOutcomeKeys = map[string]bool{
	constvars.DetailDisposition:  true,
	constvars.DetailDNROrder:     true,
	constvars.DetailMortality:    true,
	constvars.DetailLengthOfStay: true,
}

// splitResponses separates the questionnaire answers of a record from the
// rest of its responses. Outcome keys move into the returned details unless
// the record's basic details already carry them; any other key that is not
// a field, or that repeats one, is returned in dropped.
func (record LegacyRecord) splitResponses() (answers, details map[string]string, dropped []string) {
	answers = make(map[string]string, len(record.Responses))
	details = utils.SanitizeBasicDetails(record.BasicDetails)

	keys := make([]string, 0, len(record.Responses))
	for key := range record.Responses {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := strings.TrimSpace(record.Responses[key])
		name := strings.ToLower(strings.TrimSpace(key))

		switch _, answered := answers[name]; {
		case legacyOutcomeKeys[name]:
			if _, ok := details[name]; !ok && value != "" {
				details[name] = value
			}
		case cfs.Field(name).IsKnown() && !answered:
			answers[name] = value
		default:
			dropped = append(dropped, key)
		}
	}
	return answers, details, dropped
}
