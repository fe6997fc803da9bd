package dentalchart

import "strings"

// Condition labels are matched case-insensitively, with spaces and
// underscores treated the same; anything unknown falls back to "other".
const ConditionOther = "other"

const colorOther = "#9e9e9e"

var conditionColors = map[string]string{
	"healthy":           "#66bb6a",
	"cavity":            "#ef5350",
	"decay":             "#ef5350",
	"filling":           "#42a5f5",
	"restored":          "#42a5f5",
	"crown":             "#ffca28",
	"root canal":        "#ab47bc",
	"missing":           "#bdbdbd",
	"implant":           "#26a69a",
	"bridge":            "#5c6bc0",
	"extraction needed": "#b71c1c",
	"watch":             "#ffa726",
	"sealant":           "#8d6e63",
	"veneer":            "#ec407a",
}

// ClinicalSectionOrder fixes the rendering order of the free-text sections
// on the clinical notes tab.
var ClinicalSectionOrder = []string{
	"overview",
	"current_condition",
	"treatment_urgency",
	"recommended_treatment",
	"preventive_care",
	"prognosis",
	"cost_considerations",
	"next_steps",
}

func normalizeCondition(condition string) string {
	normalized := strings.ToLower(strings.TrimSpace(condition))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	return normalized
}

// ConditionColor resolves the cell color for a condition label; unknown
// labels map to the "other" color.
func ConditionColor(condition string) string {
	if color, ok := conditionColors[normalizeCondition(condition)]; ok {
		return color
	}
	return colorOther
}

// KnownCondition reports whether a label is part of the fixed set.
func KnownCondition(condition string) bool {
	_, ok := conditionColors[normalizeCondition(condition)]
	return ok
}

// IsMissing marks teeth that render dashed and translucent.
func IsMissing(condition string) bool {
	return normalizeCondition(condition) == "missing"
}
