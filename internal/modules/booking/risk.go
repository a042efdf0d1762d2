package booking

import (
	"strconv"
	"strings"
)

const (
	officeOpenHour  = 8
	officeCloseHour = 17
)

// RiskAssessment is the pre-submission advisory check. It never blocks the
// booking; the result is returned to the caller for display only.
type RiskAssessment struct {
	Level          string   `json:"level"`
	Issues         []string `json:"issues"`
	Recommendation string   `json:"recommendation"`
}

var riskMessages = map[string]map[string]string{
	"en": {
		"too_short":     "Usage time too short",
		"outside_hours": "Outside office hours",
		"review":        "Requires careful review",
		"safe":          "Safe to approve",
	},
	"vi": {
		"too_short":     "Thời gian sử dụng quá ngắn",
		"outside_hours": "Ngoài giờ hành chính",
		"review":        "Cần xem xét kỹ",
		"safe":          "An toàn để phê duyệt",
	},
}

// AssessRisk flags the two heuristics the intake form warns about: a zero
// length usage window and a pickup outside the 08-17 office window.
func AssessRisk(pickupTime, returnTime, language string) RiskAssessment {
	msgs, ok := riskMessages[language]
	if !ok {
		msgs = riskMessages["en"]
	}

	issues := []string{}
	if pickupTime == returnTime {
		issues = append(issues, msgs["too_short"])
	}
	if hour, ok := pickupHour(pickupTime); ok && (hour < officeOpenHour || hour > officeCloseHour) {
		issues = append(issues, msgs["outside_hours"])
	}

	level := "low"
	recommendation := msgs["safe"]
	if len(issues) > 0 {
		level = "medium"
		recommendation = msgs["review"]
	}

	return RiskAssessment{
		Level:          level,
		Issues:         issues,
		Recommendation: recommendation,
	}
}

func pickupHour(t string) (int, bool) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) == 0 || parts[0] == "" {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	return hour, true
}
