package utils

import (
	"fmt"
	"strings"

	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/dto/requests"
	"citaplan-service/internal/pkg/exceptions"
	"citaplan-service/internal/pkg/schedule"
)

// MapWeeklyInterval normalizes one raw boundary interval into the engine's
// value type. The field prefix ends up in client messages so a form can point
// at the offending entry.
func MapWeeklyInterval(entry requests.WeeklyInterval, field string) (schedule.WeeklyInterval, []string) {
	var problems []string

	day, err := schedule.ParseWeekday(entry.Day)
	if err != nil {
		problems = append(problems, fmt.Sprintf("%s.day: %s (%q)", field, constvars.ErrClientUnknownWeekday, entry.Day))
	}
	start, err := schedule.ParseTimeOfDay(entry.Start)
	if err != nil {
		problems = append(problems, fmt.Sprintf("%s.start: %s (%q)", field, constvars.ErrClientMalformedTime, entry.Start))
	}
	end, err := schedule.ParseTimeOfDay(entry.End)
	if err != nil {
		problems = append(problems, fmt.Sprintf("%s.end: %s (%q)", field, constvars.ErrClientMalformedTime, entry.End))
	}
	if len(problems) > 0 {
		return schedule.WeeklyInterval{}, problems
	}

	iv, err := schedule.NewWeeklyInterval(day, start, end)
	if err != nil {
		return schedule.WeeklyInterval{}, []string{fmt.Sprintf("%s: %s", field, constvars.ErrClientInvalidInterval)}
	}
	return iv, nil
}

// MapWeeklyIntervals parses a whole batch and collects every problem instead
// of stopping at the first, so the response can list them all in one pass.
func MapWeeklyIntervals(entries []requests.WeeklyInterval, fieldPrefix string) ([]schedule.WeeklyInterval, []string) {
	intervals := make([]schedule.WeeklyInterval, 0, len(entries))
	var problems []string
	for i, entry := range entries {
		iv, entryProblems := MapWeeklyInterval(entry, fmt.Sprintf("%s[%d]", fieldPrefix, i))
		if len(entryProblems) > 0 {
			problems = append(problems, entryProblems...)
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals, problems
}

// BuildParseError folds collected field problems into one 400 response.
func BuildParseError(problems []string) *exceptions.CustomError {
	return exceptions.BuildNewCustomError(
		nil,
		constvars.StatusBadRequest,
		strings.Join(problems, "; "),
		constvars.ErrDevInvalidRequestPayload,
	)
}
