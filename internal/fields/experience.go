package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// reDateRange matches a pair of date-like tokens separated by a dash:
// "январь 2019 — декабрь 2021", "2015-2018", "март 2020 – настоящее время".
// The scan is deliberately global over the whole text for parity with the
// established heuristic, even though that can pick up ranges outside the
// experience section. Known weakness, kept for behavioral stability.
var reDateRange = regexp.MustCompile(`([а-яёa-z]+\s+\d{4}|\d{4})\s*[—–-]\s*([а-яёa-z]+\s+\d{4}|настоящее время|\d{4})`)

var monthIndex = map[string]int{
	"январь": 1, "февраль": 2, "март": 3, "апрель": 4, "май": 5, "июнь": 6,
	"июль": 7, "август": 8, "сентябрь": 9, "октябрь": 10, "ноябрь": 11, "декабрь": 12,
	"января": 1, "февраля": 2, "марта": 3, "апреля": 4, "мая": 5, "июня": 6,
	"июля": 7, "августа": 8, "сентября": 9, "октября": 10, "ноября": 11, "декабря": 12,
}

// ExperienceYears sums the inclusive month spans of every date range in the
// text and reports whole years as a string. Ranges that fail to parse are
// skipped; a zero total yields an empty string.
func ExperienceYears(text string, now time.Time) string {
	lower := strings.ToLower(text)
	totalMonths := 0
	for _, m := range reDateRange.FindAllStringSubmatch(lower, -1) {
		start, err := parseResumeDate(m[1], now)
		if err != nil {
			continue
		}
		end, err := parseResumeDate(m[2], now)
		if err != nil {
			continue
		}
		totalMonths += (end.year-start.year)*12 + (end.month - start.month)
	}
	if totalMonths <= 0 {
		return ""
	}
	return strconv.Itoa(totalMonths / 12)
}

type yearMonth struct {
	year, month int
}

// parseResumeDate understands "<month> <year>", a bare year (January
// implied) and the "настоящее время" marker (the current date).
func parseResumeDate(s string, now time.Time) (yearMonth, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "настоящее время" || s == "по настоящее время" {
		return yearMonth{now.Year(), int(now.Month())}, nil
	}
	parts := strings.Fields(s)
	switch len(parts) {
	case 2:
		month, ok := monthIndex[parts[0]]
		if !ok {
			return yearMonth{}, fmt.Errorf("unknown month %q", parts[0])
		}
		year, err := strconv.Atoi(parts[1])
		if err != nil {
			return yearMonth{}, err
		}
		return yearMonth{year, month}, nil
	case 1:
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return yearMonth{}, err
		}
		return yearMonth{year, 1}, nil
	}
	return yearMonth{}, fmt.Errorf("invalid date %q", s)
}
