package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var (
	inDaysPattern  = regexp.MustCompile(`in\s+(\d+)\s+days`)
	weekdayPattern = regexp.MustCompile(`(this\s+|next\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
)

// resolveDeadline turns a verbatim deadline phrase from the transcript
// ("Friday", "next tuesday", "in 3 days", "end of week") into a concrete
// date relative to the run's reference date. Unknown phrasing returns
// ok=false and the phrase is kept on the item as due context only.
func resolveDeadline(deadlineText string, base time.Time) (time.Time, bool) {
	text := strings.ToLower(strings.TrimSpace(deadlineText))
	if text == "" {
		return time.Time{}, false
	}

	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	switch text {
	case "today":
		return day(base), true
	case "tomorrow":
		return day(base.AddDate(0, 0, 1)), true
	case "day after tomorrow":
		return day(base.AddDate(0, 0, 2)), true
	}

	if m := inDaysPattern.FindStringSubmatch(text); m != nil {
		days, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		return day(base.AddDate(0, 0, days)), true
	}

	// Weekend and end-of-week phrasing both mean the coming Friday.
	var target time.Weekday
	switch text {
	case "end of week", "week end", "weekend":
		target = time.Friday
	default:
		m := weekdayPattern.FindStringSubmatch(text)
		if m == nil {
			return time.Time{}, false
		}
		target = weekdays[m[2]]
	}

	// Next occurrence strictly after the base date; "next <day>" skips
	// one more week.
	daysAhead := int(target) - int(base.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	if strings.Contains(text, "next") {
		daysAhead += 7
	}

	return day(base.AddDate(0, 0, daysAhead)), true
}
