package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout дд.мм.гггг
const DateLayout = "02.01.2006"

// FormatDate дата в виде дд.мм.гггг
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate разобрать дд.мм.гггг в указанной зоне
func ParseDate(str string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(str), loc)
}

// Время пары в шапке: 8.00-9.35, 08:00–09:30 и т.п.
var timeRangeRE = regexp.MustCompile(`(\d{1,2})[.:](\d{2})\s*[-–—]\s*(\d{1,2})[.:](\d{2})`)

// AddTimeRangeToDate начало и конец пары на указанную дату
func AddTimeRangeToDate(date time.Time, stringTime string) (start, end time.Time, err error) {
	m := timeRangeRE.FindStringSubmatch(stringTime)
	if m == nil {
		return start, end, fmt.Errorf("%q is not a time range", stringTime)
	}

	start = time.Date(date.Year(), date.Month(), date.Day(), MustAtoi(m[1]), MustAtoi(m[2]), 0, 0, date.Location())
	end = time.Date(date.Year(), date.Month(), date.Day(), MustAtoi(m[3]), MustAtoi(m[4]), 0, 0, date.Location())
	return start, end, nil
}
