package esstu

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/notaneet/rasp03/model"
	"golang.org/x/net/html"
)

// Пар в день (столбцов после дня недели)
const periods = 6

// Шапка с временем пар - вторая строка таблицы
const headerRow = 1

// Пустая клетка в расписании
const placeholder = "_"

// Вторая неделя помечается синим шрифтом в клетке дня
const week2Color = "#0000ff"

var daysMap = map[string]string{
	"Пнд": "Понедельник",
	"Втр": "Вторник",
	"Срд": "Среда",
	"Чтв": "Четверг",
	"Птн": "Пятница",
	"Сбт": "Суббота",
}

// DayName сокращение дня в полное название, остальное как есть
func DayName(label string) string {
	if name, ok := daysMap[label]; ok {
		return name
	}
	return label
}

// ActiveWeek неделя по числу месяца, как её считает портал: 1-29 число - первая,
// 30 и 31 - вторая. С календарными неделями не связано.
func ActiveWeek(ref time.Time) int {
	index := ref.Day() - 15
	if float64(index)/2 <= 7 {
		return 1
	}
	return 2
}

// ParseSchedule пары только активной на ref недели
func ParseSchedule(markup string, ref time.Time) (model.WeekSchedule, error) {
	all, err := ParseTable(markup)
	if err != nil {
		return nil, err
	}
	return all.FilterWeek(ActiveWeek(ref)), nil
}

// ParseTable все пары обеих недель в порядке таблицы
func ParseTable(markup string) (model.WeekSchedule, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, &model.ParseError{Reason: err.Error()}
	}

	rows := doc.Find("tr")
	if rows.Length() <= headerRow {
		return nil, &model.ParseError{Reason: "time header row is missing"}
	}

	headerCells := rows.Eq(headerRow).Find("td")
	if headerCells.Length() < periods+1 {
		return nil, &model.ParseError{
			Reason: fmt.Sprintf("time header row has %d cells, want at least %d", headerCells.Length(), periods+1),
		}
	}

	times := make([]string, periods)
	for i := range times {
		times[i] = nodeText(headerCells.Get(i+1), "")
	}

	schedule := model.WeekSchedule{}
	for r := headerRow + 1; r < rows.Length(); r++ {
		cells := rows.Eq(r).Find("td")
		// Разделители и прочие строки без пар
		if cells.Length() < 2 {
			continue
		}

		dayCell := cells.First()
		day := DayName(nodeText(dayCell.Get(0), ""))
		week := 1
		if isWeek2(dayCell) {
			week = 2
		}

		for i := 1; i < cells.Length() && i <= periods; i++ {
			subject := nodeText(cells.Get(i), " ")
			if subject == "" || subject == placeholder {
				continue
			}

			schedule = append(schedule, model.TimeSlot{
				Day:     day,
				Time:    times[i-1],
				Subject: subject,
				Week:    week,
			})
		}
	}

	return schedule, nil
}

func isWeek2(dayCell *goquery.Selection) bool {
	return dayCell.Find("font").FilterFunction(func(_ int, font *goquery.Selection) bool {
		color, _ := font.Attr("color")
		return strings.EqualFold(strings.TrimSpace(color), week2Color)
	}).Length() > 0
}

// nodeText текстовые куски внутри узла без пробелов по краям, склеенные через sep
func nodeText(n *html.Node, sep string) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, sep)
}
