package converter

import (
	"fmt"
	"os"

	ics "github.com/arran4/golang-ical"
	"github.com/notaneet/rasp03/model"
	"github.com/notaneet/rasp03/utils"
)

// ICSConverter события на сегодня и завтра; пары с непонятным временем пропускаются
type ICSConverter struct{}

func (c ICSConverter) Write(node model.Export, out string) error {
	if out == "" {
		return errEmptyOutput
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, day := range node.Days {
		for i, slot := range day.Slots {
			start, end, err := utils.AddTimeRangeToDate(day.Date, slot.Time)
			if err != nil {
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%d@rasp03", start.Format("20060102T150405"), i))
			event.SetDtStampTime(node.Generated)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(slot.Subject)
			event.SetDescription(fmt.Sprintf("Группа: %s\nНеделя: %d", node.Group, slot.Week))
		}
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	return cal.SerializeTo(file)
}
