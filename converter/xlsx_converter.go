package converter

import (
	"github.com/notaneet/rasp03/model"
	"github.com/notaneet/rasp03/utils"
	"github.com/tealeg/xlsx/v3"
)

// XLSXConverter лист со всей неделей и по листу на каждый выбранный день
type XLSXConverter struct{}

const weekSheet = "Неделя"

var slotHeader = []string{"День", "Время", "Предмет", "Неделя"}

func (x XLSXConverter) Write(node model.Export, out string) error {
	if out == "" {
		return errEmptyOutput
	}

	f := xlsx.NewFile()

	sh, err := f.AddSheet(weekSheet)
	if err != nil {
		return err
	}
	writeSlots(sh, node.Schedule)

	for _, day := range node.Days {
		// Имя листа - дата, оно уникально и короче 31 символа
		sh, err := f.AddSheet(utils.FormatDate(day.Date))
		if err != nil {
			return err
		}
		writeSlots(sh, day.Slots)
	}

	return f.Save(out)
}

func writeSlots(sh *xlsx.Sheet, slots []model.TimeSlot) {
	header := sh.AddRow()
	for _, title := range slotHeader {
		header.AddCell().SetString(title)
	}

	for _, slot := range slots {
		row := sh.AddRow()
		row.AddCell().SetString(slot.Day)
		row.AddCell().SetString(slot.Time)
		row.AddCell().SetString(slot.Subject)
		row.AddCell().SetInt(slot.Week)
	}
}
