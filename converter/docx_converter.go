package converter

import (
	"fmt"
	"os"

	"github.com/fumiama/go-docx"
	"github.com/notaneet/rasp03/model"
	"github.com/notaneet/rasp03/utils"
)

// DOCXConverter распечатка на сегодня и завтра
type DOCXConverter struct{}

func (d DOCXConverter) Write(node model.Export, out string) error {
	if out == "" {
		return errEmptyOutput
	}

	w := docx.New().WithDefaultTheme()
	w.AddParagraph().AddText(fmt.Sprintf("%s, группа %s", node.Institution, node.Group)).Bold().Size("32")

	for _, day := range node.Days {
		w.AddParagraph().AddText(fmt.Sprintf("%s, %s", day.Day, utils.FormatDate(day.Date))).Bold().Size("28")
		if len(day.Slots) == 0 {
			w.AddParagraph().AddText("Пар нет")
			continue
		}
		for _, slot := range day.Slots {
			para := w.AddParagraph()
			para.AddText(slot.Time).Bold()
			para.AddText("  " + slot.Subject)
		}
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	_, err = w.WriteTo(file)
	return err
}
