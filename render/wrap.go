package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/notaneet/rasp03/utils"
)

// Ширина строки предмета в символах
const wrapWidth = 50

// wrapText разбить текст на строки не длиннее width, длинные слова режутся
func wrapText(s string, width int) []string {
	s = utils.RemoveSpaces(s)
	if s == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(ansi.Wrap(s, width, ""), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
