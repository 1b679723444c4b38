package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var spaceRE = regexp.MustCompile(`\s+`)

// RemoveSpaces схлопнуть повторяющиеся пробелы и обрезать края
func RemoveSpaces(s string) string {
	return strings.TrimSpace(spaceRE.ReplaceAllString(s, " "))
}

// MustAtoi строка в число, 0 если не число
func MustAtoi(str string) int {
	ret, err := strconv.Atoi(str)
	if err != nil {
		return 0
	}
	return ret
}
