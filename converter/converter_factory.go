package converter

import (
	"fmt"
	"strings"
)

// Names все поддерживаемые форматы, в порядке для справки
var Names = []string{"json", "pjson", "pgsql", "sqlite", "xlsx", "ics", "docx"}

func Converter(converter string) IConverter {
	switch converter {
	case "json":
		return JSONConverter{}
	case "pjson":
		return JSONConverter{Pretty: true}
	case "pgsql":
		return PGSQLConverter{}
	case "sqlite":
		return SQLiteConverter{}
	case "xlsx":
		return XLSXConverter{}
	case "ics":
		return ICSConverter{}
	case "docx":
		return DOCXConverter{}
	default:
		return DummyConverter{}
	}
}

// Lookup как Converter, но неизвестное имя - ошибка, а не DummyConverter
func Lookup(name string) (IConverter, error) {
	for _, n := range Names {
		if n == name {
			return Converter(name), nil
		}
	}
	return nil, fmt.Errorf("unknown converter %q, expected one of: %s", name, strings.Join(Names, ", "))
}
