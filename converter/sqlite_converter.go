package converter

import (
	"github.com/notaneet/rasp03/model"
	_ "modernc.org/sqlite"
)

// SQLiteConverter out - путь к файлу базы
type SQLiteConverter struct{}

const createTimeSlotsSQLite = `CREATE TABLE IF NOT EXISTS time_slots (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	institution TEXT NOT NULL,
	group_name  TEXT NOT NULL,
	day         TEXT NOT NULL,
	slot_time   TEXT NOT NULL,
	subject     TEXT NOT NULL,
	week        INTEGER NOT NULL,
	generated   TIMESTAMP NOT NULL
)`

func (s SQLiteConverter) Write(node model.Export, out string) error {
	if out == "" {
		return errEmptyOutput
	}
	return writeSQL("sqlite", out, createTimeSlotsSQLite, node)
}
