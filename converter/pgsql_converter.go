package converter

import (
	"fmt"

	_ "github.com/lib/pq"
	"github.com/notaneet/rasp03/model"
)

// PGSQLConverter out - строка подключения к postgres
type PGSQLConverter struct{}

const createTimeSlotsPG = `CREATE TABLE IF NOT EXISTS time_slots (
	id          SERIAL PRIMARY KEY,
	institution TEXT NOT NULL,
	group_name  TEXT NOT NULL,
	day         TEXT NOT NULL,
	slot_time   TEXT NOT NULL,
	subject     TEXT NOT NULL,
	week        INTEGER NOT NULL,
	generated   TIMESTAMPTZ NOT NULL
)`

func (p PGSQLConverter) Write(node model.Export, out string) error {
	if out == "" {
		return fmt.Errorf("credentials can not be empty")
	}
	return writeSQL("postgres", out, createTimeSlotsPG, node)
}
