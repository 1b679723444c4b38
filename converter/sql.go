package converter

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/notaneet/rasp03/model"
)

// Общая часть pgsql и sqlite: таблица одна, пары группы перезаписываются целиком
const deleteSlotsQuery = "DELETE FROM time_slots WHERE institution = ? AND group_name = ?"
const insertSlotQuery = "INSERT INTO time_slots (institution, group_name, day, slot_time, subject, week, generated) VALUES (?, ?, ?, ?, ?, ?, ?)"

func writeSQL(driver, dsn, schema string, node model.Export) error {
	conn, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(tx.Rebind(deleteSlotsQuery), node.Institution, node.Group); err != nil {
		return fmt.Errorf("failed to drop old slots: %w", err)
	}

	insertSlot, err := tx.Preparex(tx.Rebind(insertSlotQuery))
	if err != nil {
		return err
	}
	defer insertSlot.Close()

	for _, slot := range node.Schedule {
		if _, err := insertSlot.Exec(node.Institution, node.Group, slot.Day, slot.Time, slot.Subject, slot.Week, node.Generated); err != nil {
			return fmt.Errorf("failed to insert slot: %w", err)
		}
	}

	return tx.Commit()
}
