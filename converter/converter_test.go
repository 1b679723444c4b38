package converter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fumiama/go-docx"
	"github.com/jmoiron/sqlx"
	"github.com/notaneet/rasp03/model"
	"github.com/tealeg/xlsx/v3"
)

var loc = time.FixedZone("UTC+8", 8*60*60)

func export() model.Export {
	monday := time.Date(2026, time.October, 19, 0, 0, 0, 0, loc)
	return model.Export{
		Institution: "ВСГУТУ",
		Group:       "Б735",
		GroupURL:    "https://portal.esstu.ru/bakalavriat/b735.htm",
		Generated:   time.Date(2026, time.October, 19, 7, 30, 0, 0, loc),
		Week:        1,
		Schedule: model.WeekSchedule{
			{Day: "Понедельник", Time: "08.00-09.35", Subject: "Матанализ а.403", Week: 1},
			{Day: "Понедельник", Time: "09.45-11.20", Subject: "Физика а.8-212", Week: 1},
			{Day: "Вторник", Time: "по выбору", Subject: "Факультатив", Week: 1},
		},
		Days: []model.DaySchedule{
			{Date: monday, Day: "Понедельник", Week: 1, Slots: []model.TimeSlot{
				{Day: "Понедельник", Time: "08.00-09.35", Subject: "Матанализ а.403", Week: 1},
				{Day: "Понедельник", Time: "09.45-11.20", Subject: "Физика а.8-212", Week: 1},
			}},
			{Date: monday.AddDate(0, 0, 1), Day: "Вторник", Week: 1, Slots: []model.TimeSlot{
				{Day: "Вторник", Time: "по выбору", Subject: "Факультатив", Week: 1},
			}},
		},
	}
}

func TestConverterFactory(t *testing.T) {
	if _, ok := Converter("json").(JSONConverter); !ok {
		t.Error("json: wrong converter")
	}
	if c, ok := Converter("pjson").(JSONConverter); !ok || !c.Pretty {
		t.Error("pjson: expected pretty JSONConverter")
	}
	if _, ok := Converter("sqlite").(SQLiteConverter); !ok {
		t.Error("sqlite: wrong converter")
	}
	if _, ok := Converter("unknown").(DummyConverter); !ok {
		t.Error("unknown name must fall back to DummyConverter")
	}
	if err := Converter("").Write(export(), ""); err != nil {
		t.Errorf("dummy converter returned %v", err)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names {
		c, err := Lookup(name)
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
		if _, ok := c.(DummyConverter); ok {
			t.Errorf("%s: resolved to DummyConverter", name)
		}
	}
	if _, err := Lookup("csv"); err == nil {
		t.Error("expected error for unknown converter")
	}
}

func TestEmptyOutput(t *testing.T) {
	for _, name := range Names {
		if err := Converter(name).Write(export(), ""); err == nil {
			t.Errorf("%s: expected error for empty output", name)
		}
	}
}

func TestJSONConverter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "schedule.json")
	if err := (JSONConverter{Pretty: true}).Write(export(), out); err != nil {
		t.Fatalf("Write returned %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("\n  \"institution\"")) {
		t.Errorf("pretty output is not indented:\n%s", b)
	}

	var got model.Export
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Group != "Б735" || len(got.Schedule) != 3 || len(got.Days) != 2 {
		t.Errorf("unexpected document: %+v", got)
	}
}

func TestSQLiteConverterReplacesGroupSlots(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rasp.db")

	// Второй прогон не должен дублировать пары группы
	for i := 0; i < 2; i++ {
		if err := (SQLiteConverter{}).Write(export(), out); err != nil {
			t.Fatalf("run %d: Write returned %v", i, err)
		}
	}

	db, err := sqlx.Connect("sqlite", out)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM time_slots WHERE group_name = ?", "Б735"); err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("expected 3 rows, got %d", count)
	}

	var subjects []string
	if err := db.Select(&subjects, "SELECT subject FROM time_slots ORDER BY id"); err != nil {
		t.Fatal(err)
	}
	if subjects[0] != "Матанализ а.403" {
		t.Errorf("unexpected first subject %q", subjects[0])
	}
}

func TestXLSXConverter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rasp.xlsx")
	if err := (XLSXConverter{}).Write(export(), out); err != nil {
		t.Fatalf("Write returned %v", err)
	}

	f, err := xlsx.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Неделя", "19.10.2026", "20.10.2026"} {
		if _, ok := f.Sheet[name]; !ok {
			t.Errorf("sheet %q is missing", name)
		}
	}

	cell, err := f.Sheet["Неделя"].Cell(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if cell.Value != "Матанализ а.403" {
		t.Errorf("unexpected subject cell %q", cell.Value)
	}
}

func TestICSConverterSkipsUnparsableTime(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rasp.ics")
	if err := (ICSConverter{}).Write(export(), out); err != nil {
		t.Fatalf("Write returned %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	text := string(b)
	if n := strings.Count(text, "BEGIN:VEVENT"); n != 2 {
		t.Errorf("expected 2 events, got %d", n)
	}
	if !strings.Contains(text, "SUMMARY:Матанализ а.403") {
		t.Error("event summary is missing")
	}
}

func TestDOCXConverter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rasp.docx")
	if err := (DOCXConverter{}).Write(export(), out); err != nil {
		t.Fatalf("Write returned %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("PK")) {
		t.Fatal("docx is not a zip archive")
	}
	if _, err := docx.Parse(bytes.NewReader(b), int64(len(b))); err != nil {
		t.Errorf("generated docx can not be parsed back: %v", err)
	}
}
