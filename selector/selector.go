// Package selector выбирает из расписания пары на сегодня и завтра.
package selector

import (
	"sort"
	"time"

	"github.com/notaneet/rasp03/model"
)

// Epoch понедельник, от которого считается чередование недель
var Epoch = time.Date(2023, time.August, 28, 0, 0, 0, 0, time.UTC)

// Days названия дней, начиная с понедельника
var Days = [7]string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

type Selector struct {
	Epoch time.Time
}

func New() Selector {
	return Selector{Epoch: Epoch}
}

// WeekOf 1 или 2: floor(дней от эпохи / 7) mod 2 + 1
func (s Selector) WeekOf(date time.Time) int {
	days := daysBetween(s.Epoch, date)
	weeks := floorDiv(days, 7)
	return ((weeks%2)+2)%2 + 1
}

// DayName название дня недели даты
func DayName(date time.Time) string {
	// time.Weekday начинается с воскресенья
	return Days[(int(date.Weekday())+6)%7]
}

// Day пары на дату. Неделя даты не сверяется с неделей пар:
// расписание уже отфильтровано при парсинге.
func (s Selector) Day(schedule model.WeekSchedule, date time.Time) model.DaySchedule {
	name := DayName(date)
	slots := make([]model.TimeSlot, 0)
	for _, slot := range schedule {
		if slot.Day == name {
			slots = append(slots, slot)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Time < slots[j].Time
	})

	return model.DaySchedule{
		Date:  date,
		Day:   name,
		Week:  s.WeekOf(date),
		Slots: slots,
	}
}

// Select сегодня и завтра. Пустой список - нет пар, это не ошибка.
func (s Selector) Select(schedule model.WeekSchedule, today, tomorrow time.Time) (model.DaySchedule, model.DaySchedule) {
	return s.Day(schedule, today), s.Day(schedule, tomorrow)
}

// daysBetween календарные дни между датами, время суток и зона не влияют
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
