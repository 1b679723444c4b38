package model

import "time"

// TimeSlot модель одной пары из таблицы расписания
type TimeSlot struct {
	Day     string `json:"day"`     //Полное название дня недели (Понедельник...Суббота)
	Time    string `json:"time"`    //Время пары так, как оно указано в шапке таблицы
	Subject string `json:"subject"` //Предмет, аудитория и преподаватель одной строкой
	Week    int    `json:"week"`    //Неделя: 1 или 2
}

// WeekSchedule все пары группы в порядке таблицы
type WeekSchedule []TimeSlot

// FilterWeek оставить только пары указанной недели
func (s WeekSchedule) FilterWeek(week int) WeekSchedule {
	ret := make(WeekSchedule, 0, len(s))
	for _, slot := range s {
		if slot.Week == week {
			ret = append(ret, slot)
		}
	}
	return ret
}

// DaySchedule пары на конкретную дату, отсортированные по времени
type DaySchedule struct {
	Date  time.Time  `json:"date"`
	Day   string     `json:"day"`
	Week  int        `json:"week"` //Неделя даты по эпохе (информативно)
	Slots []TimeSlot `json:"slots"`
}
