package model

import "time"

// Export всё, что удалось получить за один прогон, для конвертеров
type Export struct {
	Institution string        `json:"institution"` //Образовательное учреждение
	Group       string        `json:"group"`       //Группа, как её запросили
	GroupURL    string        `json:"group_url"`   //Страница группы
	Generated   time.Time     `json:"generated"`   //Когда получено
	Week        int           `json:"week"`        //Активная неделя на момент парсинга
	Schedule    WeekSchedule  `json:"schedule"`
	Days        []DaySchedule `json:"days"` //Сегодня и завтра
}

// FilterSubjects оставить только пары, предмет которых проходит match
func (e Export) FilterSubjects(match func(string) bool) Export {
	filter := func(slots []TimeSlot) []TimeSlot {
		ret := make([]TimeSlot, 0, len(slots))
		for _, s := range slots {
			if match(s.Subject) {
				ret = append(ret, s)
			}
		}
		return ret
	}

	e.Schedule = filter(e.Schedule)
	days := make([]DaySchedule, len(e.Days))
	for i, d := range e.Days {
		d.Slots = filter(d.Slots)
		days[i] = d
	}
	e.Days = days
	return e
}
