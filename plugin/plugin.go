package plugin

import (
	"time"

	"github.com/notaneet/rasp03/model"
)

type Plugin interface {
	GetInstitution() string
	// FindGroup адрес страницы группы или model.ErrGroupNotFound
	FindGroup(group string) (string, error)
	GetTimetable(groupURL string, ref time.Time) (model.WeekSchedule, error)
}
