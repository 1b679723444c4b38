// Package pipeline один прогон: найти группу, скачать, разобрать, выбрать дни,
// нарисовать и сохранить две картинки.
package pipeline

import (
	"bytes"
	"fmt"
	"time"

	"github.com/notaneet/rasp03/logger"
	"github.com/notaneet/rasp03/model"
	"github.com/notaneet/rasp03/plugin"
	"github.com/notaneet/rasp03/render"
	"github.com/notaneet/rasp03/selector"
)

const (
	TodayTitle    = "Сегодня"
	TomorrowTitle = "Завтра"
)

// Artifacts результат прогона
type Artifacts struct {
	Institution string
	Group       string
	GroupURL    string
	Generated   time.Time
	Week        int //Неделя, по которой отфильтровано расписание
	Schedule    model.WeekSchedule
	Today       model.DaySchedule
	Tomorrow    model.DaySchedule

	TodayImage    Artifact
	TomorrowImage Artifact
}

// Export для конвертеров
func (a *Artifacts) Export() model.Export {
	return model.Export{
		Institution: a.Institution,
		Group:       a.Group,
		GroupURL:    a.GroupURL,
		Generated:   a.Generated,
		Week:        a.Week,
		Schedule:    a.Schedule,
		Days:        []model.DaySchedule{a.Today, a.Tomorrow},
	}
}

type Pipeline struct {
	source   plugin.Plugin
	selector selector.Selector
	renderer *render.Renderer
	storage  *Storage
	location *time.Location
	log      logger.Logger

	// Now часы вызывающего, подменяются в тестах и флагом --date
	Now func() time.Time
}

func New(source plugin.Plugin, renderer *render.Renderer, storage *Storage, location *time.Location, log logger.Logger) *Pipeline {
	return &Pipeline{
		source:   source,
		selector: selector.New(),
		renderer: renderer,
		storage:  storage,
		location: location,
		log:      log,
		Now:      time.Now,
	}
}

// FindGroup адрес страницы группы
func (p *Pipeline) FindGroup(group string) (string, error) {
	return p.source.FindGroup(group)
}

// GenerateDailyImages весь прогон целиком, без частичных результатов
func (p *Pipeline) GenerateDailyImages(group string) (*Artifacts, error) {
	groupURL, err := p.source.FindGroup(group)
	if err != nil {
		p.log.Warning("group %s: %v", group, err)
		return nil, fmt.Errorf("find group %s: %w", group, err)
	}

	today := p.Now().In(p.location)
	tomorrow := today.AddDate(0, 0, 1)

	p.log.Info("fetching %s for group %s", groupURL, group)
	schedule, err := p.source.GetTimetable(groupURL, today)
	if err != nil {
		p.log.Warning("timetable %s: %v", groupURL, err)
		return nil, fmt.Errorf("timetable for %s: %w", group, err)
	}

	todaySchedule, tomorrowSchedule := p.selector.Select(schedule, today, tomorrow)

	todayImage, err := p.render(todaySchedule, TodayTitle, TodayName)
	if err != nil {
		return nil, err
	}
	tomorrowImage, err := p.render(tomorrowSchedule, TomorrowTitle, TomorrowName)
	if err != nil {
		return nil, err
	}

	if err := p.storage.Save(todayImage, tomorrowImage); err != nil {
		p.log.Error("save images: %v", err)
		return nil, err
	}

	p.log.Info("group %s: %d slots, today %d, tomorrow %d", group, len(schedule), len(todaySchedule.Slots), len(tomorrowSchedule.Slots))

	return &Artifacts{
		Institution:   p.source.GetInstitution(),
		Group:         group,
		GroupURL:      groupURL,
		Generated:     today,
		Week:          weekOf(schedule),
		Schedule:      schedule,
		Today:         todaySchedule,
		Tomorrow:      tomorrowSchedule,
		TodayImage:    todayImage,
		TomorrowImage: tomorrowImage,
	}, nil
}

func (p *Pipeline) render(day model.DaySchedule, title, name string) (Artifact, error) {
	si := p.renderer.Render(day.Slots, day.Date, title)
	if si.Truncated {
		p.log.Info("%s: schedule for %s does not fit, truncated", name, day.Day)
	}

	var buf bytes.Buffer
	if err := si.Encode(&buf); err != nil {
		p.log.Error("encode %s: %v", name, err)
		return Artifact{}, fmt.Errorf("encode %s: %w", name, err)
	}
	return Artifact{Name: name, PNG: buf.Bytes()}, nil
}

// weekOf неделя уже отфильтрованного расписания, 0 если пар нет
func weekOf(schedule model.WeekSchedule) int {
	if len(schedule) == 0 {
		return 0
	}
	return schedule[0].Week
}
