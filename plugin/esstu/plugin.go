package esstu

import (
	"time"

	"github.com/notaneet/rasp03/config"
	"github.com/notaneet/rasp03/model"
)

// Plugin расписание бакалавриата ВСГУТУ
type Plugin struct {
	config  config.ParserConfig
	fetcher Fetcher
}

func GetPlugin(cfg config.ParserConfig) *Plugin {
	cfg.Init()
	return &Plugin{config: cfg, fetcher: Fetcher{Timeout: cfg.Timeout}}
}

func (p *Plugin) GetInstitution() string {
	return "ВСГУТУ"
}

// FindGroup абсолютный адрес страницы группы
func (p *Plugin) FindGroup(group string) (string, error) {
	markup, err := p.fetcher.Fetch(p.config.DirectoryURL)
	if err != nil {
		return "", err
	}

	href, err := LocateGroup(markup, group)
	if err != nil {
		return "", err
	}

	return ResolveGroupURL(p.config.DirectoryURL, href)
}

// GetTimetable пары группы активной на ref недели
func (p *Plugin) GetTimetable(groupURL string, ref time.Time) (model.WeekSchedule, error) {
	markup, err := p.fetcher.Fetch(groupURL)
	if err != nil {
		return nil, err
	}

	return ParseSchedule(markup, ref)
}
