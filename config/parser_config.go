package config

import "time"

// DirectoryURL страница со списком групп бакалавриата
const DirectoryURL = "https://portal.esstu.ru/bakalavriat/raspisan.htm"

type ParserConfig struct {
	DirectoryURL string
	// 0 - таймаут транспорта по умолчанию
	Timeout time.Duration

	//Фильтр предметов при экспорте
	SubjectMatcher Matcher
}

func (cfg *ParserConfig) Init() {
	if cfg.DirectoryURL == "" {
		cfg.DirectoryURL = DirectoryURL
	}
}
