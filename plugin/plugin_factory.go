package plugin

import (
	"github.com/notaneet/rasp03/config"
	"github.com/notaneet/rasp03/plugin/esstu"
)

func NewPlugin(name string, cfg config.ParserConfig) Plugin {
	switch name {
	case "ВСГУТУ", "esstu":
		return esstu.GetPlugin(cfg)
	default:
		return nil
	}
}
