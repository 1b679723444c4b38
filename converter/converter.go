package converter

import (
	"errors"

	"github.com/notaneet/rasp03/model"
)

var errEmptyOutput = errors.New("--output can not be empty")

type IConverter interface {
	Write(node model.Export, out string) error
}

// DummyConverter ничего не пишет
type DummyConverter struct{}

func (DummyConverter) Write(model.Export, string) error {
	return nil
}
