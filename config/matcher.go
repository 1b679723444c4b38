package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher точное совпадение, либо регулярка с префиксом ~. Пустой пропускает всё.
type Matcher struct {
	MatchRaw []string
}

// Validate все регулярки должны компилироваться
func (m *Matcher) Validate() error {
	for _, s := range m.MatchRaw {
		if pattern, ok := strings.CutPrefix(s, "~"); ok {
			if _, err := regexp.Compile(pattern); err != nil {
				return fmt.Errorf("bad pattern %q: %w", s, err)
			}
		}
	}
	return nil
}

func (m *Matcher) Match(text string) bool {
	if len(m.MatchRaw) == 0 {
		return true
	}

	for _, s := range m.MatchRaw {
		pattern, isRegexp := strings.CutPrefix(s, "~")
		if !isRegexp {
			if s == text {
				return true
			}
			continue
		}
		// Сломанная регулярка ничего не пропускает, Validate ловит её заранее
		if re, err := regexp.Compile(pattern); err == nil && re.MatchString(text) {
			return true
		}
	}

	return false
}
