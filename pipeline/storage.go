package pipeline

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Имена файлов не зависят ни от группы, ни от дня
const (
	TodayName    = "today_schedule.png"
	TomorrowName = "tomorrow_schedule.png"
)

// Artifact картинка одного дня
type Artifact struct {
	Name string
	PNG  []byte
}

// Storage папка с картинками. Записи сериализуются, чтобы пара файлов
// одного прогона не перемешивалась с другим.
type Storage struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

func NewStorage(fs afero.Fs, dir string) *Storage {
	return &Storage{fs: fs, dir: dir}
}

// Save перезаписать артефакты
func (s *Storage) Save(artifacts ...Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create images directory: %w", err)
	}

	for _, a := range artifacts {
		if err := afero.WriteFile(s.fs, s.Path(a.Name), a.PNG, 0644); err != nil {
			return fmt.Errorf("could not write %s: %w", a.Name, err)
		}
	}
	return nil
}

// Load последняя сохранённая версия
func (s *Storage) Load(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return afero.ReadFile(s.fs, s.Path(name))
}

func (s *Storage) Path(name string) string {
	return filepath.Join(s.dir, name)
}
