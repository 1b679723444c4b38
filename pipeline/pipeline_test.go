package pipeline

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/notaneet/rasp03/logger"
	"github.com/notaneet/rasp03/model"
	"github.com/notaneet/rasp03/render"
	"github.com/spf13/afero"
)

type fakePlugin struct {
	groupURL     string
	findErr      error
	schedule     model.WeekSchedule
	timetableErr error

	gotRef time.Time
	calls  int
}

func (f *fakePlugin) GetInstitution() string { return "ВСГУТУ" }

func (f *fakePlugin) FindGroup(group string) (string, error) {
	f.calls++
	return f.groupURL, f.findErr
}

func (f *fakePlugin) GetTimetable(groupURL string, ref time.Time) (model.WeekSchedule, error) {
	f.calls++
	f.gotRef = ref
	return f.schedule, f.timetableErr
}

var loc = time.FixedZone("UTC+8", 8*60*60)

func newPipeline(t *testing.T, source *fakePlugin) (*Pipeline, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	renderer := render.NewRenderer(render.LoadFontSource(mem, "arialmt.ttf"), logger.NewNopLogger())
	p := New(source, renderer, NewStorage(mem, "images"), loc, logger.NewNopLogger())
	// 23:30 UTC воскресенья - уже понедельник 19.10.2026 по UTC+8
	p.Now = func() time.Time { return time.Date(2026, time.October, 18, 23, 30, 0, 0, time.UTC) }
	return p, mem
}

func TestGenerateDailyImages(t *testing.T) {
	source := &fakePlugin{
		groupURL: "https://portal.esstu.ru/bakalavriat/b735.htm",
		schedule: model.WeekSchedule{
			{Day: "Понедельник", Time: "09.45-11.20", Subject: "Физика", Week: 1},
			{Day: "Понедельник", Time: "08.00-09.35", Subject: "Матанализ", Week: 1},
			{Day: "Среда", Time: "08.00-09.35", Subject: "Химия", Week: 1},
		},
	}
	p, mem := newPipeline(t, source)

	got, err := p.GenerateDailyImages("Б735")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Today.Day != "Понедельник" || got.Tomorrow.Day != "Вторник" {
		t.Errorf("unexpected days %s / %s", got.Today.Day, got.Tomorrow.Day)
	}
	if len(got.Today.Slots) != 2 || got.Today.Slots[0].Subject != "Матанализ" {
		t.Errorf("unexpected today slots %+v", got.Today.Slots)
	}
	if len(got.Tomorrow.Slots) != 0 {
		t.Errorf("expected no classes tomorrow, got %+v", got.Tomorrow.Slots)
	}
	if source.gotRef.Day() != 19 || source.gotRef.Location() != loc {
		t.Errorf("expected reference date 19th in UTC+8, got %v", source.gotRef)
	}
	if got.TodayImage.Name != TodayName || got.TomorrowImage.Name != TomorrowName {
		t.Errorf("unexpected artifact names %s, %s", got.TodayImage.Name, got.TomorrowImage.Name)
	}
	if got.Week != 1 || got.GroupURL != source.groupURL || got.Institution != "ВСГУТУ" {
		t.Errorf("unexpected metadata %+v", got)
	}

	for _, a := range []Artifact{got.TodayImage, got.TomorrowImage} {
		stored, err := afero.ReadFile(mem, "images/"+a.Name)
		if err != nil {
			t.Fatalf("expected %s to be stored: %v", a.Name, err)
		}
		if !bytes.Equal(stored, a.PNG) {
			t.Errorf("%s: stored bytes differ from returned bytes", a.Name)
		}
		if _, err := png.Decode(bytes.NewReader(stored)); err != nil {
			t.Errorf("%s: not a png: %v", a.Name, err)
		}
	}

	export := got.Export()
	if len(export.Days) != 2 || export.Group != "Б735" || len(export.Schedule) != 3 {
		t.Errorf("unexpected export %+v", export)
	}
}

func TestGenerateDailyImages_Overwrites(t *testing.T) {
	source := &fakePlugin{groupURL: "b735.htm"}
	p, mem := newPipeline(t, source)

	afero.WriteFile(mem, "images/"+TodayName, []byte("stale"), 0644)

	if _, err := p.GenerateDailyImages("Б735"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := afero.ReadFile(mem, "images/"+TodayName)
	if bytes.Equal(stored, []byte("stale")) {
		t.Errorf("expected stale artifact to be overwritten")
	}
}

func TestGenerateDailyImages_GroupNotFound(t *testing.T) {
	source := &fakePlugin{findErr: model.ErrGroupNotFound}
	p, mem := newPipeline(t, source)

	_, err := p.GenerateDailyImages("Б999")
	if !errors.Is(err, model.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
	if source.calls != 1 {
		t.Errorf("expected no timetable fetch after not found, got %d calls", source.calls)
	}
	if exists, _ := afero.Exists(mem, "images/"+TodayName); exists {
		t.Errorf("expected no artifacts on failure")
	}
}

func TestGenerateDailyImages_ParseError(t *testing.T) {
	source := &fakePlugin{groupURL: "b735.htm", timetableErr: &model.ParseError{Reason: "time header row is missing"}}
	p, mem := newPipeline(t, source)

	_, err := p.GenerateDailyImages("Б735")
	var perr *model.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if exists, _ := afero.Exists(mem, "images/"+TomorrowName); exists {
		t.Errorf("expected no artifacts on failure")
	}
}

func TestStorage_SaveLoad(t *testing.T) {
	s := NewStorage(afero.NewMemMapFs(), "out/images")

	if err := s.Save(Artifact{Name: TodayName, PNG: []byte("one")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Save(Artifact{Name: TodayName, PNG: []byte("two")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := s.Load(TodayName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "two" {
		t.Errorf("expected last write to win, got %q", data)
	}
	if s.Path(TodayName) != "out/images/today_schedule.png" {
		t.Errorf("unexpected path %s", s.Path(TodayName))
	}
}
