// Package server HTTP ручки: адрес страницы группы и картинки на сегодня/завтра.
//
// Ошибки отдаются телом {"err": true, "message": ...} со статусом 200,
// как этого ждут существующие клиенты.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/notaneet/rasp03/logger"
	"github.com/notaneet/rasp03/model"
	"github.com/notaneet/rasp03/pipeline"
)

// Generator то, что сервер вызывает у пайплайна
type Generator interface {
	FindGroup(group string) (string, error)
	GenerateDailyImages(group string) (*pipeline.Artifacts, error)
}

type Server struct {
	secret string
	gen    Generator
	log    logger.Logger
	mux    *http.ServeMux
}

func New(secret string, gen Generator, log logger.Logger) *Server {
	s := &Server{secret: secret, gen: gen, log: log, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /schedule/{group}", s.handleGroup)
	s.mux.HandleFunc("GET /schedule/{day}/{group}", s.handleSchedule)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("listening on %s", addr)
	return srv.ListenAndServe()
}

type groupResponse struct {
	Group *string `json:"group"`
}

type errorResponse struct {
	Err     bool   `json:"err"`
	Message string `json:"message"`
}

func (s *Server) handleGroup(w http.ResponseWriter, r *http.Request) {
	group := r.PathValue("group")

	resp := groupResponse{}
	groupURL, err := s.gen.FindGroup(group)
	if err != nil {
		s.log.Warning("group %s: %v", group, err)
	} else {
		resp.Group = &groupURL
	}

	writeJSON(w, resp)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	day, group := r.PathValue("day"), r.PathValue("group")

	if err := validate(s.secret, day, r.Header.Get(TokenHeader)); err != nil {
		s.writeError(w, err)
		return
	}

	artifacts, err := s.gen.GenerateDailyImages(group)
	if err != nil {
		s.writeError(w, err)
		return
	}

	image := artifacts.TodayImage
	if day == DayTomorrow {
		image = artifacts.TomorrowImage
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(image.PNG); err != nil {
		s.log.Error("write %s: %v", image.Name, err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.log.Warning("request failed: %v", err)
	writeJSON(w, errorResponse{Err: true, Message: errorMessage(err)})
}

// errorMessage текст для клиента
func errorMessage(err error) string {
	var perr *model.ParseError
	switch {
	case errors.Is(err, ErrInvalidDay):
		return "Day type is not valid"
	case errors.Is(err, ErrAuth):
		return "Auth failed"
	case errors.Is(err, model.ErrGroupNotFound):
		return "Group not found"
	case errors.As(err, &perr):
		return "Parse failed"
	default:
		return "Error generate photo"
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
		s.log.Info("%s %s %s %s", id, r.Method, r.URL.Path, time.Since(start))
	})
}
