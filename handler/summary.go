package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/masaoka108/ai-youtube-summary-api/model"
	"github.com/masaoka108/ai-youtube-summary-api/pipeline"
	"github.com/masaoka108/ai-youtube-summary-api/render"
	"golang.org/x/exp/slog"
)

// SummaryAPI exposes the summarization pipeline:
//
//	POST   /summaries                  submit a video URL
//	GET    /summaries/{id}             current session state
//	POST   /summaries/{id}/questions   ask a follow-up question
//	DELETE /summaries/{id}             reset and discard the session
type SummaryAPI struct {
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
}

func NewSummaryAPI(pl *pipeline.Pipeline, logger *slog.Logger) *SummaryAPI {
	return &SummaryAPI{
		pipeline: pl,
		logger:   logger,
	}
}

func (s *SummaryAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, tail := ShiftPath(r.URL.Path)

	if head == "" {
		if r.Method == http.MethodPost {
			s.Create(w, r)
			return
		}
		Error(w, http.StatusMethodNotAllowed, "method not allowed", fmt.Errorf("method %s is not supported on the summaries collection", r.Method))
		return
	}

	sessionID, err := uuid.Parse(head)
	if err != nil {
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("%q is not a valid session id", head))
		return
	}

	sub, _ := ShiftPath(tail)
	switch {
	case sub == "" && r.Method == http.MethodGet:
		s.Get(w, r, sessionID)
	case sub == "" && r.Method == http.MethodDelete:
		s.Delete(w, r, sessionID)
	case sub == "questions" && r.Method == http.MethodPost:
		s.Ask(w, r, sessionID)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the summaries api", r.Method, sub))
	}
}

type createSummaryRequest struct {
	URL string `json:"url"`
}

type askQuestionRequest struct {
	Question string `json:"question"`
}

type sessionResponse struct {
	ID                   string   `json:"id"`
	Status               string   `json:"status"`
	VideoID              string   `json:"video_id,omitempty"`
	Title                string   `json:"title,omitempty"`
	ThumbnailURL         string   `json:"thumbnail_url,omitempty"`
	FallbackThumbnailURL string   `json:"fallback_thumbnail_url,omitempty"`
	Sections             []string `json:"sections,omitempty"`
	SummaryHTML          string   `json:"summary_html,omitempty"`
	Question             string   `json:"question,omitempty"`
	Answer               string   `json:"answer,omitempty"`
	AnswerHTML           string   `json:"answer_html,omitempty"`
	Error                string   `json:"error,omitempty"`
}

func (s *SummaryAPI) Create(w http.ResponseWriter, r *http.Request) {
	var req createSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "could not decode request body", err)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		Error(w, http.StatusBadRequest, "missing url", errors.New("url field is required"))
		return
	}

	session, err := s.pipeline.Submit(r.Context(), uuid.Nil, req.URL)
	if err != nil {
		s.returnErr(w, "could not summarize video", err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (s *SummaryAPI) Get(w http.ResponseWriter, _ *http.Request, sessionID uuid.UUID) {
	session, err := s.pipeline.Get(sessionID)
	if err != nil {
		s.returnErr(w, "could not find session", err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (s *SummaryAPI) Ask(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	var req askQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "could not decode request body", err)
		return
	}

	// A blank question is a no-op, not an error.
	if strings.TrimSpace(req.Question) == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	session, err := s.pipeline.Ask(r.Context(), sessionID, req.Question)
	if err != nil {
		s.returnErr(w, "could not answer question", err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (s *SummaryAPI) Delete(w http.ResponseWriter, _ *http.Request, sessionID uuid.UUID) {
	if err := s.pipeline.Discard(sessionID); err != nil {
		s.returnErr(w, "could not discard session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *SummaryAPI) returnErr(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidURL):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrVideoNotFound), errors.Is(err, model.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrBusy), errors.Is(err, model.ErrNoSummary), errors.Is(err, model.ErrSuperseded):
		status = http.StatusConflict
	case errors.Is(err, model.ErrTransport), errors.Is(err, model.ErrGeneration):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", err)
	}
	Error(w, status, message, err)
}

func toSessionResponse(session *model.Session) sessionResponse {
	resp := sessionResponse{
		ID:      session.ID.String(),
		Status:  string(session.Status),
		VideoID: string(session.VideoID),
	}
	if session.Metadata != nil {
		resp.FallbackThumbnailURL = session.Metadata.FallbackThumbnailURL
	}
	if session.Summary != nil {
		resp.Title = session.Summary.Title
		resp.ThumbnailURL = session.Summary.ThumbnailURL
		resp.Sections = session.Summary.Sections
		resp.SummaryHTML = render.Render(session.Summary.Text())
	}
	if session.QA != nil {
		resp.Question = session.QA.Question
		resp.Answer = session.QA.Answer
		resp.AnswerHTML = render.Render(session.QA.Answer)
	}
	if session.Err != nil {
		resp.Error = session.Err.Error()
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		Error(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}
	w.WriteHeader(status)
	w.Write(data)
}
