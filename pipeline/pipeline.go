// Package pipeline sequences the summarization flow: URL to identifier,
// identifier to metadata, metadata to summary, and the follow-up
// question-answer cycle. It owns the session state and its transitions.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/masaoka108/ai-youtube-summary-api/fetch"
	"github.com/masaoka108/ai-youtube-summary-api/model"
	"github.com/masaoka108/ai-youtube-summary-api/storage"
	"github.com/masaoka108/ai-youtube-summary-api/summarize"
	"golang.org/x/exp/slog"
)

const DefaultTimeout = 30 * time.Second

type Pipeline struct {
	metadata  fetch.MetadataFetcher
	generator summarize.Generator
	sessions  storage.SessionRepository
	timeout   time.Duration
	logger    *slog.Logger

	// Guards all session state transitions. Network calls happen
	// outside of it.
	mu sync.Mutex
}

func New(metadata fetch.MetadataFetcher, generator summarize.Generator, sessions storage.SessionRepository, timeout time.Duration, logger *slog.Logger) *Pipeline {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Pipeline{
		metadata:  metadata,
		generator: generator,
		sessions:  sessions,
		timeout:   timeout,
		logger:    logger,
	}
}

// Submit runs a full summarization: extract the video identifier, fetch
// metadata, generate the summary. Steps run in that order and the first
// failure short-circuits the rest, returning the session to idle with
// the error recorded. Pass uuid.Nil to start a fresh session; an existing
// session id supersedes whatever that session held before.
func (p *Pipeline) Submit(ctx context.Context, sessionID uuid.UUID, rawURL string) (*model.Session, error) {
	p.mu.Lock()
	session, err := p.loadOrCreate(sessionID)
	if err != nil {
		p.mu.Unlock()
		return nil, err
	}
	if session.Status == model.StatusSubmitting || session.Status == model.StatusAnswering {
		p.mu.Unlock()
		return nil, model.ErrBusy
	}

	session.Epoch++
	epoch := session.Epoch
	session.Status = model.StatusSubmitting
	session.VideoID, session.Metadata, session.Summary, session.QA, session.Err = "", nil, nil, nil, nil
	if err := p.sessions.Save(session); err != nil {
		p.mu.Unlock()
		return nil, err
	}
	p.mu.Unlock()

	videoID, ok := fetch.ExtractVideoID(rawURL)
	if !ok {
		return p.fail(session, epoch, fmt.Errorf("%w: %q", model.ErrInvalidURL, rawURL))
	}

	p.logger.Info("fetching video metadata", slog.String("video_id", string(videoID)))
	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	md, err := p.metadata.FetchMetadata(fetchCtx, videoID)
	if err != nil {
		return p.fail(session, epoch, err)
	}

	p.logger.Info("generating summary", slog.String("video_id", string(videoID)))
	genCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	raw, err := p.generator.Summarize(genCtx, md)
	if err != nil {
		return p.fail(session, epoch, err)
	}

	sections := summarize.SplitSections(raw)
	if len(sections) == 0 {
		return p.fail(session, epoch, fmt.Errorf("%w: generator returned no text", model.ErrGeneration))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if session.Epoch != epoch {
		return session.Clone(), model.ErrSuperseded
	}
	session.Status = model.StatusSummarized
	session.VideoID = videoID
	session.Metadata = &md
	session.Summary = &model.Summary{
		Title:        md.Title,
		ThumbnailURL: md.ThumbnailURL,
		Sections:     sections,
	}
	if err := p.sessions.Save(session); err != nil {
		return nil, err
	}
	p.logger.Info("summary ready", slog.String("id", session.ID.String()), slog.Int("sections", len(sections)))

	return session.Clone(), nil
}

// Ask answers a follow-up question using the session's metadata and
// summary as context. A blank question is a no-op, not an error. The new
// answer replaces the previous one.
func (p *Pipeline) Ask(ctx context.Context, sessionID uuid.UUID, question string) (*model.Session, error) {
	question = strings.TrimSpace(question)

	p.mu.Lock()
	session, err := p.sessions.Find(sessionID)
	if err != nil {
		p.mu.Unlock()
		return nil, err
	}
	if session.Status == model.StatusSubmitting || session.Status == model.StatusAnswering {
		p.mu.Unlock()
		return nil, model.ErrBusy
	}
	if session.Metadata == nil || session.Summary == nil {
		p.mu.Unlock()
		return nil, model.ErrNoSummary
	}
	if question == "" {
		snapshot := session.Clone()
		p.mu.Unlock()
		return snapshot, nil
	}

	epoch := session.Epoch
	md := *session.Metadata
	summaryText := session.Summary.Text()
	session.Status = model.StatusAnswering
	p.mu.Unlock()

	p.logger.Info("generating answer", slog.String("id", session.ID.String()))
	genCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	answer, err := p.generator.Answer(genCtx, question, md, summaryText)

	p.mu.Lock()
	defer p.mu.Unlock()
	if session.Epoch != epoch {
		return session.Clone(), model.ErrSuperseded
	}
	session.Status = model.StatusSummarized
	if err != nil {
		session.Err = err
		if saveErr := p.sessions.Save(session); saveErr != nil {
			return nil, saveErr
		}
		return session.Clone(), err
	}
	session.QA = &model.QAExchange{Question: question, Answer: answer}
	session.Err = nil
	if err := p.sessions.Save(session); err != nil {
		return nil, err
	}

	return session.Clone(), nil
}

// Get returns the current state of a session. The returned session is a
// copy; the live record never leaves the pipeline.
func (p *Pipeline) Get(sessionID uuid.UUID) (*model.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, err := p.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	return session.Clone(), nil
}

// Reset empties a session. Anything still in flight for it will find the
// epoch changed and discard its result.
func (p *Pipeline) Reset(sessionID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, err := p.sessions.Find(sessionID)
	if err != nil {
		return err
	}
	session.Epoch++
	session.Status = model.StatusIdle
	session.VideoID, session.Metadata, session.Summary, session.QA, session.Err = "", nil, nil, nil, nil

	return p.sessions.Save(session)
}

// Discard resets a session and removes it from the repository.
func (p *Pipeline) Discard(sessionID uuid.UUID) error {
	if err := p.Reset(sessionID); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sessions.Delete(sessionID)
}

func (p *Pipeline) loadOrCreate(sessionID uuid.UUID) (*model.Session, error) {
	if sessionID == uuid.Nil {
		session := &model.Session{
			ID:     uuid.New(),
			Status: model.StatusIdle,
		}
		if err := p.sessions.Save(session); err != nil {
			return nil, err
		}
		return session, nil
	}

	return p.sessions.Find(sessionID)
}

// fail returns the session to idle with the error recorded, unless a
// reset already superseded this attempt.
func (p *Pipeline) fail(session *model.Session, epoch int, err error) (*model.Session, error) {
	p.logger.Error("summarization failed", err, slog.String("id", session.ID.String()))

	p.mu.Lock()
	defer p.mu.Unlock()
	if session.Epoch == epoch {
		session.Status = model.StatusIdle
		session.Err = err
		if saveErr := p.sessions.Save(session); saveErr != nil {
			return nil, saveErr
		}
	}

	return session.Clone(), err
}
