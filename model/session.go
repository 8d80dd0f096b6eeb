package model

import "github.com/google/uuid"

type SessionStatus string

const (
	StatusIdle       SessionStatus = "idle"
	StatusSubmitting SessionStatus = "submitting"
	StatusSummarized SessionStatus = "summarized"
	StatusAnswering  SessionStatus = "answering"
)

// Session holds everything the pipeline knows about one user's current
// video. It lives in memory only and is emptied on reset.
type Session struct {
	ID     uuid.UUID
	Status SessionStatus

	VideoID  YoutubeVideoID
	Metadata *VideoMetadata
	Summary  *Summary
	QA       *QAExchange

	// Err is the failure of the last submission or question, if any.
	Err error

	// Epoch increments on every reset and resubmission. A network call
	// that finishes with a stale epoch had its session reset underneath
	// it and its result is discarded.
	Epoch int
}

// Clone returns a deep copy of the session. The pipeline hands copies to
// its callers so they can read fields without synchronizing with commits
// on the live record.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	clone := *s
	if s.Metadata != nil {
		md := *s.Metadata
		clone.Metadata = &md
	}
	if s.Summary != nil {
		summary := *s.Summary
		summary.Sections = append([]string(nil), s.Summary.Sections...)
		clone.Summary = &summary
	}
	if s.QA != nil {
		qa := *s.QA
		clone.QA = &qa
	}

	return &clone
}
