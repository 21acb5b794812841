package recognizer

import (
	"context"
	"time"

	"smart-planner/internal/model"
	"smart-planner/pkg/datemath"
	"smart-planner/pkg/llmprovider"
	pkgLog "smart-planner/pkg/log"
)

// ContentGenerator is the slice of llmprovider.Manager the recognizer
// needs. Available must be cheap; it gates the remote path entirely.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	Available() bool
}

// Recognizer turns raw utterances into typed intent results for one
// session. Not safe for concurrent use; the orchestrator serializes turns.
type Recognizer struct {
	llm     ContentGenerator // nil in local-only mode
	dates   *datemath.Parser
	l       pkgLog.Logger
	now     func() time.Time
	convCtx *ConversationContext
}

// New creates a Recognizer for the given session. llm may be nil, in which
// case every turn uses the deterministic keyword path.
func New(sessionID string, llm ContentGenerator, dates *datemath.Parser, l pkgLog.Logger) *Recognizer {
	return &Recognizer{
		llm:   llm,
		dates: dates,
		l:     l,
		now:   time.Now,
		convCtx: &ConversationContext{
			SessionID: sessionID,
			State:     CurrentState{CollectedEntities: model.Entities{}},
		},
	}
}

// RemoteAvailable reports whether the remote classification path is
// configured and usable.
func (r *Recognizer) RemoteAvailable() bool {
	return r.llm != nil && r.llm.Available()
}
