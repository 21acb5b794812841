package orchestrator

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-planner/internal/recognizer"
	"smart-planner/internal/router"
	"smart-planner/internal/workflow"
	"smart-planner/pkg/datemath"
	"smart-planner/pkg/log"
)

// Config bounds the in-memory session store. Sessions beyond
// MaxSessions or idle past TTL are evicted; this is the external
// eviction policy the conversational core itself does not carry.
type Config struct {
	MaxSessions int
	TTL         time.Duration
}

// Orchestrator owns the session store and sequences
// recognize → route → workflow per turn. There are no process-wide
// singletons: every session gets its own recognizer, router and engine.
type Orchestrator struct {
	sessions *expirable.LRU[string, *Session]
	llm      recognizer.ContentGenerator // nil in local-only mode
	dates    *datemath.Parser
	l        log.Logger
}

// New creates a new Orchestrator. llm may be nil; recognition then runs
// on the deterministic keyword path only.
func New(cfg Config, llm recognizer.ContentGenerator, dates *datemath.Parser, l log.Logger) *Orchestrator {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL, _ = time.ParseDuration(DefaultSessionTTL)
	}

	return &Orchestrator{
		sessions: expirable.NewLRU[string, *Session](cfg.MaxSessions, nil, cfg.TTL),
		llm:      llm,
		dates:    dates,
		l:        l,
	}
}

// RemoteAvailable reports whether remote classification is configured.
func (o *Orchestrator) RemoteAvailable() bool {
	return o.llm != nil && o.llm.Available()
}

// session returns the session for id, creating it on first use.
func (o *Orchestrator) session(id string) *Session {
	if s, ok := o.sessions.Get(id); ok {
		return s
	}
	s := &Session{
		ID:         id,
		Recognizer: recognizer.New(id, o.llm, o.dates, o.l),
		Router:     router.New(id, o.l),
		Engine:     workflow.New(o.l),
	}
	o.sessions.Add(id, s)
	return s
}
