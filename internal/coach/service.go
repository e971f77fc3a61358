package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/llm"
)

// ErrNoProvider is returned when the coach has no LLM behind it.
var ErrNoProvider = errors.New("coach: no llm provider configured")

// Service generates coach notes.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger

	mu      sync.Mutex
	gen     int
	pending *Note
	err     error
	ready   bool
}

// NewService creates a coach. provider may be nil, in which case every
// request fails with ErrNoProvider.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// Enabled reports whether notes can be generated.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Note generates a note synchronously.
func (s *Service) Note(ctx context.Context, in Input) (*Note, error) {
	if !s.Enabled() {
		return nil, ErrNoProvider
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeCoachNote)

	maxTips := max(s.cfg.MaxTips, 1)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(in)}},
		Schema:      noteSchema(maxTips),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("coach note: %w", err)
	}

	var note Note
	if err := json.Unmarshal(resp.Content, &note); err != nil {
		return nil, fmt.Errorf("parse coach note: %w", err)
	}
	note.Summary = strings.TrimSpace(note.Summary)
	note.Warning = strings.TrimSpace(note.Warning)
	tips := note.FocusTips[:0]
	for _, t := range note.FocusTips {
		if t = strings.TrimSpace(t); t != "" {
			tips = append(tips, t)
		}
	}
	note.FocusTips = tips

	if note.Warning == "" && needsWarning(in.Roadmap) {
		note.Warning = in.Roadmap.Snapshot.Summary
		if note.Warning == "" {
			note.Warning = i18n.T(in.Locale, "feasibility.infeasible")
		}
	}
	return &note, nil
}

// RequestNote starts generation in the background. A newer request
// replaces the result of an older one.
func (s *Service) RequestNote(ctx context.Context, in Input) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.pending, s.err, s.ready = nil, nil, false
	s.mu.Unlock()

	go func() {
		note, err := s.Note(ctx, in)
		if err != nil {
			s.log.Warn("coach note unavailable", zap.Error(err))
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending, s.err, s.ready = note, err, true
	}()
}

// Result is a finished background request.
type Result struct {
	Note *Note
	Err  error
}

// ConsumeNote returns the finished background result and clears it. ok is
// false while generation is still running.
func (s *Service) ConsumeNote() (res Result, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Result{}, false
	}
	res = Result{Note: s.pending, Err: s.err}
	s.pending, s.err, s.ready = nil, nil, false
	return res, true
}
