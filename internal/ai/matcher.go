// Package ai adapts the text-generation oracle to the match and chat
// contracts. Every failure path degrades: match scoring returns a sentinel
// result that tells the caller to fall back to the rule-based engine, chat
// returns an apologetic message.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/match"
)

// ContentGenerator is the oracle: prompt text in, completion text out.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

const (
	defaultTimeout  = 30 * time.Second
	logPreviewRunes = 200
)

type Matcher struct {
	gen     ContentGenerator
	logger  *zap.Logger
	timeout time.Duration
}

func NewMatcher(gen ContentGenerator, logger *zap.Logger) *Matcher {
	return &Matcher{gen: gen, logger: logger, timeout: defaultTimeout}
}

type oracleMatch struct {
	MatchScore *int   `json:"match_score"`
	Category   string `json:"category"`
	Reasoning  string `json:"reasoning"`
}

// Evaluate asks the oracle to score one university for one student. It never
// returns an error: any failure (transport, empty reply, malformed JSON,
// missing keys) yields a zero-score sentinel with ErrDetails set, and the
// caller substitutes the rule-based engine.
func (m *Matcher) Evaluate(ctx context.Context, name string, p *domain.StudentProfile, u *domain.University) match.Result {
	if m == nil || m.gen == nil {
		return sentinel(errors.New("oracle is not configured"))
	}

	prompt := matchPrompt(name, p, u)

	tctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	raw, err := m.gen.GenerateContent(tctx, prompt)
	if err != nil {
		return sentinel(err)
	}

	m.logger.Debug("oracle match response",
		zap.String("university", u.Name),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", truncateForLog(raw, logPreviewRunes)),
	)

	parsed, err := parseMatchResponse(raw)
	if err != nil {
		m.logger.Warn("oracle match parse failed", zap.Error(err))
		return sentinel(err)
	}

	score := *parsed.MatchScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	category := parsed.Category
	if !domain.ValidBucket(category) {
		category = match.Categorize(score, u.AcceptanceRate, u.Ranking)
	}

	return match.Result{
		Score:    score,
		Category: category,
		WhyFits:  parsed.Reasoning,
		Source:   match.SourceAI,
	}
}

func sentinel(err error) match.Result {
	return match.Result{
		Score:      0,
		Source:     match.SourceAI,
		ErrDetails: err.Error(),
	}
}

func parseMatchResponse(raw string) (*oracleMatch, error) {
	span := extractJSON(raw)
	if span == "" {
		return nil, errors.New("no JSON object in oracle response")
	}

	var out oracleMatch
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil, fmt.Errorf("parse oracle response: %w", err)
	}
	if out.MatchScore == nil {
		return nil, errors.New("oracle response is missing match_score")
	}
	return &out, nil
}

// extractJSON strips code-fence markers and returns the span between the
// first '{' and the last '}'.
func extractJSON(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return raw[start : end+1]
}

func truncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
