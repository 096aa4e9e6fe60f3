package ai

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/unipath/counsel-svc/internal/domain"
)

const (
	apologyRateLimited = "I'm receiving too many requests right now. Please give me a minute to rest!"
	apologyGeneric     = "I'm having trouble responding right now. Please try again in a moment."
)

// Counsellor turns a student question plus profile context into counselling
// text. The reply may embed action directives for the pipeline to execute.
type Counsellor struct {
	gen     ContentGenerator
	logger  *zap.Logger
	timeout time.Duration
}

func NewCounsellor(gen ContentGenerator, logger *zap.Logger) *Counsellor {
	return &Counsellor{gen: gen, logger: logger, timeout: defaultTimeout}
}

// Chat never returns an error to the caller: oracle failures degrade to a
// short apologetic text so the conversation keeps flowing.
func (c *Counsellor) Chat(ctx context.Context, name string, p *domain.StudentProfile, stage, userMessage string) string {
	if c == nil || c.gen == nil {
		return apologyGeneric
	}

	prompt := chatPrompt(name, p, stage, userMessage)

	c.logger.Debug("oracle chat request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", truncateForLog(prompt, logPreviewRunes)),
	)

	tctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.gen.GenerateContent(tctx, prompt)
	if err != nil {
		c.logger.Warn("oracle chat failed", zap.Error(err))
		if strings.Contains(err.Error(), "429") {
			return apologyRateLimited
		}
		return apologyGeneric
	}

	return out
}
