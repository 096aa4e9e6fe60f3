package actions

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Executor performs a single directive against persistent state. Shortlist
// reports already=true when the entry existed before the call, which the
// pipeline annotates instead of treating as a failure.
type Executor interface {
	Shortlist(ctx context.Context, userID uint, name string) (universityName string, already bool, err error)
	Lock(ctx context.Context, userID uint, name string) (universityName string, err error)
	AddTask(ctx context.Context, userID uint, title, description string) error
}

type Pipeline struct {
	exec   Executor
	logger *zap.Logger
}

func NewPipeline(exec Executor, logger *zap.Logger) *Pipeline {
	return &Pipeline{exec: exec, logger: logger}
}

// Run strips directives from text, executes each in order, and appends one
// feedback line per directive after the cleaned prose. A failing directive
// never aborts the ones after it.
func (p *Pipeline) Run(ctx context.Context, userID uint, text string) string {
	cleaned, directives := Parse(text)
	if len(directives) == 0 {
		return text
	}

	feedback := make([]string, 0, len(directives))
	for _, d := range directives {
		feedback = append(feedback, p.execute(ctx, userID, d))
	}

	return cleaned + "\n\n" + strings.Join(feedback, "\n")
}

func (p *Pipeline) execute(ctx context.Context, userID uint, d Directive) (line string) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("action panicked",
				zap.String("kind", string(d.Kind)),
				zap.Uint("user_id", userID),
				zap.Any("panic", r),
			)
			line = fmt.Sprintf("⚠️ Action Failed: %v", r)
		}
	}()

	switch d.Kind {
	case KindShortlist:
		name, already, err := p.exec.Shortlist(ctx, userID, d.Name)
		if err != nil {
			return p.failed(d, err)
		}
		if already {
			return "✓ Shortlisted: " + name + " (already in list)"
		}
		return "✓ Shortlisted: " + name

	case KindLock:
		name, err := p.exec.Lock(ctx, userID, d.Name)
		if err != nil {
			return p.failed(d, err)
		}
		return "✓ Locked: " + name

	case KindTask:
		if d.Title == "" {
			return "⚠️ Action Failed: task title is required"
		}
		if err := p.exec.AddTask(ctx, userID, d.Title, d.Description); err != nil {
			return p.failed(d, err)
		}
		return "✓ Task Added: " + d.Title

	default:
		return fmt.Sprintf("⚠️ Action Failed: unknown action %q", string(d.Kind))
	}
}

func (p *Pipeline) failed(d Directive, err error) string {
	p.logger.Warn("action failed",
		zap.String("kind", string(d.Kind)),
		zap.Error(err),
	)
	return "⚠️ Action Failed: " + err.Error()
}
