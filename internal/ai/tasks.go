package ai

import (
	"context"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/unipath/counsel-svc/internal/domain"
)

// TaskSuggestion is one oracle-proposed to-do item.
type TaskSuggestion struct {
	Title       string
	Description string
}

const maxSuggestedTasks = 5

// defaultTasks is the fallback when the oracle cannot be reached or its
// reply cannot be parsed into a single task.
var defaultTasks = []TaskSuggestion{
	{
		Title:       "Complete Your Profile",
		Description: "Make sure all sections of your profile are filled out accurately.",
	},
	{
		Title:       "Research Target Universities",
		Description: "Look into universities that match your academic background and budget.",
	},
}

// TaskPlanner asks the oracle for an initial set of actionable tasks.
type TaskPlanner struct {
	gen     ContentGenerator
	logger  *zap.Logger
	timeout time.Duration
}

func NewTaskPlanner(gen ContentGenerator, logger *zap.Logger) *TaskPlanner {
	return &TaskPlanner{gen: gen, logger: logger, timeout: defaultTimeout}
}

// InitialTasks generates 3-5 starter tasks for the student's current stage.
// Falls back to defaults on any failure.
func (t *TaskPlanner) InitialTasks(ctx context.Context, name string, p *domain.StudentProfile, stage string) []TaskSuggestion {
	if t == nil || t.gen == nil {
		return defaultTasks
	}

	tctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	raw, err := t.gen.GenerateContent(tctx, taskPrompt(name, p, stage))
	if err != nil {
		t.logger.Warn("oracle task generation failed", zap.Error(err))
		return defaultTasks
	}

	tasks := parseTaskList(raw)
	if len(tasks) == 0 {
		return defaultTasks
	}
	return tasks
}

// parseTaskList reads numbered "N. Title - Description" lines.
func parseTaskList(raw string) []TaskSuggestion {
	var tasks []TaskSuggestion

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !unicode.IsDigit(rune(line[0])) {
			continue
		}

		if _, rest, found := strings.Cut(line, "."); found {
			line = strings.TrimSpace(rest)
		}

		title, desc, _ := strings.Cut(line, "-")
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}

		tasks = append(tasks, TaskSuggestion{
			Title:       title,
			Description: strings.TrimSpace(desc),
		})
		if len(tasks) == maxSuggestedTasks {
			break
		}
	}

	return tasks
}
