// Package actions scans counsellor-generated text for embedded directives,
// executes them against persistent state, and rewrites the text with
// per-directive feedback. Parsing and execution are separate passes so the
// directive syntax never reaches the end user.
package actions

import (
	"regexp"
	"strings"
)

// Directive grammar: <<<ACTION:NAME:PARAM>>> with optional whitespace around
// the colons. NAME is uppercase letters only.
var directivePattern = regexp.MustCompile(`<<<ACTION\s*:\s*([A-Z]+)\s*:\s*(.*?)>>>`)

type Kind string

const (
	KindShortlist Kind = "SHORTLIST"
	KindLock      Kind = "LOCK"
	KindTask      Kind = "TASK"
)

// Directive is the tagged variant decoded from one tag. For SHORTLIST and
// LOCK, Name holds the university name; for TASK, Title and Description hold
// the split parameter. Unrecognized kinds keep their raw parameter in Name
// and are reported as failures at execution time, not dropped.
type Directive struct {
	Kind        Kind
	Name        string
	Title       string
	Description string
}

// Parse strips every directive tag from text and returns the cleaned prose
// together with the directives in encounter order. Text without directives is
// returned unchanged with a nil slice.
func Parse(text string) (string, []Directive) {
	matches := directivePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	cleaned := directivePattern.ReplaceAllString(text, "")

	directives := make([]Directive, 0, len(matches))
	for _, m := range matches {
		directives = append(directives, decode(m[1], strings.TrimSpace(m[2])))
	}
	return cleaned, directives
}

func decode(kind, param string) Directive {
	d := Directive{Kind: Kind(kind)}
	switch d.Kind {
	case KindTask:
		title, desc, _ := strings.Cut(param, "|")
		d.Title = strings.TrimSpace(title)
		d.Description = strings.TrimSpace(desc)
	default:
		d.Name = param
	}
	return d
}
