package action

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/thirteen37/comment-divider/internal/divider"
	"github.com/thirteen37/comment-divider/internal/editor"
)

// Notifier reports a failed command to the user without interrupting them.
type Notifier interface {
	Notify(err error)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(err error)

// Notify calls f(err).
func (f NotifierFunc) Notify(err error) { f(err) }

// LogNotifier reports errors through a logger.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify logs err at error level.
func (n LogNotifier) Notify(err error) {
	n.Logger.Error("divider command failed", slog.Any("error", err))
}

// TargetLines returns the lines covered by selections, highest first.
//
// An empty selection targets its active line. A selection ending at column
// 0 of a later line does not target that last line.
func TargetLines(selections []editor.Selection) []int {
	seen := make(map[int]bool)
	var lines []int

	add := func(n int) {
		if !seen[n] {
			seen[n] = true
			lines = append(lines, n)
		}
	}

	for _, sel := range selections {
		if sel.IsEmpty() {
			add(sel.Active.Line)
			continue
		}

		start, end := sel.Start(), sel.End()
		last := end.Line
		if end.Character == 0 && end.Line > start.Line {
			last--
		}
		for n := start.Line; n <= last; n++ {
			add(n)
		}
	}

	slices.SortFunc(lines, func(a, b int) int { return b - a })
	return lines
}

// Runner executes divider commands against the active document.
type Runner struct {
	action   *Action
	notifier Notifier
	logger   *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for per-line debug records.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner. Failures are reported to notifier.
func NewRunner(a *Action, notifier Notifier, opts ...RunnerOption) *Runner {
	r := &Runner{
		action:   a,
		notifier: notifier,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run applies a divider of type t to every selected line of the active
// document, highest line first. Without an active document it does nothing.
//
// The first failure stops the batch and is reported to the notifier; lines
// already replaced stay replaced. Run never returns or panics with the error.
func (r *Runner) Run(host editor.Host, t divider.Type) {
	if err := r.run(host, t); err != nil {
		r.notifier.Notify(err)
	}
}

func (r *Runner) run(host editor.Host, t divider.Type) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: unexpected failure: %v", t, p)
		}
	}()

	doc, ok := host.ActiveDocument()
	if !ok {
		return nil
	}

	lang := doc.LanguageID()
	for _, n := range TargetLines(doc.Selections()) {
		r.logger.Debug("applying divider",
			slog.String("type", string(t)),
			slog.String("lang", lang),
			slog.Int("line", n+1))

		if err := r.action.Apply(doc, t, n); err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}
	}
	return nil
}
