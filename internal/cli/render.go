package cli

import (
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/domain"
)

// RenderTasks writes one formatted line per task: right-aligned id,
// left-aligned name truncated to the configured width, status label and
// creation timestamp. Alignment is applied before decoration so escape
// sequences never skew the columns. Rendering has no side effects
// beyond writing to w.
func RenderTasks(w io.Writer, tasks []domain.Task, styler Styler, display config.DisplayConfig) {
	for _, task := range tasks {
		id := fmt.Sprintf("%*d", display.IDWidth, task.ID)
		name := fmt.Sprintf("%-*s", display.NameWidth, Truncate(task.Name, display.NameWidth))
		status := fmt.Sprintf("%-8s", task.Status())

		statusIntent := IntentPending
		if task.Done {
			statusIntent = IntentDone
		}

		fmt.Fprintf(w, "%s | %s | %s %s\n",
			styler.Decorate(id, IntentID),
			styler.Decorate(name, IntentName),
			styler.Decorate(status, statusIntent),
			styler.Decorate(task.DateAdded.Format(display.TimeFormat), IntentTimestamp),
		)
	}
}

// Truncate shortens input to at most max characters, replacing the tail
// with a three-character ellipsis. Strings already within the limit are
// returned unchanged.
func Truncate(input string, max int) string {
	runes := []rune(input)
	if len(runes) <= max {
		return input
	}
	if max < 4 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
