package cli

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"todo/internal/config"
	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/validation"
)

// mockAPI implements the api.API interface for testing
type mockAPI struct {
	tasks      map[int64]*domain.Task
	nextID     int64
	resetCalls int
	failWith   error
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

func (m *mockAPI) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		ve := validation.NewValidationError()
		ve.AddRequiredError("task name")
		return nil, ve
	}

	task := &domain.Task{
		ID:        m.nextID,
		Name:      trimmed,
		DateAdded: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	m.tasks[task.ID] = task
	m.nextID++
	return task, nil
}

func (m *mockAPI) ListTasks(ctx context.Context, sortByStatus bool) ([]domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var tasks []domain.Task
	for _, task := range m.tasks {
		tasks = append(tasks, *task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if sortByStatus && tasks[i].Done != tasks[j].Done {
			return !tasks[i].Done
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

func (m *mockAPI) ToggleTask(ctx context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	task, ok := m.tasks[id]
	if !ok {
		return errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	task.Done = !task.Done
	return nil
}

func (m *mockAPI) RemoveTask(ctx context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.tasks[id]; !ok {
		return errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockAPI) ResetTasks(ctx context.Context) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.tasks = make(map[int64]*domain.Task)
	m.nextID = 1
	m.resetCalls++
	return nil
}

// setupTestApp builds an App wired to a mock API, an in-memory output
// buffer and the given stdin content
func setupTestApp(t *testing.T, stdin string) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()

	cfg := config.NewConfig()
	cfg.Database.Dir = t.TempDir()
	cfg.Display.Color = "never"

	mock := newMockAPI()
	out := &bytes.Buffer{}

	var in io.Reader = strings.NewReader(stdin)
	app := NewAppWithIO(mock, cfg, in, out, NewPlainStyler())
	return app, mock, out
}
