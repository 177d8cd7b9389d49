package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"todo/internal/errors"
	"todo/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for task persistence operations
type Repository interface {
	// CreateTask inserts a new task; the store assigns its id and
	// creation timestamp
	CreateTask(ctx context.Context, task *Task) error

	// GetTask retrieves a task by ID
	GetTask(ctx context.Context, id int64) (*Task, error)

	// ListTasks retrieves all tasks. With sortByStatus, pending tasks
	// come before done tasks with ids ascending within each group;
	// otherwise tasks are ordered by ascending id.
	ListTasks(ctx context.Context, sortByStatus bool) ([]*Task, error)

	// ToggleTask flips the done flag of the task with the given id.
	// A not-found error is returned when no such task exists.
	ToggleTask(ctx context.Context, id int64) error

	// DeleteTask removes the task with the given id.
	// A not-found error is returned when no such task exists.
	DeleteTask(ctx context.Context, id int64) error

	// ResetTasks deletes all tasks and resets the id counter so the
	// next insert starts again at 1
	ResetTasks(ctx context.Context) error

	// Close releases the database connection
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task. The id and date_added columns are
// assigned by the store.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `INSERT INTO tasks (name) VALUES (?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Name)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, name, date_added, is_done
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in the requested order
func (r *SQLiteRepository) ListTasks(ctx context.Context, sortByStatus bool) ([]*Task, error) {
	query := `
	SELECT id, name, date_added, is_done
	FROM tasks
	ORDER BY id ASC`
	if sortByStatus {
		query = `
	SELECT id, name, date_added, is_done
	FROM tasks
	ORDER BY is_done ASC, id ASC`
	}

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// ToggleTask flips the done flag of a task
func (r *SQLiteRepository) ToggleTask(ctx context.Context, id int64) error {
	query := `UPDATE tasks SET is_done = 1 - is_done WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// ResetTasks deletes all tasks and resets the auto-increment counter.
// Both statements run in one transaction so a reset is all-or-nothing.
func (r *SQLiteRepository) ResetTasks(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin reset", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		tx.Rollback()
		return HandleDatabaseError("delete tasks", err)
	}

	// sqlite_sequence only exists once an AUTOINCREMENT insert has
	// happened; a missing table means the counter is already fresh
	if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'tasks'`); err != nil {
		if !isMissingSequenceTable(err) {
			tx.Rollback()
			return HandleDatabaseError("reset id counter", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit reset", err)
	}
	return nil
}

func isMissingSequenceTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table: sqlite_sequence")
}
