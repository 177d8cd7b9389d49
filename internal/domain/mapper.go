package domain

import (
	"fmt"

	"todo/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	var isDone int64
	if domainTask.Done {
		isDone = 1
	}
	return sqlite.Task{
		ID:        domainTask.ID,
		Name:      domainTask.Name,
		DateAdded: sqlite.FormatTimeForDB(domainTask.DateAdded),
		IsDone:    isDone,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) (Task, error) {
	dateAdded, err := sqlite.ParseTimeFromDB(dbTask.DateAdded)
	if err != nil {
		return Task{}, fmt.Errorf("parsing date_added of task %d: %w", dbTask.ID, err)
	}
	return Task{
		ID:        dbTask.ID,
		Name:      dbTask.Name,
		DateAdded: dateAdded,
		Done:      dbTask.IsDone != 0,
	}, nil
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) ([]Task, error) {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTask, err := m.FromDatabase(*task)
		if err != nil {
			return nil, err
		}
		domainTasks[i] = domainTask
	}
	return domainTasks, nil
}
