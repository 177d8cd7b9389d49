package api

import (
	"context"

	"todo/internal/domain"
	"todo/internal/repository/sqlite"
	"todo/internal/validation"
)

// API defines the interface for all task operations the CLI consumes.
type API interface {
	// AddTask validates and stores a new task, returning it with the
	// id and creation timestamp the store assigned
	AddTask(ctx context.Context, name string) (*domain.Task, error)

	// ListTasks returns all tasks, ordered by id or, with sortByStatus,
	// pending before done
	ListTasks(ctx context.Context, sortByStatus bool) ([]domain.Task, error)

	// ToggleTask flips the done flag of the task with the given id
	ToggleTask(ctx context.Context, id int64) error

	// RemoveTask deletes the task with the given id
	RemoveTask(ctx context.Context, id int64) error

	// ResetTasks deletes all tasks and resets the id counter
	ResetTasks(ctx context.Context) error
}

type apiImpl struct {
	repo      sqlite.Repository
	mapper    *domain.TaskMapper
	validator *validation.TaskValidator
}

// New creates a new API instance.
func New(repo sqlite.Repository, validator *validation.TaskValidator) API {
	return &apiImpl{
		repo:      repo,
		mapper:    domain.NewTaskMapper(),
		validator: validator,
	}
}

func (a *apiImpl) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	if err := a.validator.ValidateTaskName(name); err != nil {
		return nil, err
	}

	dbTask := &sqlite.Task{Name: a.validator.CleanTaskName(name)}
	if err := a.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	// Re-read the row so the store-assigned timestamp is included
	stored, err := a.repo.GetTask(ctx, dbTask.ID)
	if err != nil {
		return nil, err
	}

	task, err := a.mapper.FromDatabase(*stored)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (a *apiImpl) ListTasks(ctx context.Context, sortByStatus bool) ([]domain.Task, error) {
	dbTasks, err := a.repo.ListTasks(ctx, sortByStatus)
	if err != nil {
		return nil, err
	}
	return a.mapper.FromDatabaseSlice(dbTasks)
}

func (a *apiImpl) ToggleTask(ctx context.Context, id int64) error {
	return a.repo.ToggleTask(ctx, id)
}

func (a *apiImpl) RemoveTask(ctx context.Context, id int64) error {
	return a.repo.DeleteTask(ctx, id)
}

func (a *apiImpl) ResetTasks(ctx context.Context) error {
	return a.repo.ResetTasks(ctx)
}
