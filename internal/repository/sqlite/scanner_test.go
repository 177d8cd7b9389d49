package sqlite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScanner feeds fixed column values into ScanTask
type fakeScanner struct {
	values []interface{}
	err    error
}

func (f *fakeScanner) Scan(dest ...interface{}) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = f.values[i].(int64)
		case *string:
			*v = f.values[i].(string)
		}
	}
	return nil
}

func TestScanTask(t *testing.T) {
	scanner := &fakeScanner{values: []interface{}{int64(7), "Water plants", "2026-08-30 09:15:00", int64(1)}}

	task, err := ScanTask(scanner)
	require.NoError(t, err)
	assert.Equal(t, int64(7), task.ID)
	assert.Equal(t, "Water plants", task.Name)
	assert.Equal(t, "2026-08-30 09:15:00", task.DateAdded)
	assert.Equal(t, int64(1), task.IsDone)
}

func TestScanTaskError(t *testing.T) {
	scanner := &fakeScanner{err: fmt.Errorf("scan failed")}

	_, err := ScanTask(scanner)
	assert.Error(t, err)
}

// fakeRows iterates over a fixed set of rows
type fakeRows struct {
	rows    [][]interface{}
	pos     int
	iterErr error
}

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.rows) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...interface{}) error {
	scanner := &fakeScanner{values: f.rows[f.pos-1]}
	return scanner.Scan(dest...)
}

func (f *fakeRows) Err() error {
	return f.iterErr
}

func TestScanTasks(t *testing.T) {
	rows := &fakeRows{rows: [][]interface{}{
		{int64(1), "first", "2026-08-30 09:00:00", int64(0)},
		{int64(2), "second", "2026-08-30 10:00:00", int64(1)},
	}}

	tasks, err := ScanTasks(rows)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Name)
	assert.Equal(t, int64(1), tasks[1].IsDone)
}

func TestScanTasksIterationError(t *testing.T) {
	rows := &fakeRows{iterErr: fmt.Errorf("cursor broke")}

	_, err := ScanTasks(rows)
	assert.Error(t, err)
}

func TestScanTasksEmpty(t *testing.T) {
	tasks, err := ScanTasks(&fakeRows{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
