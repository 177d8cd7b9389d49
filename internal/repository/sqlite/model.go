package sqlite

// Task mirrors one row of the tasks table.
//
// IsDone stays an integer (0 pending, 1 done) to match the column type;
// the domain layer converts it to a bool. DateAdded holds the raw text
// the store assigned at insertion time.
type Task struct {
	ID        int64
	Name      string
	DateAdded string
	IsDone    int64
}
