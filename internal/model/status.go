package model

// Status is the lane a post sits in. There is no transition graph; any lane
// is reachable from any other.
type Status string

const (
	StatusTodo     Status = "todo"
	StatusProgress Status = "progress"
	StatusArchive  Status = "archive"
)

// Statuses returns all lanes in board display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusProgress, StatusArchive}
}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusProgress, StatusArchive:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }
