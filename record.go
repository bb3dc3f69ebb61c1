package rubriclist

import "strconv"

// Status is the grading definition status stored with each rubric.
type Status int

const (
	StatusDraft Status = 10
	StatusReady Status = 20
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusReady:
		return "ready"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Record is one rubric row as returned by the listing query. Exactly one of
// Assignment and Forum is set, chosen by ModType. Columns the record has no
// field for are kept in Extra.
type Record struct {
	ID           int64
	Name         string
	TimeModified int64
	Status       Status
	ModType      string
	AreaID       int64
	CourseID     int64
	CMID         int64
	Course       string
	Assignment   string
	Forum        string
	Extra        map[string]string
}
