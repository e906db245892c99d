package domain

import "time"

// Priority is the urgency level assigned to a project.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Well-known project workflow statuses. Boards may define additional custom
// statuses, so Project.Status stays a plain string and these constants only
// cover the built-in workflow.
const (
	StatusPlanning   = "planning"
	StatusInProgress = "in_progress"
	StatusReview     = "review"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// OpenStatuses is the subset of statuses considered "in flight" for the
// dashboard timeline.
var OpenStatuses = []string{StatusPlanning, StatusInProgress, StatusReview}

// Project is a unit of client work moving through a workflow board.
type Project struct {
	ID          string     `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	ClientID    string     `json:"client_id" bson:"client_id"`
	Status      string     `json:"status" bson:"status"`
	Priority    Priority   `json:"priority" bson:"priority"`
	StartDate   time.Time  `json:"start_date" bson:"start_date"`
	EndDate     time.Time  `json:"end_date" bson:"end_date"`
	DueDate     *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Value       float64    `json:"value,omitempty" bson:"value,omitempty"`
	Progress    int        `json:"progress" bson:"progress"`
	Notes       string     `json:"notes,omitempty" bson:"notes,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	BoardID     string     `json:"board_id,omitempty" bson:"board_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}

// Board is a named, customizable set of workflow status values that projects
// can be attached to.
type Board struct {
	ID          string            `json:"id" bson:"_id"`
	Name        string            `json:"name" bson:"name"`
	Description string            `json:"description,omitempty" bson:"description,omitempty"`
	Statuses    map[string]string `json:"statuses" bson:"statuses"`
	Color       string            `json:"color,omitempty" bson:"color,omitempty"`
	Active      bool              `json:"active" bson:"active"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updated_at"`
}
