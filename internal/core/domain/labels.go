package domain

// Display labels for the built-in workflow statuses. Custom board statuses
// pass through untranslated.
var statusLabels = map[string]string{
	StatusPlanning:   "Planning",
	StatusInProgress: "In Progress",
	StatusReview:     "Review",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
}

var priorityLabels = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
	PriorityUrgent: "Urgent",
}

// StatusLabel returns the display label for a project status, falling back to
// the raw value for board-defined statuses.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// PriorityLabel returns the display label for a priority.
func PriorityLabel(p Priority) string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return string(p)
}
