package domain

// EnumMeta describes how an enum value is presented to clients.
// Presentation is a static lookup keyed by the enum value.
type EnumMeta struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// TaskStatusMeta maps each task status to its display metadata
var TaskStatusMeta = map[TaskStatus]EnumMeta{
	TaskStatusPending:    {Label: "Pending", Icon: "circle-dashed", Color: "gray"},
	TaskStatusInProgress: {Label: "In Progress", Icon: "timer", Color: "blue"},
	TaskStatusReview:     {Label: "Review", Icon: "eye", Color: "amber"},
	TaskStatusCompleted:  {Label: "Completed", Icon: "check-circle", Color: "green"},
}

// TaskPriorityMeta maps each task priority to its display metadata
var TaskPriorityMeta = map[TaskPriority]EnumMeta{
	TaskPriorityLow:    {Label: "Low", Icon: "dot", Color: "green"},
	TaskPriorityMedium: {Label: "Medium", Icon: "dot", Color: "yellow"},
	TaskPriorityHigh:   {Label: "High", Icon: "dot", Color: "orange"},
	TaskPriorityUrgent: {Label: "Urgent", Icon: "shield-alert", Color: "red"},
}

// ProjectStatusMeta maps each project status to its display metadata
var ProjectStatusMeta = map[ProjectStatus]EnumMeta{
	ProjectStatusActive:    {Label: "Active", Icon: "play", Color: "green"},
	ProjectStatusOnHold:    {Label: "On Hold", Icon: "pause", Color: "amber"},
	ProjectStatusCompleted: {Label: "Completed", Icon: "check-circle", Color: "blue"},
	ProjectStatusArchived:  {Label: "Archived", Icon: "archive", Color: "gray"},
}

// ValidProjectStatus reports whether s is a known project status
func ValidProjectStatus(s ProjectStatus) bool {
	_, ok := ProjectStatusMeta[s]
	return ok
}
