package metrics

// IncrementProjectCreated increments project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementTeamCreated increments team creation counter
func (m *Metrics) IncrementTeamCreated() {
	m.safeExecute("IncrementTeamCreated", func() {
		m.TeamCreatedTotal.Inc()
	})
}

// IncrementTeamReused increments the counter for task creations that
// matched an existing team instead of creating one
func (m *Metrics) IncrementTeamReused() {
	m.safeExecute("IncrementTeamReused", func() {
		m.TeamReusedTotal.Inc()
	})
}

// IncrementTagCreated increments tag creation counter
func (m *Metrics) IncrementTagCreated() {
	m.safeExecute("IncrementTagCreated", func() {
		m.TagCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// SetProjectsTotal sets total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetTasksTotal sets total tasks gauge
func (m *Metrics) SetTasksTotal(count int64) {
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Set(float64(count))
	})
}

// SetTeamsTotal sets total teams gauge
func (m *Metrics) SetTeamsTotal(count int64) {
	m.safeExecute("SetTeamsTotal", func() {
		m.TeamsTotal.Set(float64(count))
	})
}
