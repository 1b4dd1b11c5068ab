package service

import (
	"github.com/google/uuid"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
)

func toUserResponse(user *domain.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Image:      user.Image,
		Role:       user.Role,
		Department: user.Department,
		CreatedAt:  user.CreatedAt,
	}
}

func toUserResponses(users []domain.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out
}

func toTagResponse(tag *domain.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		ID:          tag.ID,
		Name:        tag.Name,
		Color:       tag.Color,
		Description: tag.Description,
		CreatedAt:   tag.CreatedAt,
	}
}

func toTagResponses(tags []domain.Tag) []dto.TagResponse {
	out := make([]dto.TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, *toTagResponse(&tags[i]))
	}
	return out
}

func toCommentResponse(comment *domain.Comment) *dto.CommentResponse {
	resp := &dto.CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.Author.ID != uuid.Nil {
		resp.Author = toUserResponse(&comment.Author)
	}
	return resp
}

func toCommentResponses(comments []domain.Comment) []dto.CommentResponse {
	out := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, *toCommentResponse(&comments[i]))
	}
	return out
}

func toTaskResponse(task *domain.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		TeamID:      task.TeamID,
		CreatedByID: task.CreatedByID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		StartDate:   task.StartDate,
		Deadline:    task.Deadline,
		Assignees:   toUserResponses(task.Assignees),
		Tags:        toTagResponses(task.Tags),
		Comments:    toCommentResponses(task.Comments),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func toTaskResponses(tasks []domain.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, *toTaskResponse(&tasks[i]))
	}
	return out
}

func toTeamResponse(team *domain.Team) *dto.TeamResponse {
	return &dto.TeamResponse{
		ID:          team.ID,
		ProjectID:   team.ProjectID,
		LeadID:      team.LeadID,
		Name:        team.Name,
		Description: team.Description,
		Members:     toUserResponses(team.Members),
		Tasks:       toTaskResponses(team.Tasks),
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}

func toTeamResponses(teams []domain.Team) []dto.TeamResponse {
	out := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, *toTeamResponse(&teams[i]))
	}
	return out
}

func toProjectResponse(project *domain.Project) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:          project.ID,
		OwnerID:     project.OwnerID,
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		Members:     toUserResponses(project.Members),
		Teams:       toTeamResponses(project.Teams),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
	if project.Owner.ID != uuid.Nil {
		resp.Owner = toUserResponse(&project.Owner)
	}
	return resp
}
