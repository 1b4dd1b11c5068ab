package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-task-api/internal/dto"
	"project-task-api/internal/response"
	"project-task-api/internal/service"
)

// TeamHandler handles team endpoints
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam godoc
// @Summary      Create a team
// @Description  Creates a team inside a project the requester can see. The
// @Description  requester becomes the team lead.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTeamRequest true "Team to create"
// @Success      201 {object} response.SuccessResponse{data=dto.TeamResponse}
// @Failure      400 {object} response.ErrorResponse "Validation failure"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, team)
}

// GetTeams godoc
// @Summary      List teams
// @Description  Lists the teams the requester leads or belongs to
// @Tags         teams
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.TeamResponse}
// @Failure      401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /teams [get]
func (h *TeamHandler) GetTeams(c *gin.Context) {
	teams, err := h.teamService.GetTeams(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, teams)
}

// GetTeam godoc
// @Summary      Get a team
// @Description  Returns a team the requester leads or belongs to, with members
// @Description  and tasks populated
// @Tags         teams
// @Produce      json
// @Param        teamId path string true "Team ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TeamResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid team ID"
// @Failure      404 {object} response.ErrorResponse "Team not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, team)
}

// UpdateTeam godoc
// @Summary      Update a team
// @Description  Updates a team's fields. Lead only; a team led by someone else
// @Description  reads as not found. A member list replaces the full set.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId path string true "Team ID (UUID)"
// @Param        request body dto.UpdateTeamRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.TeamResponse}
// @Failure      400 {object} response.ErrorResponse "Validation failure"
// @Failure      404 {object} response.ErrorResponse "Team not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /teams/{teamId} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	team, err := h.teamService.UpdateTeam(c.Request.Context(), teamID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, team)
}
