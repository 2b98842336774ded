package v1

import (
	"context"
	"net/http"

	"go-futurejob-backend/internal/delivery/http/response"
	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	careerUC  domain.CareerUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, careerUC domain.CareerUsecase) {
	handler := &ProfileHandler{profileUC: profileUC, careerUC: careerUC}

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.GetProfile)
		profile.PUT("/goal", handler.SetGoal)
		profile.DELETE("/goal", handler.ClearGoal)
		profile.PUT("/progress", handler.SaveProgress)
		profile.POST("/timeline", handler.AddTimelineEntry)
		profile.GET("/checklist", handler.Checklist)
	}
}

// authedContext carries the authenticated username into the usecase layer,
// where every profile operation re-checks ownership.
func authedContext(c *gin.Context) (context.Context, string) {
	username := c.GetString(string(domain.KeyUsername))
	return context.WithValue(c.Request.Context(), domain.KeyUsername, username), username
}

// reversed returns a newest-first copy of a timeline for display.
func reversed(timeline []string) []string {
	out := make([]string, 0, len(timeline))
	for i := len(timeline) - 1; i >= 0; i-- {
		out = append(out, timeline[i])
	}
	return out
}

// GetProfile godoc
// @Summary      Get own profile
// @Description  Returns the authenticated user's profile with goal, progress and timeline.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ctx, username := authedContext(c)

	profile, err := h.profileUC.GetProfile(ctx, username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", gin.H{
		"profile":          profile,
		"timeline_display": reversed(profile.Timeline),
		"checklist_items":  h.careerUC.ChecklistItems(),
		"suggested_steps":  h.careerUC.SuggestedSteps(),
	})
}

type SetGoalRequest struct {
	Career string `json:"career" binding:"required"`
}

// SetGoal godoc
// @Summary      Set goal career
// @Description  Commits the user to a career from the catalog.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        goal  body      SetGoalRequest  true  "Goal career"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /profile/goal [put]
// @Security     BearerAuth
func (h *ProfileHandler) SetGoal(c *gin.Context) {
	var req SetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ctx, username := authedContext(c)
	if err := h.profileUC.SetGoal(ctx, username, req.Career); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Goal career set", gin.H{"goal_job": req.Career})
}

// ClearGoal godoc
// @Summary      Clear goal career
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile/goal [delete]
// @Security     BearerAuth
func (h *ProfileHandler) ClearGoal(c *gin.Context) {
	ctx, username := authedContext(c)
	if err := h.profileUC.ClearGoal(ctx, username); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Goal career cleared", nil)
}

type SaveProgressRequest struct {
	Progress map[string]bool `json:"progress" binding:"required"`
}

// SaveProgress godoc
// @Summary      Save checklist progress
// @Description  Replaces the whole progress map with the submitted checkbox states.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        progress  body      SaveProgressRequest  true  "Checklist states"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /profile/progress [put]
// @Security     BearerAuth
func (h *ProfileHandler) SaveProgress(c *gin.Context) {
	var req SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ctx, username := authedContext(c)
	if err := h.profileUC.SaveProgress(ctx, username, req.Progress); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Progress saved", gin.H{"progress": req.Progress})
}

type TimelineEntryRequest struct {
	Note string `json:"note" binding:"required"`
}

// AddTimelineEntry godoc
// @Summary      Add timeline entry
// @Description  Appends a dated note to the user's timeline. Entries cannot be edited or deleted.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        entry  body      TimelineEntryRequest  true  "Timeline note"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /profile/timeline [post]
// @Security     BearerAuth
func (h *ProfileHandler) AddTimelineEntry(c *gin.Context) {
	var req TimelineEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ctx, username := authedContext(c)
	profile, err := h.profileUC.AddTimelineEntry(ctx, username, req.Note)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Timeline entry added", gin.H{
		"profile":          profile,
		"timeline_display": reversed(profile.Timeline),
	})
}

// Checklist godoc
// @Summary      Checklist items
// @Description  Returns the fixed list of progress milestones.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile/checklist [get]
// @Security     BearerAuth
func (h *ProfileHandler) Checklist(c *gin.Context) {
	response.Success(c, http.StatusOK, "Checklist items", gin.H{
		"items": h.careerUC.ChecklistItems(),
	})
}
