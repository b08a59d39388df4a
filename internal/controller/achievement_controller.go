package controller

import (
	"strings"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/service"
	"trueinvest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// ListMine godoc
// @Summary All badges with the caller's unlock state
// @Tags achievements
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.UserBadge}
// @Router /api/achievements [get]
func (c *AchievementController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.AchievementService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// swagger:model AchievementRequest
type AchievementRequest struct {
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	RewardPoints     int    `json:"rewardPoints"`
	RequirementType  string `json:"requirementType"`
	RequirementValue int    `json:"requirementValue"`
}

func (r *AchievementRequest) validate() string {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return "title must not be empty"
	}
	if r.RewardPoints < 0 {
		return "rewardPoints must not be negative"
	}
	if r.RequirementValue < 0 {
		return "requirementValue must not be negative"
	}
	return ""
}

// Create godoc
// @Summary Create a badge
// @Tags achievements
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body AchievementRequest true "badge definition"
// @Success 201 {object} util.Response{data=model.Achievement}
// @Failure 400 {object} util.Response
// @Router /api/admin/achievements [post]
func (c *AchievementController) Create(ctx *gin.Context) {
	var req AchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		util.BadRequest(ctx, msg)
		return
	}

	achievement := &model.Achievement{
		Title:            req.Title,
		Description:      req.Description,
		Icon:             req.Icon,
		RewardPoints:     req.RewardPoints,
		RequirementType:  req.RequirementType,
		RequirementValue: req.RequirementValue,
	}
	if err := c.AchievementService.Create(achievement); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, achievement)
}

// Update godoc
// @Summary Update a badge definition
// @Tags achievements
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "achievement id"
// @Param   body body AchievementRequest true "badge definition"
// @Success 200 {object} util.Response{data=model.Achievement}
// @Failure 404 {object} util.Response
// @Router /api/admin/achievements/{id} [put]
func (c *AchievementController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req AchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		util.BadRequest(ctx, msg)
		return
	}

	achievement := &model.Achievement{
		Title:            req.Title,
		Description:      req.Description,
		Icon:             req.Icon,
		RewardPoints:     req.RewardPoints,
		RequirementType:  req.RequirementType,
		RequirementValue: req.RequirementValue,
	}
	achievement.ID = id
	if err := c.AchievementService.Update(achievement); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievement)
}

// Grant godoc
// @Summary Manually unlock a badge for a user
// @Description Granting an already unlocked badge is a no-op
// @Tags achievements
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "achievement id"
// @Param   userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /api/admin/achievements/{id}/grant/{userId} [post]
func (c *AchievementController) Grant(ctx *gin.Context) {
	achievementID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.AchievementService.Grant(ctx.Request.Context(), userID, achievementID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "achievement granted"})
}

// Delete godoc
// @Summary Delete a badge and every unlock of it
// @Tags achievements
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "achievement id"
// @Success 200 {object} util.Response
// @Router /api/admin/achievements/{id} [delete]
func (c *AchievementController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.AchievementService.Delete(ctx.Request.Context(), id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "achievement deleted"})
}
