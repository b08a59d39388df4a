package controller

import (
	"errors"
	"strconv"
	"trueinvest_backend/internal/service"
	"trueinvest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// ListGoals godoc
// @Summary List active goals with the caller's completion state
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.GoalStatus}
// @Router /api/goals [get]
func (c *GoalController) ListGoals(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	goals, err := c.GoalService.ListGoalsForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goals)
}

// ListAllGoals godoc
// @Summary List every goal including inactive ones
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Goal}
// @Router /api/admin/goals [get]
func (c *GoalController) ListAllGoals(ctx *gin.Context) {
	goals, err := c.GoalService.ListAllGoals()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goals)
}

// CreateGoal godoc
// @Summary Create a goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.GoalRequest true "goal definition"
// @Success 201 {object} util.Response{data=model.Goal}
// @Failure 400 {object} util.Response
// @Router /api/admin/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	var req service.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.CreateGoal(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, goal)
}

// UpdateGoal godoc
// @Summary Update a goal definition
// @Description Completed events keep the points value from completion time
// @Tags goals
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "goal id"
// @Param   body body service.GoalRequest true "goal definition"
// @Success 200 {object} util.Response{data=model.Goal}
// @Failure 404 {object} util.Response
// @Router /api/admin/goals/{id} [put]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.UpdateGoal(id, req)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, goal)
}

// DeleteGoal godoc
// @Summary Delete a goal and all of its completion events
// @Description Points already credited stay on the users' ledgers
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "goal id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.GoalService.DeleteGoal(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "goal deleted"})
}

// CompleteGoal godoc
// @Summary Record a goal completion and credit its points
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "goal id"
// @Success 201 {object} util.Response{data=model.GoalEvent}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/goals/{id}/complete [post]
func (c *GoalController) CompleteGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.GoalService.CompleteGoal(ctx.Request.Context(), claims.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGoalNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrGoalInactive):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrGoalAlreadyCompleted):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, event)
}

// UndoGoal godoc
// @Summary Undo the caller's most recent completion of a goal
// @Description Removes the latest event and debits the points it awarded
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "goal id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/goals/{id}/undo [post]
func (c *GoalController) UndoGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.GoalService.UndoGoal(ctx.Request.Context(), claims.UserID, id); err != nil {
		switch {
		case errors.Is(err, util.ErrGoalNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNothingToUndo):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "completion undone"})
}

// ListEvents godoc
// @Summary List the caller's goal completion history
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.GoalEvent}
// @Router /api/goals/events [get]
func (c *GoalController) ListEvents(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	events, err := c.GoalService.ListEventsForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, events)
}
