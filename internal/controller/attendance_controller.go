package controller

import (
	"errors"
	"strconv"
	"trueinvest_backend/internal/service"
	"trueinvest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	AttendanceService *service.AttendanceService
}

func NewAttendanceController(attendanceService *service.AttendanceService) *AttendanceController {
	return &AttendanceController{AttendanceService: attendanceService}
}

type ClockRequest struct {
	Location string `json:"location"`
}

// ClockIn godoc
// @Summary Open today's time entry
// @Tags attendance
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ClockRequest false "optional location"
// @Success 201 {object} util.Response{data=model.TimeEntry}
// @Failure 409 {object} util.Response
// @Router /api/attendance/clock-in [post]
func (c *AttendanceController) ClockIn(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ClockRequest
	_ = ctx.ShouldBindJSON(&req)

	entry, err := c.AttendanceService.ClockIn(claims.UserID, req.Location)
	if err != nil {
		if errors.Is(err, util.ErrAlreadyClockedIn) {
			util.Conflict(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, entry)
}

// ClockOut godoc
// @Summary Close today's open time entry
// @Tags attendance
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ClockRequest false "optional location"
// @Success 200 {object} util.Response{data=model.TimeEntry}
// @Failure 409 {object} util.Response
// @Router /api/attendance/clock-out [post]
func (c *AttendanceController) ClockOut(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ClockRequest
	_ = ctx.ShouldBindJSON(&req)

	entry, err := c.AttendanceService.ClockOut(claims.UserID, req.Location)
	if err != nil {
		if errors.Is(err, util.ErrNotClockedIn) {
			util.Conflict(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, entry)
}

// Today godoc
// @Summary Today's time entry, null when not clocked in
// @Tags attendance
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.TimeEntry}
// @Router /api/attendance/today [get]
func (c *AttendanceController) Today(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entry, err := c.AttendanceService.Today(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// History godoc
// @Summary Recent time entries, newest first
// @Tags attendance
// @Produce  json
// @Security BearerAuth
// @Param   limit query int false "entries to return (default 30, max 90)"
// @Success 200 {object} util.Response{data=[]model.TimeEntry}
// @Router /api/attendance/history [get]
func (c *AttendanceController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "30"))
	entries, err := c.AttendanceService.History(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
