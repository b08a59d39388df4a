package controller

import (
	"errors"
	"trueinvest_backend/internal/service"
	"trueinvest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MeetingController struct {
	MeetingService *service.MeetingService
}

func NewMeetingController(meetingService *service.MeetingService) *MeetingController {
	return &MeetingController{MeetingService: meetingService}
}

// ListUpcoming godoc
// @Summary Scheduled meetings from now on
// @Tags meetings
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Meeting}
// @Router /api/meetings [get]
func (c *MeetingController) ListUpcoming(ctx *gin.Context) {
	meetings, err := c.MeetingService.ListUpcoming()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, meetings)
}

// ListAll godoc
// @Summary Every meeting including past and cancelled
// @Tags meetings
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Meeting}
// @Router /api/admin/meetings [get]
func (c *MeetingController) ListAll(ctx *gin.Context) {
	meetings, err := c.MeetingService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, meetings)
}

// Create godoc
// @Summary Schedule a meeting and notify every user
// @Tags meetings
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.MeetingRequest true "meeting details"
// @Success 201 {object} util.Response{data=model.Meeting}
// @Failure 400 {object} util.Response
// @Router /api/admin/meetings [post]
func (c *MeetingController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.MeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	meeting, err := c.MeetingService.CreateMeeting(&req, claims.UserID)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, meeting)
}

// Cancel godoc
// @Summary Cancel a scheduled meeting and notify every user
// @Tags meetings
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "meeting id"
// @Success 200 {object} util.Response{data=model.Meeting}
// @Failure 404 {object} util.Response
// @Router /api/admin/meetings/{id}/cancel [post]
func (c *MeetingController) Cancel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	meeting, err := c.MeetingService.CancelMeeting(id)
	if err != nil {
		if errors.Is(err, util.ErrMeetingNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, meeting)
}
