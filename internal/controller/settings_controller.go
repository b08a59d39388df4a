package controller

import (
	"trueinvest_backend/internal/service"
	"trueinvest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService *service.SettingsService
}

func NewSettingsController(settingsService *service.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: settingsService}
}

// Branding godoc
// @Summary Login-page branding (background and logo)
// @Description Public so the login screen can render before authentication
// @Tags settings
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Router /api/branding [get]
func (c *SettingsController) Branding(ctx *gin.Context) {
	branding, err := c.SettingsService.Branding()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, branding)
}

// UpdateBranding godoc
// @Summary Update login-page branding
// @Tags settings
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.BrandingRequest true "branding values"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/admin/branding [put]
func (c *SettingsController) UpdateBranding(ctx *gin.Context) {
	var req service.BrandingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SettingsService.UpdateBranding(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"message": "branding updated"})
}

// UploadAsset godoc
// @Summary Upload a branding asset (image or video)
// @Tags settings
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "asset file"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/admin/branding/upload [post]
func (c *SettingsController) UploadAsset(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.SettingsService.UploadAsset(ctx.Request.Context(), header, "branding")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
