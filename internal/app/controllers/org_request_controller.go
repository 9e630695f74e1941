package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/app/services"
	"github.com/lucianaf/vspotlight/internal/middleware"
)

// OrgRequestController handles organization elevation requests
type OrgRequestController struct {
	orgService  services.OrgRequestService
	authService services.AuthService
}

// NewOrgRequestController creates a new OrgRequestController
func NewOrgRequestController(orgService services.OrgRequestService, authService services.AuthService) *OrgRequestController {
	return &OrgRequestController{
		orgService:  orgService,
		authService: authService,
	}
}

// Apply files an organization request
// @Summary Apply for organization status
// @Description Files a request to elevate the acting student account to an organization account. The dean resolves requests.
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OrgRequestCreate true "Organization information"
// @Success 201 {object} dto.APIResponse{data=dto.OrgRequestResponse} "Request filed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - not a student account"
// @Failure 409 {object} dto.ErrorResponse "A pending request already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /org-requests [post]
func (c *OrgRequestController) Apply(ctx *gin.Context) {
	email, _, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.OrgRequestCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Load the full account so name and current role come from the database,
	// not the token
	actor, err := c.authService.GetProfile(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	request, err := c.orgService.Apply(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// GetPending lists unresolved requests for the dean
// @Summary List pending organization requests
// @Description Retrieves all unresolved organization requests. Dean only.
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OrgRequestListResponse} "Requests retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - dean only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /org-requests [get]
func (c *OrgRequestController) GetPending(ctx *gin.Context) {
	requests, err := c.orgService.GetPending(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// Approve resolves a pending request
// @Summary Approve an organization request
// @Description Marks the request approved and elevates the applicant to an organization account in one transaction. Dean only.
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.OrgRequestResponse} "Request approved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - dean only"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request already resolved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /org-requests/{id}/approve [post]
func (c *OrgRequestController) Approve(ctx *gin.Context) {
	_, role, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.orgService.Approve(ctx, role, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}
