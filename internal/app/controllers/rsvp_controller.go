package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/app/services"
	"github.com/lucianaf/vspotlight/internal/middleware"
)

// RSVPController handles RSVP and attendee matching operations
type RSVPController struct {
	rsvpService services.RSVPService
}

// NewRSVPController creates a new RSVPController
func NewRSVPController(rsvpService services.RSVPService) *RSVPController {
	return &RSVPController{
		rsvpService: rsvpService,
	}
}

// RSVP records attendance for an event
// @Summary RSVP to an event
// @Description Records attendance. With findVaquero set, the user is paired with another opted-in attendee when one is available, preferring the same major.
// @Tags rsvps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Param request body dto.RSVPRequest true "RSVP options"
// @Success 201 {object} dto.APIResponse{data=dto.RSVPResponse} "RSVP recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Already RSVP'd"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/rsvp [post]
func (c *RSVPController) RSVP(ctx *gin.Context) {
	email, _, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Body is optional; an empty body means a plain RSVP
	var req dto.RSVPRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid RSVP data")
			errorDetail = errorDetail.WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	resp, err := c.rsvpService.RSVP(ctx, id, email, req.FindVaquero)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// CancelRSVP withdraws the user's RSVP
// @Summary Cancel an RSVP
// @Description Withdraws the authenticated user's RSVP for an event
// @Tags rsvps
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "RSVP cancelled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "RSVP not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/rsvp [delete]
func (c *RSVPController) CancelRSVP(ctx *gin.Context) {
	email, _, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.rsvpService.CancelRSVP(ctx, id, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "RSVP cancelled"},
		Timestamp: time.Now(),
	})
}

// ToggleRSVP flips the user's RSVP state
// @Summary Toggle an RSVP
// @Description Flips the authenticated user's RSVP state and returns the new state with the updated count
// @Tags rsvps
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ToggleRSVPResponse} "RSVP toggled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/rsvp/toggle [post]
func (c *RSVPController) ToggleRSVP(ctx *gin.Context) {
	email, _, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.rsvpService.ToggleRSVP(ctx, id, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetMatch returns the partner the user was paired with
// @Summary Get my match for an event
// @Description Returns the attendee the authenticated user was paired with for an event
// @Tags rsvps
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.MatchResponse} "Match retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No match for this event"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/match [get]
func (c *RSVPController) GetMatch(ctx *gin.Context) {
	email, _, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	match, err := c.rsvpService.GetMatch(ctx, id, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      match,
		Timestamp: time.Now(),
	})
}
