package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/app/services"
	"github.com/lucianaf/vspotlight/internal/middleware"
)

// CalendarController handles the calendar view
type CalendarController struct {
	calendarService services.CalendarService
}

// NewCalendarController creates a new CalendarController
func NewCalendarController(calendarService services.CalendarService) *CalendarController {
	return &CalendarController{
		calendarService: calendarService,
	}
}

// GetMonth lays out one month as a grid with event markers
// @Summary Get the month grid
// @Description Lays out the requested month as Sunday-start weeks with event markers. Defaults to the current month.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} dto.APIResponse{data=dto.CalendarResponse} "Month retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid year or month"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /calendar [get]
func (c *CalendarController) GetMonth(ctx *gin.Context) {
	var req dto.CalendarRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid calendar parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	month, err := c.calendarService.GetMonth(ctx, req.Year, req.Month)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      month,
		Timestamp: time.Now(),
	})
}

// GetDay lists the events on one calendar date
// @Summary Get one day's events
// @Description Retrieves the events on an exact calendar date
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date in YYYY-MM-DD format"
// @Success 200 {object} dto.APIResponse{data=dto.CalendarDayResponse} "Day retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /calendar/{date} [get]
func (c *CalendarController) GetDay(ctx *gin.Context) {
	date := ctx.Param("date")

	day, err := c.calendarService.GetDay(ctx, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      day,
		Timestamp: time.Now(),
	})
}
