package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/middleware"
)

// actorFromContext pulls the authenticated user's identity out of the gin
// context. JWTAuth must have run on the route.
func actorFromContext(ctx *gin.Context) (email string, role models.Role, ok bool) {
	emailVal, exists := ctx.Get(middleware.ContextEmailKey)
	if !exists {
		return "", "", false
	}
	roleVal, exists := ctx.Get(middleware.ContextRoleKey)
	if !exists {
		return "", "", false
	}

	emailStr, ok1 := emailVal.(string)
	roleStr, ok2 := roleVal.(string)
	if !ok1 || !ok2 || emailStr == "" {
		return "", "", false
	}

	return emailStr, models.Role(roleStr), true
}

// requireActor aborts with 401 when no authenticated identity is present
func requireActor(ctx *gin.Context) (string, models.Role, bool) {
	email, role, ok := actorFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return "", "", false
	}
	return email, role, true
}

// parseIDParam parses a positive int64 path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
