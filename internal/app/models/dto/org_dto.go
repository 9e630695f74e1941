package dto

import "github.com/lucianaf/vspotlight/internal/app/models"

// OrgRequestCreate represents an application for organization status
type OrgRequestCreate struct {
	Organization string `json:"organization" binding:"required"`
}

// OrgRequestResponse represents a pending or resolved organization request
type OrgRequestResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Status       string `json:"status"`
}

// OrgRequestListResponse represents the dean's view of organization requests
type OrgRequestListResponse struct {
	Requests []OrgRequestResponse `json:"requests"`
}

// FromOrgRequest converts a models.OrgRequest to an OrgRequestResponse
func FromOrgRequest(req *models.OrgRequest) OrgRequestResponse {
	if req == nil {
		return OrgRequestResponse{}
	}
	return OrgRequestResponse{
		ID:           req.ID,
		Name:         req.Name,
		Email:        req.Email,
		Organization: req.Organization,
		Status:       string(req.Status),
	}
}
