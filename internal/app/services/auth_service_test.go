package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/pkg/apperrors"
)

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FirstName:       "Sofia",
		LastName:        "Ramirez",
		StudentID:       "20481234",
		Email:           "sofia.ramirez01@utrgv.edu",
		Major:           "Computer Science",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
	}
}

func TestValidateRegistration(t *testing.T) {
	svc := &authServiceImpl{emailDomain: "utrgv.edu"}

	tests := []struct {
		name    string
		mutate  func(*dto.RegisterRequest)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *dto.RegisterRequest) {},
		},
		{
			name:    "missing first name",
			mutate:  func(r *dto.RegisterRequest) { r.FirstName = "  " },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "missing email",
			mutate:  func(r *dto.RegisterRequest) { r.Email = "" },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "missing major",
			mutate:  func(r *dto.RegisterRequest) { r.Major = "" },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "password mismatch",
			mutate:  func(r *dto.RegisterRequest) { r.ConfirmPassword = "different-pass" },
			wantErr: apperrors.ErrPasswordMismatch,
		},
		{
			name:    "non institutional email",
			mutate:  func(r *dto.RegisterRequest) { r.Email = "sofia@gmail.com" },
			wantErr: apperrors.ErrInvalidEmail,
		},
		{
			name: "short password accepted",
			mutate: func(r *dto.RegisterRequest) {
				r.Password = "abc"
				r.ConfirmPassword = "abc"
			},
		},
		{
			name:   "free-form student id accepted",
			mutate: func(r *dto.RegisterRequest) { r.StudentID = "A1234567" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(req)

			err := svc.validateRegistration(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRegistrationNilRequest(t *testing.T) {
	svc := &authServiceImpl{emailDomain: "utrgv.edu"}
	assert.ErrorIs(t, svc.validateRegistration(nil), apperrors.ErrValidationFailed)
}
