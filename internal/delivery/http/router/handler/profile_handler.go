package handler

import (
	"log/slog"
	"net/http"

	"guardian/internal/delivery/http/response"
	"guardian/internal/domain/entity"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the medical profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is the full profile; omitted fields are stored empty.
type UpdateProfileRequest struct {
	Name              string `json:"name" validate:"max=120"`
	Phone             string `json:"phone" validate:"max=32"`
	BloodGroup        string `json:"bloodGroup" validate:"max=8"`
	MedicalConditions string `json:"medicalConditions" validate:"max=1000"`
	EmergencyNote     string `json:"emergencyNote" validate:"max=1000"`
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.profileUC.GetProfile(c.Request().Context()), "Profile retrieved successfully")
}

// UpdateProfile overwrites the stored profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile := &entity.UserProfile{
		Name:              req.Name,
		Phone:             req.Phone,
		BloodGroup:        req.BloodGroup,
		MedicalConditions: req.MedicalConditions,
		EmergencyNote:     req.EmergencyNote,
	}
	if err := h.profileUC.UpdateProfile(c.Request().Context(), profile); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// MedicalIDCard renders the profile as a QR code image.
func (h *ProfileHandler) MedicalIDCard(c echo.Context) error {
	png, err := h.profileUC.MedicalIDCard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
