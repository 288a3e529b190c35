package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"guardian/internal/delivery/http/response"
	"guardian/internal/delivery/http/validator"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var contactFieldErrors = map[string]*domainerrors.BaseError{
	"name":  domainerrors.ErrInvalidContact,
	"phone": domainerrors.ErrInvalidContact,
}

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler holds dependencies for trusted contact handlers
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// ListContacts returns every trusted contact.
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts := h.contactUC.ListContacts(c.Request().Context())

	return response.Success(c, http.StatusOK, contacts, "Contacts retrieved successfully")
}

// AddContact adds a personal contact.
func (h *ContactHandler) AddContact(c echo.Context) error {
	var input usecase.AddContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(validator.Reject(err, contactFieldErrors))
	}

	contact, err := h.contactUC.AddContact(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, contact, "Contact added successfully")
}

// RemoveContact deletes a contact by id.
func (h *ContactHandler) RemoveContact(c echo.Context) error {
	if err := h.contactUC.RemoveContact(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contact removed successfully")
}
