// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// ContactUsecase defines the interface for managing trusted contacts.
type ContactUsecase interface {
	ListContacts(ctx context.Context) []*entity.Contact
	AddContact(ctx context.Context, input *AddContactInput) (*entity.Contact, error)
	RemoveContact(ctx context.Context, contactID string) error
}

// --- Input DTOs ---

// AddContactInput defines the data required to add a contact.
type AddContactInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,max=32"`
}
