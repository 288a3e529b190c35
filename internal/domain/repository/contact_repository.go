package repository

import (
	"context"

	"guardian/internal/domain/entity"
)

// ContactRepository persists the ordered contact list as a single blob.
type ContactRepository interface {
	// LoadContacts returns the stored contacts, or the defaults when nothing valid is stored.
	// A non-nil error reports a backend failure; the defaults are still returned.
	LoadContacts(ctx context.Context) ([]*entity.Contact, error)

	// SaveContacts overwrites the stored contacts.
	SaveContacts(ctx context.Context, contacts []*entity.Contact) error
}
