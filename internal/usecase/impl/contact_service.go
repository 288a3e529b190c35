package impl

import (
	"context"
	"log/slog"
	"sync"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"
	"guardian/internal/util"

	"github.com/pkg/errors"
)

const contactIDLength = 9

// contactService implements the ContactUsecase interface.
type contactService struct {
	mu       sync.Mutex
	contacts []*entity.Contact

	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// NewContactService is the constructor for contactService. It restores the persisted contacts.
func NewContactService(contactRepo repository.ContactRepository, logger *slog.Logger) usecase.ContactUsecase {
	contacts, err := contactRepo.LoadContacts(context.Background())
	if err != nil {
		logger.Warn("Failed to load contacts, using defaults", slog.Any("error", err))
	}

	return &contactService{
		contacts:    contacts,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// ListContacts returns a copy of the contacts in insertion order.
func (srv *contactService) ListContacts(_ context.Context) []*entity.Contact {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	contacts := make([]*entity.Contact, 0, len(srv.contacts))
	for _, contact := range srv.contacts {
		clone := *contact
		contacts = append(contacts, &clone)
	}

	return contacts
}

// AddContact appends a personal contact with a fresh id.
func (srv *contactService) AddContact(ctx context.Context, input *usecase.AddContactInput) (*entity.Contact, error) {
	if input == nil || input.Name == "" || input.Phone == "" {
		return nil, domainerrors.ErrInvalidContact
	}

	id, err := util.RandomID(contactIDLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contact id")
	}

	contact := &entity.Contact{
		ID:          id,
		Name:        input.Name,
		Phone:       input.Phone,
		IsEmergency: false,
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	contacts := make([]*entity.Contact, 0, len(srv.contacts)+1)
	contacts = append(contacts, srv.contacts...)
	contacts = append(contacts, contact)

	if err := srv.contactRepo.SaveContacts(ctx, contacts); err != nil {
		return nil, errors.Wrap(err, "failed to save contacts")
	}
	srv.contacts = contacts

	srv.logger.Info("Contact added", slog.String("contact_id", contact.ID))
	clone := *contact

	return &clone, nil
}

// RemoveContact deletes the contact with the given id.
func (srv *contactService) RemoveContact(ctx context.Context, contactID string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	contacts := make([]*entity.Contact, 0, len(srv.contacts))
	for _, contact := range srv.contacts {
		if contact.ID != contactID {
			contacts = append(contacts, contact)
		}
	}
	if len(contacts) == len(srv.contacts) {
		return domainerrors.ErrContactNotFound
	}

	if err := srv.contactRepo.SaveContacts(ctx, contacts); err != nil {
		return errors.Wrap(err, "failed to save contacts")
	}
	srv.contacts = contacts

	srv.logger.Info("Contact removed", slog.String("contact_id", contactID))

	return nil
}
