// Package repository implements the domain repositories on top of the key-value store.
package repository

import (
	"context"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/kv"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	store repository.KeyValueStore
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(store repository.KeyValueStore) repository.ContactRepository {
	return &contactRepository{store: store}
}

func (repo *contactRepository) LoadContacts(ctx context.Context) ([]*entity.Contact, error) {
	contacts, err := kv.Load(ctx, repo.store, constants.StorageKeyContacts, entity.DefaultContacts())
	if contacts == nil || hasNilEntry(contacts) {
		// A stored JSON null decodes to a nil slice.
		return entity.DefaultContacts(), err
	}

	return contacts, err
}

func (repo *contactRepository) SaveContacts(ctx context.Context, contacts []*entity.Contact) error {
	if contacts == nil {
		contacts = []*entity.Contact{}
	}

	return kv.Save(ctx, repo.store, constants.StorageKeyContacts, contacts)
}
