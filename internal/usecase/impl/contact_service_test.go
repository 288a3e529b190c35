package impl

import (
	"context"
	"errors"
	"testing"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	mockRepo "guardian/internal/mocks/repository"
	"guardian/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContactService(t *testing.T, stored []*entity.Contact) (usecase.ContactUsecase, *mockRepo.MockContactRepository) {
	repo := mockRepo.NewMockContactRepository(t)
	repo.EXPECT().LoadContacts(mock.Anything).Return(stored, nil).Once()

	return NewContactService(repo, testLogger()), repo
}

func TestContactService_ListContacts(t *testing.T) {
	srv, _ := newTestContactService(t, entity.DefaultContacts())

	contacts := srv.ListContacts(context.Background())

	require.Len(t, contacts, 2)
	assert.Equal(t, "Emergency Services", contacts[0].Name)
	assert.True(t, contacts[0].IsEmergency)

	contacts[0].Name = "changed"
	assert.Equal(t, "Emergency Services", srv.ListContacts(context.Background())[0].Name)
}

func TestContactService_New_LoadFailureKeepsDefaults(t *testing.T) {
	repo := mockRepo.NewMockContactRepository(t)
	repo.EXPECT().LoadContacts(mock.Anything).Return(entity.DefaultContacts(), errors.New("corrupt"))

	srv := NewContactService(repo, testLogger())

	assert.Len(t, srv.ListContacts(context.Background()), 2)
}

func TestContactService_AddContact(t *testing.T) {
	srv, repo := newTestContactService(t, entity.DefaultContacts())
	repo.EXPECT().SaveContacts(mock.Anything, mock.MatchedBy(func(contacts []*entity.Contact) bool {
		return len(contacts) == 3 && contacts[2].Name == "Mom"
	})).Return(nil).Once()

	contact, err := srv.AddContact(context.Background(), &usecase.AddContactInput{Name: "Mom", Phone: "555-0100"})

	require.NoError(t, err)
	assert.Equal(t, "Mom", contact.Name)
	assert.Equal(t, "555-0100", contact.Phone)
	assert.False(t, contact.IsEmergency)
	assert.Len(t, contact.ID, 9)

	contacts := srv.ListContacts(context.Background())
	require.Len(t, contacts, 3)
	assert.Equal(t, contact.ID, contacts[2].ID)
}

func TestContactService_AddContact_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.AddContactInput
	}{
		{name: "nil input", input: nil},
		{name: "empty name", input: &usecase.AddContactInput{Name: "", Phone: "555"}},
		{name: "empty phone", input: &usecase.AddContactInput{Name: "Mom", Phone: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestContactService(t, entity.DefaultContacts())

			contact, err := srv.AddContact(context.Background(), tt.input)

			assert.Nil(t, contact)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidContact)
			assert.Len(t, srv.ListContacts(context.Background()), 2)
		})
	}
}

func TestContactService_AddContact_SaveFailure(t *testing.T) {
	srv, repo := newTestContactService(t, entity.DefaultContacts())
	repo.EXPECT().SaveContacts(mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))

	_, err := srv.AddContact(context.Background(), &usecase.AddContactInput{Name: "Mom", Phone: "555"})

	assert.ErrorContains(t, err, "quota exceeded")
	assert.Len(t, srv.ListContacts(context.Background()), 2)
}

func TestContactService_RemoveContact(t *testing.T) {
	srv, repo := newTestContactService(t, entity.DefaultContacts())
	repo.EXPECT().SaveContacts(mock.Anything, mock.MatchedBy(func(contacts []*entity.Contact) bool {
		return len(contacts) == 1 && contacts[0].ID == "2"
	})).Return(nil).Once()

	require.NoError(t, srv.RemoveContact(context.Background(), "1"))

	contacts := srv.ListContacts(context.Background())
	require.Len(t, contacts, 1)
	assert.Equal(t, "Family Member", contacts[0].Name)
}

func TestContactService_RemoveContact_Unknown(t *testing.T) {
	srv, _ := newTestContactService(t, entity.DefaultContacts())

	err := srv.RemoveContact(context.Background(), "missing")

	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
	assert.Len(t, srv.ListContacts(context.Background()), 2)
}
