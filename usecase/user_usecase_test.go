package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-chat-api/apperr"
	"match-chat-api/dto"
	"match-chat-api/dto/req"
	"match-chat-api/event"
	"match-chat-api/testutil"
)

func TestEditUserNotifiesChatPartners(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, f.db, "alice")
	bob := testutil.CreateUser(t, f.db, "bob")
	carol := testutil.CreateUser(t, f.db, "carol")
	testutil.CreateUser(t, f.db, "stranger")
	send(t, f, alice, bob, "hi")
	send(t, f, carol, alice, "hey")
	send(t, f, bob, alice, "again")

	name := "Alicia"
	avatar := "https://cdn.example.com/alicia.png"
	updated, err := f.users.EditUser(ctx, alice.ID, &req.EditProfileRequest{Name: &name, Avatar: &avatar})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, avatar, updated.Avatar)

	profile := f.publisher.byTopic(event.ContactProfileUpdatedTopic)
	require.Len(t, profile, 1)
	data := profile[0].Data.(event.ContactProfileData)
	assert.ElementsMatch(t, []string{bob.ID, carol.ID}, data.ContactIDs)
	assert.Equal(t, "update", data.Payload.Action)
	assert.Equal(t, alice.ID, data.Payload.UserID)

	image := f.publisher.byTopic(event.ContactImageProfileUpdatedTopic)
	require.Len(t, image, 1)
	assert.IsType(t, dto.ContactProfileUpdated{}, image[0].Data.(event.ContactProfileData).Payload)

	fetched, err := f.users.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, name, fetched.Name)
}

func TestEditUserWithoutChangesPublishesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, f.db, "alice")

	name := alice.Name
	_, err := f.users.EditUser(ctx, alice.ID, &req.EditProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Empty(t, f.publisher.byTopic(event.ContactProfileUpdatedTopic))
	assert.Empty(t, f.publisher.byTopic(event.ContactImageProfileUpdatedTopic))

	gender := "ROBOT"
	_, err = f.users.EditUser(ctx, alice.ID, &req.EditProfileRequest{Gender: &gender})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = f.users.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
