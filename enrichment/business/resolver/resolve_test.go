package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/enrichment/breaker"
	"encore.app/enrichment/cache"
	"encore.app/enrichment/mocks/integrations/lookup_client"
	"encore.app/enrichment/model"
)

func strPtr(s string) *string { return &s }

func newTestBusiness(t *testing.T) (*business, *lookup_client.MockClient) {
	ctrl := gomock.NewController(t)
	mockLookup := lookup_client.NewMockClient(ctrl)
	b := &business{
		lookup:  mockLookup,
		caches:  cache.NewSet(),
		breaker: breaker.New("test"),
	}
	return b, mockLookup
}

func TestResolveSamePerson(t *testing.T) {
	b, mockLookup := newTestBusiness(t)

	mockLookup.EXPECT().
		SearchByPhone(gomock.Any(), "+5511999887766").
		Return([]model.LookupCandidate{{Name: "Maria", Identifier: "12345678901"}}, nil)
	mockLookup.EXPECT().
		SearchByEmail(gomock.Any(), "maria@example.com").
		Return([]model.LookupCandidate{{Name: "Maria", Identifier: "12345678901"}}, nil)

	identity, err := b.Resolve(context.Background(), strPtr("11999887766"), strPtr("maria@example.com"))

	assert.NoError(t, err)
	assert.True(t, identity.SamePerson)
	assert.Equal(t, []string{"12345678901"}, identity.Identifiers)
	assert.Equal(t, []string{model.ChannelPhone}, identity.Channels)
}

func TestResolveDistinctPersons(t *testing.T) {
	b, mockLookup := newTestBusiness(t)

	mockLookup.EXPECT().
		SearchByPhone(gomock.Any(), gomock.Any()).
		Return([]model.LookupCandidate{{Identifier: "12345678901"}}, nil)
	mockLookup.EXPECT().
		SearchByEmail(gomock.Any(), gomock.Any()).
		Return([]model.LookupCandidate{{Identifier: "98765432100"}}, nil)

	identity, err := b.Resolve(context.Background(), strPtr("11999887766"), strPtr("maria@example.com"))

	assert.NoError(t, err)
	assert.False(t, identity.SamePerson)
	// Phone identifier always comes first.
	assert.Equal(t, []string{"12345678901", "98765432100"}, identity.Identifiers)
	assert.Equal(t, []string{model.ChannelPhone, model.ChannelEmail}, identity.Channels)
}

func TestResolveSingleChannel(t *testing.T) {
	b, mockLookup := newTestBusiness(t)

	mockLookup.EXPECT().
		SearchByPhone(gomock.Any(), gomock.Any()).
		Return([]model.LookupCandidate{{Identifier: "12345678901"}}, nil)

	identity, err := b.Resolve(context.Background(), strPtr("11999887766"), nil)

	assert.NoError(t, err)
	// Same-person confirmation needs both channels to agree.
	assert.False(t, identity.SamePerson)
	assert.Equal(t, []string{"12345678901"}, identity.Identifiers)
	assert.Equal(t, []string{model.ChannelPhone}, identity.Channels)
}

func TestResolveNothingFound(t *testing.T) {
	b, mockLookup := newTestBusiness(t)

	mockLookup.EXPECT().SearchByPhone(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockLookup.EXPECT().SearchByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := b.Resolve(context.Background(), strPtr("11999887766"), strPtr("maria@example.com"))

	var e *errs.Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, errs.NotFound, e.Code)
}

func TestResolveNoValidChannels(t *testing.T) {
	b, _ := newTestBusiness(t)

	_, err := b.Resolve(context.Background(), strPtr("not a phone"), strPtr("999999@example.com"))

	var e *errs.Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, errs.InvalidArgument, e.Code)
}

func TestResolveLookupFailureDegrades(t *testing.T) {
	b, mockLookup := newTestBusiness(t)

	mockLookup.EXPECT().
		SearchByPhone(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider timeout"))
	mockLookup.EXPECT().
		SearchByEmail(gomock.Any(), gomock.Any()).
		Return([]model.LookupCandidate{{Identifier: "98765432100"}}, nil)

	identity, err := b.Resolve(context.Background(), strPtr("11999887766"), strPtr("maria@example.com"))

	assert.NoError(t, err)
	assert.False(t, identity.SamePerson)
	assert.Equal(t, []string{"98765432100"}, identity.Identifiers)
	assert.Equal(t, []string{model.ChannelEmail}, identity.Channels)
}

func TestResolveUsesContactCache(t *testing.T) {
	b, mockLookup := newTestBusiness(t)

	// One provider call, then the cache serves the repeat.
	mockLookup.EXPECT().
		SearchByPhone(gomock.Any(), gomock.Any()).
		Return([]model.LookupCandidate{{Identifier: "12345678901"}}, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		identity, err := b.Resolve(context.Background(), strPtr("11999887766"), nil)
		assert.NoError(t, err)
		assert.Equal(t, []string{"12345678901"}, identity.Identifiers)
	}
}

func TestResolveCachesNegativeLookup(t *testing.T) {
	b, mockLookup := newTestBusiness(t)

	// An empty result is a confirmed negative and must not trigger a
	// second provider call.
	mockLookup.EXPECT().
		SearchByPhone(gomock.Any(), gomock.Any()).
		Return([]model.LookupCandidate{}, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		_, err := b.Resolve(context.Background(), strPtr("11999887766"), nil)
		var e *errs.Error
		assert.ErrorAs(t, err, &e)
		assert.Equal(t, errs.NotFound, e.Code)
	}
}

func TestResolveDoesNotCacheFailures(t *testing.T) {
	b, mockLookup := newTestBusiness(t)

	// A failed lookup must stay uncached so the next attempt retries.
	mockLookup.EXPECT().
		SearchByPhone(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider timeout")).
		Times(1)
	mockLookup.EXPECT().
		SearchByPhone(gomock.Any(), gomock.Any()).
		Return([]model.LookupCandidate{{Identifier: "12345678901"}}, nil).
		Times(1)

	_, err := b.Resolve(context.Background(), strPtr("11999887766"), nil)
	assert.Error(t, err)

	identity, err := b.Resolve(context.Background(), strPtr("11999887766"), nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"12345678901"}, identity.Identifiers)
}
