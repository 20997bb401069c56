package enricher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/enrichment/breaker"
	"encore.app/enrichment/cache"
	"encore.app/enrichment/mocks/integrations/workapi_client"
)

func newTestBusiness(t *testing.T) (*business, *workapi_client.MockClient, *cache.Set) {
	ctrl := gomock.NewController(t)
	mockAPI := workapi_client.NewMockClient(ctrl)
	caches := cache.NewSet()
	b := &business{
		api:     mockAPI,
		caches:  caches,
		breaker: breaker.New("test"),
	}
	return b, mockAPI, caches
}

const profileJSON = `{"DadosBasicos":{"nome":"Maria Silva","cpf":"12345678901"}}`

func TestFetchCachesSealedResponse(t *testing.T) {
	b, mockAPI, _ := newTestBusiness(t)

	mockAPI.EXPECT().
		FetchAll(gomock.Any(), "12345678901").
		Return([]byte(profileJSON), nil).
		Times(1)

	for i := 0; i < 2; i++ {
		enriched, err := b.Fetch(context.Background(), "12345678901")
		assert.NoError(t, err)
		assert.Equal(t, "12345678901", enriched.Identifier)
		assert.Equal(t, []byte(profileJSON), enriched.Raw)

		basics, ok := enriched.Doc.Section("DadosBasicos")
		assert.True(t, ok)
		nome, _ := basics.Str("nome")
		assert.Equal(t, "Maria Silva", nome)
	}
}

func TestFetchCorruptCacheEntryRefetches(t *testing.T) {
	b, mockAPI, caches := newTestBusiness(t)

	// A tampered entry must be discarded and the provider called again.
	tampered := cache.Seal(profileJSON)
	tampered.Content = `{"DadosBasicos":{"nome":"Impostor"}}`
	caches.Responses.Add(cache.AllModulesKey("12345678901"), tampered.Serialize())

	mockAPI.EXPECT().
		FetchAll(gomock.Any(), "12345678901").
		Return([]byte(profileJSON), nil).
		Times(1)

	enriched, err := b.Fetch(context.Background(), "12345678901")
	assert.NoError(t, err)
	assert.Equal(t, []byte(profileJSON), enriched.Raw)
}

func TestFetchProviderFailure(t *testing.T) {
	b, mockAPI, _ := newTestBusiness(t)

	mockAPI.EXPECT().
		FetchAll(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("status 503"))

	_, err := b.Fetch(context.Background(), "12345678901")

	var e *errs.Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, errs.Unavailable, e.Code)
}

func TestFetchRejectsNonObjectPayload(t *testing.T) {
	b, mockAPI, caches := newTestBusiness(t)

	mockAPI.EXPECT().
		FetchAll(gomock.Any(), gomock.Any()).
		Return([]byte(`"just a string"`), nil)

	_, err := b.Fetch(context.Background(), "12345678901")

	var e *errs.Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, errs.Internal, e.Code)

	// Unparseable payloads must not be cached.
	_, ok := caches.Responses.Get(cache.AllModulesKey("12345678901"))
	assert.False(t, ok)
}

func TestFetchModuleUsesDistinctCacheKey(t *testing.T) {
	b, mockAPI, caches := newTestBusiness(t)

	mockAPI.EXPECT().
		FetchModule(gomock.Any(), "telefone", "12345678901").
		Return([]byte(`{"telefones":[]}`), nil)

	_, err := b.FetchModule(context.Background(), "telefone", "12345678901")
	assert.NoError(t, err)

	_, ok := caches.Responses.Get(cache.ModuleKey("telefone", "12345678901"))
	assert.True(t, ok)
	_, ok = caches.Responses.Get(cache.AllModulesKey("12345678901"))
	assert.False(t, ok)
}

func TestFetchBatchDropsIndividualFailures(t *testing.T) {
	b, mockAPI, _ := newTestBusiness(t)

	mockAPI.EXPECT().
		FetchAll(gomock.Any(), "12345678901").
		Return([]byte(profileJSON), nil)
	mockAPI.EXPECT().
		FetchAll(gomock.Any(), "98765432100").
		Return(nil, errors.New("status 500"))

	enriched, err := b.FetchBatch(context.Background(), []string{"12345678901", "98765432100"})

	assert.NoError(t, err)
	assert.Len(t, enriched, 1)
	assert.Equal(t, "12345678901", enriched[0].Identifier)
}

func TestFetchBatchFailsWhenAllFail(t *testing.T) {
	b, mockAPI, _ := newTestBusiness(t)

	mockAPI.EXPECT().
		FetchAll(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("status 500")).
		Times(2)

	_, err := b.FetchBatch(context.Background(), []string{"12345678901", "98765432100"})

	var e *errs.Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, errs.Unavailable, e.Code)
}

func TestFetchBatchPreservesOrder(t *testing.T) {
	b, mockAPI, _ := newTestBusiness(t)

	mockAPI.EXPECT().
		FetchAll(gomock.Any(), "12345678901").
		Return([]byte(`{"DadosBasicos":{"cpf":"12345678901"}}`), nil)
	mockAPI.EXPECT().
		FetchAll(gomock.Any(), "98765432100").
		Return([]byte(`{"DadosBasicos":{"cpf":"98765432100"}}`), nil)

	enriched, err := b.FetchBatch(context.Background(), []string{"12345678901", "98765432100"})

	assert.NoError(t, err)
	assert.Len(t, enriched, 2)
	assert.Equal(t, "12345678901", enriched[0].Identifier)
	assert.Equal(t, "98765432100", enriched[1].Identifier)
}
