package orders

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"duckstore_back_end/internal/assets"
	"duckstore_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	objects      map[string][]byte
	contentTypes map[string]string
	puts         int
	failPut      bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (f *fakeStore) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	f.puts++
	if f.failPut {
		return "", errors.New("minio indisponible")
	}
	f.objects[key] = data
	f.contentTypes[key] = contentType
	return "https://cdn.duckstore.test/duck-orders/" + key, nil
}

type fakeRepo struct {
	inserted   []*models.Order
	failInsert bool
}

func (f *fakeRepo) Insert(_ context.Context, o *models.Order) error {
	if f.failInsert {
		return errors.New("scylla indisponible")
	}
	f.inserted = append(f.inserted, o)
	return nil
}

func (f *fakeRepo) GetBySession(_ context.Context, sessionID string) (*models.Order, error) {
	for i := len(f.inserted) - 1; i >= 0; i-- {
		if f.inserted[i].SessionID == sessionID {
			return f.inserted[i], nil
		}
	}
	return nil, errors.New("not found")
}

type fakeIndexer struct {
	indexed int
	fail    bool
}

func (f *fakeIndexer) Index(_ context.Context, _ *models.Order) error {
	if f.fail {
		return errors.New("elastic indisponible")
	}
	f.indexed++
	return nil
}

func validInput() PersistInput {
	return PersistInput{
		Email:       "a@b.com",
		AssetRef:    assets.Encode([]byte("glTF-binary-duck")),
		SessionID:   "cs_test_123",
		Description: "Swiss duck",
	}
}

func TestPersistSuccess(t *testing.T) {
	store := newFakeStore()
	repo := &fakeRepo{}
	indexer := &fakeIndexer{}
	p := NewPersister(store, repo, indexer)

	result, err := p.Persist(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.duckstore.test/duck-orders/cs_test_123.glb", result.AssetURL)
	assert.Equal(t, []byte("glTF-binary-duck"), store.objects["cs_test_123.glb"])
	assert.Equal(t, "model/gltf-binary", store.contentTypes["cs_test_123.glb"])

	require.Len(t, repo.inserted, 1)
	order := repo.inserted[0]
	assert.Equal(t, "cs_test_123", order.SessionID)
	assert.Equal(t, "a@b.com", order.CustomerEmail)
	assert.Equal(t, "Swiss duck", order.Description)
	assert.Equal(t, models.StatusNotStarted, order.Status)
	assert.Equal(t, result.AssetURL, order.ModelURL)
	assert.False(t, order.OrderDate.IsZero())
	assert.Equal(t, 1, indexer.indexed)
}

func TestPersistMissingFieldsNoExternalCalls(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PersistInput)
		missing []string
	}{
		{"email absent", func(in *PersistInput) { in.Email = "" }, []string{"email"}},
		{"assetRef absent", func(in *PersistInput) { in.AssetRef = "" }, []string{"assetRef"}},
		{"sessionId absent", func(in *PersistInput) { in.SessionID = "" }, []string{"sessionId"}},
		{"tout absent", func(in *PersistInput) { *in = PersistInput{} }, []string{"email", "assetRef", "sessionId"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			repo := &fakeRepo{}
			p := NewPersister(store, repo, nil)

			in := validInput()
			tc.mutate(&in)
			_, err := p.Persist(context.Background(), in)

			var missing *MissingFieldsError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.missing, missing.Fields)
			assert.Zero(t, store.puts, "aucun upload ne doit partir")
			assert.Empty(t, repo.inserted, "aucune écriture en base ne doit partir")
		})
	}
}

func TestPersistInvalidAssetNoExternalCalls(t *testing.T) {
	store := newFakeStore()
	repo := &fakeRepo{}
	p := NewPersister(store, repo, nil)

	in := validInput()
	in.AssetRef = "pas-du-base64-!!!"
	_, err := p.Persist(context.Background(), in)

	var invalid *InvalidAssetError
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, store.puts)
	assert.Empty(t, repo.inserted)
}

func TestPersistUploadFailureAbortsBeforeInsert(t *testing.T) {
	store := newFakeStore()
	store.failPut = true
	repo := &fakeRepo{}
	p := NewPersister(store, repo, nil)

	_, err := p.Persist(context.Background(), validInput())

	require.Error(t, err)
	assert.Empty(t, repo.inserted, "pas de ligne de commande sans modèle stocké")
}

func TestPersistInsertFailureLeavesOrphanObject(t *testing.T) {
	store := newFakeStore()
	repo := &fakeRepo{failInsert: true}
	p := NewPersister(store, repo, nil)

	_, err := p.Persist(context.Background(), validInput())

	require.Error(t, err)
	// L'objet est déjà uploadé : orphelin assumé, pas de nettoyage
	assert.Contains(t, store.objects, "cs_test_123.glb")
}

func TestPersistNotIdempotent(t *testing.T) {
	store := newFakeStore()
	repo := &fakeRepo{}
	p := NewPersister(store, repo, nil)

	first := validInput()
	second := validInput()
	second.AssetRef = assets.Encode([]byte("glTF-binary-duck-v2"))

	_, err := p.Persist(context.Background(), first)
	require.NoError(t, err)
	_, err = p.Persist(context.Background(), second)
	require.NoError(t, err)

	// Même clé → objet réécrit, mais bien deux lignes en base
	assert.Equal(t, 2, store.puts)
	assert.Len(t, store.objects, 1)
	assert.Equal(t, []byte("glTF-binary-duck-v2"), store.objects["cs_test_123.glb"])
	require.Len(t, repo.inserted, 2)
	assert.NotEqual(t, repo.inserted[0].OrderID, repo.inserted[1].OrderID)
}

func TestPersistIndexerFailureIsSwallowed(t *testing.T) {
	store := newFakeStore()
	repo := &fakeRepo{}
	p := NewPersister(store, repo, &fakeIndexer{fail: true})

	result, err := p.Persist(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, result.AssetURL)
	assert.Len(t, repo.inserted, 1)
}

type countingCheckout struct {
	calls int
	fail  bool
}

func (f *countingCheckout) CreateSession(_ context.Context, email string) (string, error) {
	if email == "" {
		return "", errors.New("e-mail client manquant")
	}
	if f.fail {
		return "", errors.New("stripe indisponible")
	}
	f.calls++
	return fmt.Sprintf("cs_test_%d", f.calls), nil
}
