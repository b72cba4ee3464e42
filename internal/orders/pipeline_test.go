package orders

import (
	"context"
	"errors"
	"testing"

	"duckstore_back_end/internal/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	calls int
	sent  int
	fail  bool
}

func (f *fakeMailer) SendOrderConfirmation(_, _, _ string) error {
	f.calls++
	if f.fail {
		return errors.New("relais SMTP a refusé la connexion")
	}
	f.sent++
	return nil
}

func submitInput() SubmitInput {
	return SubmitInput{
		Email:       "a@b.com",
		AssetRef:    assets.Encode([]byte("glTF-binary-duck")),
		Description: "Swiss duck",
	}
}

func newTestPipeline(checkout CheckoutClient, store ObjectStore, repo OrderRepo, mailer Mailer) *Pipeline {
	return NewPipeline(checkout, NewPersister(store, repo, nil), NewNotifier(mailer))
}

func TestSubmitHappyPath(t *testing.T) {
	checkout := &countingCheckout{}
	store := newFakeStore()
	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	p := newTestPipeline(checkout, store, repo, mailer)

	sessionID, err := p.Submit(context.Background(), submitInput())

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sessionID)
	assert.Contains(t, store.objects, "cs_test_1.glb")
	assert.Len(t, repo.inserted, 1)
	assert.Equal(t, 1, mailer.sent)
}

func TestSubmitCheckoutFailureStopsEverything(t *testing.T) {
	checkout := &countingCheckout{fail: true}
	store := newFakeStore()
	repo := &fakeRepo{}
	p := newTestPipeline(checkout, store, repo, &fakeMailer{})

	_, err := p.Submit(context.Background(), submitInput())

	require.Error(t, err)
	assert.Zero(t, store.puts)
	assert.Empty(t, repo.inserted)
}

func TestSubmitPersistFailureStillReturnsSession(t *testing.T) {
	checkout := &countingCheckout{}
	store := newFakeStore()
	store.failPut = true
	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	p := newTestPipeline(checkout, store, repo, mailer)

	sessionID, err := p.Submit(context.Background(), submitInput())

	// La session existe déjà côté Stripe : le client part payer quand même
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sessionID)
	assert.Empty(t, repo.inserted)
	// Mais pas d'e-mail : rien n'a été stocké, on ne confirme pas à tort
	assert.Zero(t, mailer.calls)
}

func TestSubmitMailerFailureStillReturnsSession(t *testing.T) {
	checkout := &countingCheckout{}
	store := newFakeStore()
	repo := &fakeRepo{}
	mailer := &fakeMailer{fail: true}
	p := newTestPipeline(checkout, store, repo, mailer)

	sessionID, err := p.Submit(context.Background(), submitInput())

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sessionID)
	assert.Len(t, repo.inserted, 1)
	assert.Zero(t, mailer.sent)
}

func TestSubmitNotIdempotent(t *testing.T) {
	checkout := &countingCheckout{}
	p := newTestPipeline(checkout, newFakeStore(), &fakeRepo{}, &fakeMailer{})

	first, err := p.Submit(context.Background(), submitInput())
	require.NoError(t, err)
	second, err := p.Submit(context.Background(), submitInput())
	require.NoError(t, err)

	// Deux commandes identiques = deux sessions distinctes, c'est voulu
	assert.NotEqual(t, first, second)
}

func TestSubmitEmptyEmailFails(t *testing.T) {
	p := newTestPipeline(&countingCheckout{}, newFakeStore(), &fakeRepo{}, &fakeMailer{})

	in := submitInput()
	in.Email = ""
	_, err := p.Submit(context.Background(), in)

	require.Error(t, err)
}
