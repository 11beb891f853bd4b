package register

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatrelaygo/internal/storage/credentials"
)

func TestRegisterThenDuplicate(t *testing.T) {
	svc := NewRegisterService(credentials.NewMemory())
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "hunter2"))

	err := svc.Register(ctx, "alice", "otherpw")
	assert.ErrorIs(t, err, ErrUserExists)

	// A different name is unaffected.
	assert.NoError(t, svc.Register(ctx, "bob", "hunter2"))
}

type failingStore struct{ err error }

func (f failingStore) Exists(context.Context, string) (bool, error) { return false, f.err }
func (f failingStore) Save(context.Context, string, string) error   { return f.err }

func TestRegisterStoreFailure(t *testing.T) {
	boom := errors.New("store unreachable")
	svc := NewRegisterService(failingStore{err: boom})

	err := svc.Register(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUserExists)
}
