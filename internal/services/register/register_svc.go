package register

import (
	"context"
	"errors"
)

var ErrUserExists = errors.New("user already exists")

// CredentialStore persists name/password pairs. Implementations live in
// internal/storage/credentials; the service never sees which backend it
// talks to. Passwords are stored as received — there is no security model
// here, registration shares nothing with the chat core.
type CredentialStore interface {
	Exists(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, name, password string) error
}

type IRegisterService interface {
	Register(ctx context.Context, name, password string) error
}

type registerService struct {
	store CredentialStore
}

func NewRegisterService(store CredentialStore) IRegisterService {
	return &registerService{store: store}
}

// Register persists the pair unless the name is already taken. The
// lookup-then-save is not atomic; a racing duplicate surfaces as a store
// error rather than ErrUserExists.
func (svc *registerService) Register(ctx context.Context, name, password string) error {
	exists, err := svc.store.Exists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}
	return svc.store.Save(ctx, name, password)
}
