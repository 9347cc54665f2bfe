package store

import (
	"context"

	"github.com/MKhiriev/go-storefront-demo/models"
)

type memoryUserRepository struct {
	users []models.Credentials
}

// NewMemoryUserRepository returns a UserRepository over the given
// credential pairs, or over the built-in seed when none are passed.
func NewMemoryUserRepository(users ...models.Credentials) UserRepository {
	if len(users) == 0 {
		users = seedUsers
	}
	return &memoryUserRepository{users: users}
}

func (r *memoryUserRepository) FindUser(ctx context.Context, creds models.Credentials) (models.Credentials, error) {
	return findFirst(r.users, func(u models.Credentials) bool {
		return u.Username == creds.Username && u.Password == creds.Password
	}, ErrNoUserWasFound)
}
