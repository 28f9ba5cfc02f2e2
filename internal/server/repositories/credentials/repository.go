package credentials

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// Repository persists credential records. Every query that targets a single
// record takes the owning user id as well, so a record belonging to another
// user is indistinguishable from an absent one.
type Repository interface {
	Create(ctx context.Context, cred *models.Credential) (*models.Credential, error)
	SelectByUser(ctx context.Context, userID string) ([]*models.Credential, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*models.Credential, error)
	Update(ctx context.Context, cred *models.Credential) (*models.Credential, error)
	Delete(ctx context.Context, id, userID string) error
}
