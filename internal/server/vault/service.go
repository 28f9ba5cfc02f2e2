// Package vault implements the credential vault service: ownership-scoped
// CRUD over credential records, with secrets encrypted at rest and strength
// recomputed on every write of the secret.
package vault

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	credrepo "github.com/dmitrijs2005/passvault/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/passvault/internal/strength"
)

type Service struct {
	repo   credrepo.Repository
	cipher *cryptox.Cipher
}

func NewService(repo credrepo.Repository, cipher *cryptox.Cipher) *Service {
	return &Service{repo: repo, cipher: cipher}
}

// CreateParams carries the fields accepted when creating a record.
// An empty Category selects the default.
type CreateParams struct {
	Title    string
	Username string
	Secret   string
	URL      string
	Category models.Category
}

// UpdateParams carries a partial update; nil means the field was not
// supplied. An empty Title or Secret is ignored rather than applied, matching
// the create-side requirement that both are non-empty.
type UpdateParams struct {
	Title    *string
	Username *string
	Secret   *string
	URL      *string
	Category *models.Category
}

// List returns all records owned by userID, newest first, with each secret
// decrypted for presentation. An empty result is valid. A record whose
// ciphertext cannot be decrypted fails the whole read with
// common.ErrorDecryptionFailed.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Credential, error) {

	items, err := s.repo.SelectByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		plaintext, err := s.cipher.DecryptString(item.Secret)
		if err != nil {
			return nil, err
		}
		item.Secret = plaintext
	}

	return items, nil
}

// Create validates the input, classifies the plaintext secret, encrypts it
// and persists the record. The returned record has its Secret field cleared:
// the creation response never carries the secret back.
func (s *Service) Create(ctx context.Context, userID string, p CreateParams) (*models.Credential, error) {

	if p.Title == "" || p.Secret == "" {
		return nil, common.ErrorValidation
	}

	category := p.Category
	if category == "" {
		category = models.CategoryPersonal
	}
	if !models.ValidCategory(category) {
		return nil, common.ErrorInvalidCategory
	}

	cred := &models.Credential{
		UserID:   userID,
		Title:    p.Title,
		Username: p.Username,
		Secret:   s.cipher.EncryptString(p.Secret),
		URL:      p.URL,
		Category: category,
		Strength: strength.Classify(p.Secret),
	}

	cred, err := s.repo.Create(ctx, cred)
	if err != nil {
		return nil, err
	}

	cred.Secret = ""
	return cred, nil
}

// Update applies only the supplied fields to a record owned by userID. A
// record owned by someone else is reported as common.ErrorNotFound, exactly
// like an absent one. A supplied secret is re-encrypted and reclassified.
// The returned record has its Secret field cleared.
func (s *Service) Update(ctx context.Context, userID, id string, p UpdateParams) (*models.Credential, error) {

	if id == "" {
		return nil, common.ErrorValidation
	}

	cred, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if p.Title != nil && *p.Title != "" {
		cred.Title = *p.Title
	}
	if p.Username != nil {
		cred.Username = *p.Username
	}
	if p.Secret != nil && *p.Secret != "" {
		cred.Secret = s.cipher.EncryptString(*p.Secret)
		cred.Strength = strength.Classify(*p.Secret)
	}
	if p.URL != nil {
		cred.URL = *p.URL
	}
	if p.Category != nil && *p.Category != "" {
		if !models.ValidCategory(*p.Category) {
			return nil, common.ErrorInvalidCategory
		}
		cred.Category = *p.Category
	}

	cred, err = s.repo.Update(ctx, cred)
	if err != nil {
		return nil, err
	}

	cred.Secret = ""
	return cred, nil
}

// Delete removes a record owned by userID. Deleting a record that does not
// exist, or that belongs to another user, yields common.ErrorNotFound.
func (s *Service) Delete(ctx context.Context, userID, id string) error {

	if id == "" {
		return common.ErrorValidation
	}

	return s.repo.Delete(ctx, id, userID)
}
