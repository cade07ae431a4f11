package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"

	"gauzy/internal/model"
	"gauzy/internal/repository"
	"gauzy/internal/storage"
)

// OrganizationListResult is the service-level DTO for paginated organizations.
type OrganizationListResult struct {
	Items []model.Organization `json:"data"`
	Total int                  `json:"total"`
}

// CurrencyInfo describes one selectable organization currency.
type CurrencyInfo struct {
	Code     string `json:"code" example:"USD"`
	Symbol   string `json:"symbol" example:"$"`
	Fraction int    `json:"fraction" example:"2"`
	Example  string `json:"example" example:"$1,234.56"`
}

// OrganizationService defines the organization use cases.
type OrganizationService interface {
	Create(ctx context.Context, dto *model.OrganizationCreateDTO) (*model.Organization, error)
	Get(ctx context.Context, id string) (*model.Organization, error)
	List(ctx context.Context, limit, offset int) (*OrganizationListResult, error)
	// Update applies the non-nil fields of dto.
	Update(ctx context.Context, id string, dto *model.OrganizationUpdateDTO) (*model.Organization, error)
	// Delete soft-deletes the organization.
	Delete(ctx context.Context, id string) error
	// UploadImage stores a logo and saves its URL. The object is removed again
	// if the URL cannot be saved; a replaced logo is removed on success.
	UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) (*model.Organization, error)
	Currencies() []CurrencyInfo
}

type organizationService struct {
	repo  repository.OrganizationRepository
	store storage.Storage
	now   func() time.Time
}

// NewOrganizationService constructs a new OrganizationService. store may be nil
// when object storage is disabled; UploadImage then fails with ErrStorageDisabled.
func NewOrganizationService(repo repository.OrganizationRepository, store storage.Storage) OrganizationService {
	return &organizationService{repo: repo, store: store, now: func() time.Time { return time.Now().UTC() }}
}

func (s *organizationService) Create(ctx context.Context, dto *model.OrganizationCreateDTO) (*model.Organization, error) {
	if err := model.Validate(dto); err != nil {
		return nil, err
	}
	org := dto.ToEntity()
	org.ID = uuid.NewString()
	org.CreatedAt = s.now()
	org.UpdatedAt = org.CreatedAt

	stored, err := s.repo.Create(ctx, org)
	if err != nil {
		return nil, wrap("create organization", err)
	}
	return stored, nil
}

func (s *organizationService) Get(ctx context.Context, id string) (*model.Organization, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrOrganizationNotFound)
	}
	return org, nil
}

func (s *organizationService) List(ctx context.Context, limit, offset int) (*OrganizationListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &OrganizationListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *organizationService) Update(ctx context.Context, id string, dto *model.OrganizationUpdateDTO) (*model.Organization, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := model.Validate(dto); err != nil {
		return nil, err
	}
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrOrganizationNotFound)
	}
	dto.Apply(org)
	org.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, org)
	if err != nil {
		return nil, mapNotFound(err, ErrOrganizationNotFound)
	}
	return updated, nil
}

func (s *organizationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return mapNotFound(s.repo.SoftDelete(ctx, id), ErrOrganizationNotFound)
}

func (s *organizationService) UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) (*model.Organization, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrOrganizationNotFound)
	}
	previous := org.ImageURL

	key := filepath.ToSlash(filepath.Join("organizations", id, uuid.NewString()+filepath.Ext(filename)))
	obj, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		// Metadata travels as HTTP headers, so the client's name is escaped to ASCII.
		Metadata: map[string]string{
			"original-filename": url.PathEscape(filepath.Base(filename)),
			"organization-id":   id,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.repo.UpdateImageURL(ctx, id, obj.URL); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", mapNotFound(err, ErrOrganizationNotFound))
	}

	if previous != nil {
		if oldKey, ok := s.store.KeyFromURL(*previous); ok {
			// Best effort.
			_ = s.store.Delete(ctx, oldKey)
		}
	}

	org.ImageURL = &obj.URL
	return org, nil
}

func (s *organizationService) Currencies() []CurrencyInfo {
	return Currencies()
}

// Currencies lists CurrenciesEnum with go-money metadata, in enum order.
func Currencies() []CurrencyInfo {
	out := make([]CurrencyInfo, 0, len(model.CurrenciesEnum))
	for _, code := range model.CurrenciesEnum {
		c := money.GetCurrency(code)
		if c == nil {
			continue
		}
		out = append(out, CurrencyInfo{
			Code:     c.Code,
			Symbol:   c.Grapheme,
			Fraction: c.Fraction,
			Example:  money.New(123456, c.Code).Display(),
		})
	}
	return out
}
