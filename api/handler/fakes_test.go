package handler

import (
	"context"
	"strings"
	"time"

	"imobia/internal/entity"
	"imobia/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repositories backing the httptest fixtures.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) StatusByEmail(ctx context.Context, email string) (entity.UserStatus, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user.Status, nil
		}
	}
	return "", nil
}

func (r *memUserRepo) List(ctx context.Context) ([]entity.User, error) {
	users := make([]entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type memSessionRepo struct {
	sessions map[string]*entity.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *memSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	clone := *session
	r.sessions[session.ID] = &clone
	return nil
}

func (r *memSessionRepo) FindValidByTokenHash(ctx context.Context, hash string) (*entity.Session, error) {
	for _, session := range r.sessions {
		if session.TokenHash == hash && session.ExpiresAt.After(time.Now()) {
			clone := *session
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memSessionRepo) Delete(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *memSessionRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	for id, session := range r.sessions {
		if session.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *memSessionRepo) CleanupExpired(ctx context.Context) error {
	return nil
}

type memAccountRepo struct {
	accounts map[string]*entity.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]*entity.Account)}
}

func (r *memAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *memAccountRepo) FindCredentialByUserID(ctx context.Context, userID string) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.UserID == userID && account.ProviderID == entity.ProviderCredential {
			clone := *account
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	for _, account := range r.accounts {
		if account.UserID == userID && account.ProviderID == entity.ProviderCredential {
			hash := passwordHash
			account.Password = &hash
		}
	}
	return nil
}

type memAuditRepo struct{}

func (memAuditRepo) Create(ctx context.Context, log *entity.AuditLog) error { return nil }

func (memAuditRepo) ListByUser(ctx context.Context, userID string, limit int) ([]entity.AuditLog, error) {
	return nil, nil
}

type memCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *memCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *memCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if customer, ok := r.customers[id]; ok {
		clone := *customer
		return &clone, nil
	}
	return nil, nil
}

func (r *memCustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	customers := make([]entity.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, *customer)
	}
	return customers, nil
}

func (r *memCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *memCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

type memListingRepo struct {
	listings map[uuid.UUID]*entity.RealEstate
}

func newMemListingRepo() *memListingRepo {
	return &memListingRepo{listings: make(map[uuid.UUID]*entity.RealEstate)}
}

func (r *memListingRepo) Create(ctx context.Context, listing *entity.RealEstate, prefix string, codeFor func(last string) string) error {
	if listing.Code == "" {
		last, _ := r.LastCodeForPrefix(ctx, prefix)
		listing.Code = codeFor(last)
	}
	for _, existing := range r.listings {
		if existing.Code == listing.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *memListingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RealEstate, error) {
	if listing, ok := r.listings[id]; ok {
		clone := *listing
		return &clone, nil
	}
	return nil, nil
}

func (r *memListingRepo) List(ctx context.Context) ([]entity.RealEstate, error) {
	listings := make([]entity.RealEstate, 0, len(r.listings))
	for _, listing := range r.listings {
		listings = append(listings, *listing)
	}
	return listings, nil
}

func (r *memListingRepo) ListAvailable(ctx context.Context, filter repository.ListingFilter) ([]entity.RealEstate, int64, error) {
	var matched []entity.RealEstate
	for _, listing := range r.listings {
		if !listing.IsAvailable {
			continue
		}
		if filter.Type != "" && string(listing.Type) != filter.Type {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(listing.Title), needle) &&
				!strings.Contains(strings.ToLower(listing.Code), needle) {
				continue
			}
		}
		matched = append(matched, *listing)
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *memListingRepo) LastCodeForPrefix(ctx context.Context, prefix string) (string, error) {
	last := ""
	for _, listing := range r.listings {
		if strings.HasPrefix(listing.Code, prefix+"-") && listing.Code > last {
			last = listing.Code
		}
	}
	return last, nil
}

func (r *memListingRepo) Update(ctx context.Context, listing *entity.RealEstate) error {
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *memListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.listings, id)
	return nil
}

type memSettingsRepo struct {
	row *entity.CompanySettings
}

func (r *memSettingsRepo) Get(ctx context.Context) (*entity.CompanySettings, error) {
	if r.row == nil {
		return nil, nil
	}
	clone := *r.row
	return &clone, nil
}

func (r *memSettingsRepo) Upsert(ctx context.Context, settings *entity.CompanySettings) error {
	settings.ID = entity.CompanySettingsID
	clone := *settings
	r.row = &clone
	return nil
}
