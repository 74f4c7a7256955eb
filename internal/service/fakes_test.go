package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"imobia/internal/entity"
	"imobia/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(hash string, password string) bool {
	return hash == "hashed:"+password
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeUserRepo mirrors the gorm repository's delete transaction when the
// sessions/accounts fakes are attached: session and account rows go first,
// then the user row.
type fakeUserRepo struct {
	users     map[string]*entity.User
	sessions  *fakeSessionRepo
	accounts  *fakeAccountRepo
	statusErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) StatusByEmail(ctx context.Context, email string) (entity.UserStatus, error) {
	if r.statusErr != nil {
		return "", r.statusErr
	}
	for _, user := range r.users {
		if user.Email == email {
			return user.Status, nil
		}
	}
	return "", nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	users := make([]entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if r.sessions != nil {
		if err := r.sessions.DeleteAllByUser(ctx, id); err != nil {
			return err
		}
	}
	if r.accounts != nil {
		r.accounts.deleteAllByUser(id)
	}
	delete(r.users, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *entity.Session) error {
	s.CreatedAt = time.Now()
	clone := *s
	r.sessions[s.ID] = &clone
	return nil
}

func (r *fakeSessionRepo) FindValidByTokenHash(ctx context.Context, hash string) (*entity.Session, error) {
	for _, session := range r.sessions {
		if session.TokenHash == hash && session.ExpiresAt.After(time.Now()) {
			clone := *session
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	for id, session := range r.sessions {
		if session.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *fakeSessionRepo) CleanupExpired(ctx context.Context) error {
	for id, session := range r.sessions {
		if session.ExpiresAt.Before(time.Now()) {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *fakeSessionRepo) countForUser(userID string) int {
	count := 0
	for _, session := range r.sessions {
		if session.UserID == userID {
			count++
		}
	}
	return count
}

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*entity.Account)}
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *fakeAccountRepo) FindCredentialByUserID(ctx context.Context, userID string) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.UserID == userID && account.ProviderID == entity.ProviderCredential {
			clone := *account
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) deleteAllByUser(userID string) {
	for id, account := range r.accounts {
		if account.UserID == userID {
			delete(r.accounts, id)
		}
	}
}

func (r *fakeAccountRepo) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	for _, account := range r.accounts {
		if account.UserID == userID && account.ProviderID == entity.ProviderCredential {
			hash := passwordHash
			account.Password = &hash
			account.UpdatedAt = time.Now()
		}
	}
	return nil
}

type fakeAuditRepo struct {
	logs []entity.AuditLog
}

func (r *fakeAuditRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeAuditRepo) ListByUser(ctx context.Context, userID string, limit int) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	for _, log := range r.logs {
		if log.UserID != nil && *log.UserID == userID {
			logs = append(logs, log)
		}
	}
	return logs, nil
}

func (r *fakeAuditRepo) lastAction() entity.AuditAction {
	if len(r.logs) == 0 {
		return ""
	}
	return r.logs[len(r.logs)-1].Action
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if customer, ok := r.customers[id]; ok {
		clone := *customer
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	customers := make([]entity.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, *customer)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CreatedAt.After(customers[j].CreatedAt)
	})
	return customers, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	customer.UpdatedAt = time.Now()
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

type fakeListingRepo struct {
	listings map[uuid.UUID]*entity.RealEstate
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uuid.UUID]*entity.RealEstate)}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.RealEstate, prefix string, codeFor func(last string) string) error {
	if listing.Code == "" {
		last, _ := r.LastCodeForPrefix(ctx, prefix)
		listing.Code = codeFor(last)
	}
	for _, existing := range r.listings {
		if existing.Code == listing.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *fakeListingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RealEstate, error) {
	if listing, ok := r.listings[id]; ok {
		clone := *listing
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeListingRepo) List(ctx context.Context) ([]entity.RealEstate, error) {
	listings := make([]entity.RealEstate, 0, len(r.listings))
	for _, listing := range r.listings {
		listings = append(listings, *listing)
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings, nil
}

func (r *fakeListingRepo) ListAvailable(ctx context.Context, filter repository.ListingFilter) ([]entity.RealEstate, int64, error) {
	var matched []entity.RealEstate
	for _, listing := range r.listings {
		if !listing.IsAvailable {
			continue
		}
		if filter.Finality != "" && string(listing.Finality) != filter.Finality {
			continue
		}
		if filter.Type != "" && string(listing.Type) != filter.Type {
			continue
		}
		if filter.Bedrooms > 0 && (listing.Bedrooms == nil || *listing.Bedrooms < filter.Bedrooms) {
			continue
		}
		if filter.MinPrice > 0 && (listing.SaleValue == nil || *listing.SaleValue < filter.MinPrice) {
			continue
		}
		if filter.MaxPrice > 0 && (listing.SaleValue == nil || *listing.SaleValue > filter.MaxPrice) {
			continue
		}
		if filter.City != "" && (listing.City == nil || !strings.Contains(strings.ToLower(*listing.City), strings.ToLower(filter.City))) {
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
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

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

func (r *fakeListingRepo) LastCodeForPrefix(ctx context.Context, prefix string) (string, error) {
	last := ""
	for _, listing := range r.listings {
		if strings.HasPrefix(listing.Code, prefix+"-") && listing.Code > last {
			last = listing.Code
		}
	}
	return last, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.RealEstate) error {
	listing.UpdatedAt = time.Now()
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.listings, id)
	return nil
}

type fakeSettingsRepo struct {
	row *entity.CompanySettings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.CompanySettings, error) {
	if r.row == nil {
		return nil, nil
	}
	clone := *r.row
	return &clone, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, settings *entity.CompanySettings) error {
	settings.ID = entity.CompanySettingsID
	if r.row != nil {
		settings.CreatedAt = r.row.CreatedAt
	} else {
		settings.CreatedAt = time.Now()
	}
	settings.UpdatedAt = time.Now()
	clone := *settings
	r.row = &clone
	return nil
}
