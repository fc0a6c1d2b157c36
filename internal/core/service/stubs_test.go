package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shs/account-service/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory credential store. The mutex stands in for the unique index.
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	mu        sync.Mutex
	accounts  map[string]*domain.Account
	nextID    int
	failWith  error // if set, every call returns this error
	findCalls int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, a := range r.accounts {
		if a.Username == account.Username {
			return nil, domain.ErrAccountExists
		}
	}
	r.nextID++
	stored := cloneAccount(account)
	stored.ID = fmt.Sprintf("acc-%03d", r.nextID)
	r.accounts[stored.ID] = stored
	return cloneAccount(stored), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, a := range r.accounts {
		if a.Username == username {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) List(_ context.Context, types []domain.AccountType) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*domain.Account
	for _, a := range r.accounts {
		for _, typ := range types {
			if a.Type == typ {
				out = append(out, cloneAccount(a))
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAccountRepo) Update(_ context.Context, id string, update domain.AccountUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if update.Username != nil {
		for otherID, other := range r.accounts {
			if otherID != id && other.Username == *update.Username {
				return domain.ErrAccountExists
			}
		}
		a.Username = *update.Username
	}
	if update.DisplayName != nil {
		a.DisplayName = *update.DisplayName
	}
	if update.PasswordHash != nil {
		a.PasswordHash = *update.PasswordHash
	}
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

// seed stores an account directly, bypassing the service.
func (r *stubAccountRepo) seed(typ domain.AccountType, username, password string) *domain.Account {
	created, err := r.Create(context.Background(), &domain.Account{
		Username:     username,
		DisplayName:  username,
		PasswordHash: stubHasher{}.mustHash(password),
		Type:         typ,
		Permissions:  typ.Level(),
	})
	if err != nil {
		panic(err)
	}
	return created
}

// ---------------------------------------------------------------------------
// Reversible hasher, good enough for tests.
// ---------------------------------------------------------------------------

type stubHasher struct{}

var errHashMismatch = errors.New("hash mismatch")

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errHashMismatch
	}
	return nil
}

func (h stubHasher) mustHash(password string) string {
	hash, _ := h.Hash(password)
	return hash
}

// ---------------------------------------------------------------------------
// In-memory session store and purger.
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	mu        sync.Mutex
	sessions  map[string]string
	ttls      map[string]time.Duration
	getErr    error
	deleteErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (s *stubSessionStore) Put(_ context.Context, token, accountID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = accountID
	s.ttls[token] = ttl
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", s.getErr
	}
	id, ok := s.sessions[token]
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return id, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, token)
	delete(s.ttls, token)
	return nil
}

func (s *stubSessionStore) DeleteAccount(_ context.Context, accountID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for token, id := range s.sessions {
		if id == accountID {
			delete(s.sessions, token)
			delete(s.ttls, token)
			n++
		}
	}
	return n, nil
}

type stubPurger struct {
	mu       sync.Mutex
	enqueued []string
}

func (p *stubPurger) Enqueue(accountID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enqueued = append(p.enqueued, accountID)
}
