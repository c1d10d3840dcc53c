package testutil

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/campuslab/printbooth/internal/model"
	appErr "github.com/campuslab/printbooth/internal/pkg/errors"
	"github.com/campuslab/printbooth/internal/repo"
)

// FakePendingAccountRepository is an in-memory stand-in that runs the
// same prepare pass as the mongo implementation, so validation, hashing,
// and TTL visibility behave identically in tests.
type FakePendingAccountRepository struct {
	mu    sync.Mutex
	Items map[string]*model.PendingAccount // keyed by email
}

func NewFakePendingAccountRepository() *FakePendingAccountRepository {
	return &FakePendingAccountRepository{Items: make(map[string]*model.PendingAccount)}
}

func (r *FakePendingAccountRepository) Create(ctx context.Context, acct *model.PendingAccount) (*model.PendingAccount, error) {
	if err := repo.PrepareNewPendingAccount(acct); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Items[acct.Email]; ok {
		return nil, appErr.ErrConflict
	}
	for _, existing := range r.Items {
		if existing.StudentID == acct.StudentID {
			return nil, appErr.ErrConflict
		}
	}
	acct.ID = bson.NewObjectID()
	stored := *acct
	r.Items[acct.Email] = &stored
	return acct, nil
}

func (r *FakePendingAccountRepository) GetByEmail(ctx context.Context, email string) (*model.PendingAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acct, ok := r.Items[email]
	if !ok || expired(acct) {
		return nil, appErr.ErrNotFound
	}
	found := *acct
	return &found, nil
}

func (r *FakePendingAccountRepository) GetByStudentID(ctx context.Context, studentID string) (*model.PendingAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acct := range r.Items {
		if acct.StudentID == studentID && !expired(acct) {
			found := *acct
			return &found, nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (r *FakePendingAccountRepository) UpdateVerificationCode(ctx context.Context, id string, code string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acct := range r.Items {
		if acct.ID.Hex() == id {
			acct.VerificationCode = code
			acct.VerificationCodeExpiresAt = expiresAt
			return nil
		}
	}
	return appErr.ErrNotFound
}

func (r *FakePendingAccountRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, acct := range r.Items {
		if acct.ID.Hex() == id {
			delete(r.Items, email)
			return nil
		}
	}
	return appErr.ErrNotFound
}

func (r *FakePendingAccountRepository) DeleteExpired(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for email, acct := range r.Items {
		if expired(acct) {
			delete(r.Items, email)
			deleted++
		}
	}
	return deleted, nil
}

func expired(acct *model.PendingAccount) bool {
	return time.Since(acct.CreatedAt) > repo.PendingAccountTTL
}

// FakeBoothManagerRepository mirrors the mongo repository, including the
// password-hash projection on non-login reads.
type FakeBoothManagerRepository struct {
	mu    sync.Mutex
	Items map[string]*model.BoothManager // keyed by id hex
}

func NewFakeBoothManagerRepository() *FakeBoothManagerRepository {
	return &FakeBoothManagerRepository{Items: make(map[string]*model.BoothManager)}
}

func (r *FakeBoothManagerRepository) Create(ctx context.Context, m *model.BoothManager) (*model.BoothManager, error) {
	if err := repo.PrepareNewBoothManager(m); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.Items {
		if existing.Email == m.Email || existing.BoothCode == m.BoothCode {
			return nil, appErr.ErrConflict
		}
	}
	m.ID = bson.NewObjectID()
	stored := *m
	r.Items[m.ID.Hex()] = &stored
	return m, nil
}

func (r *FakeBoothManagerRepository) GetByID(ctx context.Context, id string) (*model.BoothManager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.Items[id]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	found := *m
	found.PasswordHash = ""
	return &found, nil
}

func (r *FakeBoothManagerRepository) GetByEmail(ctx context.Context, email string) (*model.BoothManager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.Items {
		if m.Email == email {
			found := *m
			return &found, nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (r *FakeBoothManagerRepository) UpdatePaper(ctx context.Context, id string, paperAvailable int) (*model.BoothManager, error) {
	return r.update(id, func(m *model.BoothManager) {
		m.PaperAvailable = paperAvailable
	})
}

func (r *FakeBoothManagerRepository) SetActive(ctx context.Context, id string, active bool) (*model.BoothManager, error) {
	return r.update(id, func(m *model.BoothManager) {
		m.IsActive = active
	})
}

func (r *FakeBoothManagerRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	_, err := r.update(id, func(m *model.BoothManager) {
		m.PasswordHash = passwordHash
	})
	return err
}

func (r *FakeBoothManagerRepository) update(id string, apply func(*model.BoothManager)) (*model.BoothManager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.Items[id]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	apply(m)
	m.UpdatedAt = time.Now()
	found := *m
	found.PasswordHash = ""
	return &found, nil
}

// SentMail records one message handed to the RecordingSender.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

type RecordingSender struct {
	mu   sync.Mutex
	Mail []SentMail
}

func NewRecordingSender() *RecordingSender {
	return &RecordingSender{}
}

func (s *RecordingSender) Send(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Mail = append(s.Mail, SentMail{To: to, Subject: subject, Body: body})
	return nil
}
