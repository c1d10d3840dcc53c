package repo

import (
	"strings"
	"time"

	"github.com/campuslab/printbooth/internal/model"
	"github.com/campuslab/printbooth/internal/pkg/password"
	"github.com/campuslab/printbooth/internal/pkg/validate"
)

// PrepareNewPendingAccount normalizes, validates, and hashes a pending
// account ahead of its first insert. Validation must pass before the
// credential is hashed; a hashing failure leaves the record unprepared so
// nothing partial can be committed. The raw credential is cleared once the
// hash is in place.
func PrepareNewPendingAccount(p *model.PendingAccount) error {
	p.Name = strings.TrimSpace(p.Name)
	p.StudentID = strings.TrimSpace(p.StudentID)
	p.RFIDCardNumber = strings.TrimSpace(p.RFIDCardNumber)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.VerificationCode = strings.TrimSpace(p.VerificationCode)
	if p.Points == 0 {
		p.Points = 10
	}
	if errs := validate.PendingAccount(p); len(errs) > 0 {
		return errs
	}
	hash, err := password.Hash(p.Password)
	if err != nil {
		return err
	}
	p.PasswordHash = hash
	p.Password = ""
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return nil
}

// PrepareNewBoothManager does the same for a booth manager record and
// applies creation defaults: capacity 500, role tag, active account.
func PrepareNewBoothManager(m *model.BoothManager) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.BoothName = strings.TrimSpace(m.BoothName)
	m.BoothLocation = strings.TrimSpace(m.BoothLocation)
	m.BoothCode = strings.TrimSpace(m.BoothCode)
	if m.PaperCapacity == 0 {
		m.PaperCapacity = 500
	}
	m.Role = model.RoleBoothManager
	m.IsActive = true
	if errs := validate.BoothManager(m); len(errs) > 0 {
		return errs
	}
	hash, err := password.Hash(m.Password)
	if err != nil {
		return err
	}
	m.PasswordHash = hash
	m.Password = ""
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return nil
}
