package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campuslab/printbooth/internal/model"
	"github.com/campuslab/printbooth/internal/pkg/password"
	"github.com/campuslab/printbooth/internal/pkg/validate"
)

func newPendingAccount() *model.PendingAccount {
	return &model.PendingAccount{
		Name:                      "A",
		StudentID:                 "1234567",
		RFIDCardNumber:            "0123456789",
		Email:                     "A@B.Co ",
		Phone:                     "01234567890",
		Password:                  "secret",
		VerificationCode:          " 123456 ",
		VerificationCodeExpiresAt: time.Now().Add(10 * time.Minute),
	}
}

func TestPrepareNewPendingAccount(t *testing.T) {
	acct := newPendingAccount()
	require.NoError(t, PrepareNewPendingAccount(acct))

	require.Equal(t, "a@b.co", acct.Email)
	require.Equal(t, "123456", acct.VerificationCode)
	require.Equal(t, 10, acct.Points)
	require.False(t, acct.CreatedAt.IsZero())

	require.Empty(t, acct.Password)
	require.NotEmpty(t, acct.PasswordHash)
	require.NotEqual(t, "secret", acct.PasswordHash)
	require.NoError(t, password.Compare(acct.PasswordHash, "secret"))
}

func TestPrepareNewPendingAccountValidationBeforeHash(t *testing.T) {
	acct := newPendingAccount()
	acct.StudentID = "123"
	err := PrepareNewPendingAccount(acct)

	var verrs validate.Errors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, "studentId", verrs[0].Field)
	require.Empty(t, acct.PasswordHash)
}

func TestPrepareNewBoothManagerDefaults(t *testing.T) {
	m := &model.BoothManager{
		Name:          "Manager",
		Email:         "Manager@Example.Com",
		Password:      "secret123",
		BoothName:     "Central Booth",
		BoothLocation: "Library",
		BoothCode:     "BOOTH-001",
	}
	require.NoError(t, PrepareNewBoothManager(m))

	require.Equal(t, "manager@example.com", m.Email)
	require.Equal(t, 500, m.PaperCapacity)
	require.Equal(t, 0, m.PaperAvailable)
	require.Equal(t, model.RoleBoothManager, m.Role)
	require.True(t, m.IsActive)
	require.False(t, m.CreatedAt.IsZero())

	require.Empty(t, m.Password)
	require.NoError(t, password.Compare(m.PasswordHash, "secret123"))
}

func TestPrepareNewBoothManagerRejectsShortPassword(t *testing.T) {
	m := &model.BoothManager{
		Name:          "Manager",
		Email:         "manager@example.com",
		Password:      "12345",
		BoothName:     "Central Booth",
		BoothLocation: "Library",
		BoothCode:     "BOOTH-001",
	}
	err := PrepareNewBoothManager(m)

	var verrs validate.Errors
	require.ErrorAs(t, err, &verrs)
	require.Empty(t, m.PasswordHash)
}
