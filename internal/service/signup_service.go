package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/campuslab/printbooth/internal/model"
	appErr "github.com/campuslab/printbooth/internal/pkg/errors"
	"github.com/campuslab/printbooth/internal/repo"
)

const (
	verificationCodeTTL      = 10 * time.Minute
	verificationResendWindow = time.Minute
)

type SignupService struct {
	pending repo.PendingAccountRepository
	sender  EmailSender
}

func NewSignupService(pending repo.PendingAccountRepository, sender EmailSender) *SignupService {
	return &SignupService{pending: pending, sender: sender}
}

// SignupParams carries the signup request. VerificationCode tolerates
// whatever JSON type the client sent; it is normalized to a trimmed
// string before it is stored or compared.
type SignupParams struct {
	Name             string
	StudentID        string
	RFIDCardNumber   string
	Email            string
	Phone            string
	Password         string
	VerificationCode interface{}
}

func (s *SignupService) Signup(ctx context.Context, params SignupParams) (*model.PendingAccount, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	studentID := strings.TrimSpace(params.StudentID)
	if _, err := s.pending.GetByEmail(ctx, email); err == nil {
		return nil, appErr.ErrConflict
	} else if !appErr.IsNotFound(err) {
		return nil, err
	}
	if _, err := s.pending.GetByStudentID(ctx, studentID); err == nil {
		return nil, appErr.ErrConflict
	} else if !appErr.IsNotFound(err) {
		return nil, err
	}

	code := NormalizeCode(params.VerificationCode)
	if code == "" {
		generated, err := generateCode()
		if err != nil {
			return nil, err
		}
		code = generated
	}
	acct := &model.PendingAccount{
		Name:                      params.Name,
		StudentID:                 studentID,
		RFIDCardNumber:            params.RFIDCardNumber,
		Email:                     email,
		Phone:                     params.Phone,
		Password:                  params.Password,
		VerificationCode:          code,
		VerificationCodeExpiresAt: time.Now().Add(verificationCodeTTL),
	}
	acct, err := s.pending.Create(ctx, acct)
	if err != nil {
		return nil, err
	}
	if err := s.sendCode(acct.Email, code); err != nil {
		// Without the code the record is unreachable dead weight and a
		// retry would hit the duplicate check, so undo the insert.
		if delErr := s.pending.Delete(ctx, acct.ID.Hex()); delErr != nil {
			logutil.GetLogger(ctx).Warn("orphaned pending account not removed",
				zap.String("email", acct.Email),
				zap.Error(delErr),
			)
		}
		return nil, err
	}
	return acct, nil
}

// ResendCode issues a fresh verification code, at most once per minute
// per account.
func (s *SignupService) ResendCode(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return appErr.ErrInvalid
	}
	acct, err := s.pending.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	issuedAt := acct.VerificationCodeExpiresAt.Add(-verificationCodeTTL)
	if time.Since(issuedAt) < verificationResendWindow {
		return appErr.ErrTooMany
	}
	code, err := generateCode()
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(verificationCodeTTL)
	if err := s.pending.UpdateVerificationCode(ctx, acct.ID.Hex(), code, expiresAt); err != nil {
		return err
	}
	return s.sendCode(email, code)
}

func (s *SignupService) sendCode(email, code string) error {
	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code, int(verificationCodeTTL/time.Minute))
	return s.sender.Send(email, "Your verification code", body)
}

// NormalizeCode coerces a caller-supplied verification code to a trimmed
// string so numeric and string payloads compare equal.
func NormalizeCode(v interface{}) string {
	switch code := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(code)
	case json.Number:
		return strings.TrimSpace(code.String())
	case float64:
		return strconv.FormatFloat(code, 'f', -1, 64)
	case int:
		return strconv.Itoa(code)
	case int64:
		return strconv.FormatInt(code, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(code))
	}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
