package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user entities.User) (entities.User, error)
	GetUserByID(ctx context.Context, id string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetUserByPhone(ctx context.Context, phone string) (entities.User, error)
	SetPhoneVerified(ctx context.Context, id string, at time.Time) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdateProfile(ctx context.Context, user entities.User) (entities.User, error)
	SetSuspended(ctx context.Context, id string, suspended bool, reason string, at time.Time) (entities.User, error)
	ListUsers(ctx context.Context, filter entities.UserFilter, page entities.PageRequest) ([]entities.User, error)
	CountUsers(ctx context.Context, filter entities.UserFilter) (int, error)
}

type VerificationStore interface {
	SaveVerificationCode(ctx context.Context, userID, code string, ttl time.Duration) error
	VerificationCode(ctx context.Context, userID string) (string, error)
	DeleteVerificationCode(ctx context.Context, userID string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, sms entities.SMS) error
}

type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

const verificationCodeTTL = 15 * time.Minute

type UserService struct {
	logger        *slog.Logger
	users         UserRepo
	verifications VerificationStore
	sms           SMSSender
	tokens        TokenIssuer
	now           func() time.Time
}

func NewUserService(logger *slog.Logger, users UserRepo, verifications VerificationStore, sms SMSSender, tokens TokenIssuer) *UserService {
	return &UserService{
		logger:        logger.With(slog.String("service", "user")),
		users:         users,
		verifications: verifications,
		sms:           sms,
		tokens:        tokens,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *UserService) Register(ctx context.Context, in entities.RegisterInput) (entities.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := s.ensureFree(ctx, s.users.GetUserByEmail, email); err != nil {
		return entities.AuthResult{}, err
	}
	if err := s.ensureFree(ctx, s.users.GetUserByPhone, in.PhoneNumber); err != nil {
		return entities.AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user, err := s.users.CreateUser(ctx, entities.User{
		ID:            uuid.NewString(),
		Email:         email,
		PasswordHash:  string(hash),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		PhoneNumber:   in.PhoneNumber,
		UserType:      in.UserType,
		Location:      in.Location,
		EcocashNumber: in.EcocashNumber,
		NationalID:    in.NationalID,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return entities.AuthResult{}, err
	}

	// пользователь может запросить код повторно
	if err := s.sendVerificationCode(ctx, user); err != nil {
		s.logger.WarnContext(ctx, "failed to send verification code after registration",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("user_type", string(user.UserType)),
	)
	return s.authResult(user)
}

func (s *UserService) ensureFree(ctx context.Context, lookup func(context.Context, string) (entities.User, error), value string) error {
	_, err := lookup(ctx, value)
	switch {
	case err == nil:
		return entities.ErrUserExists
	case errors.Is(err, entities.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

func (s *UserService) Login(ctx context.Context, email, password string) (entities.AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.AuthResult{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return entities.AuthResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.AuthResult{}, entities.ErrInvalidCredentials
	}
	if user.IsSuspended || !user.IsActive {
		return entities.AuthResult{}, entities.ErrUserSuspended
	}

	now := s.now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return entities.AuthResult{}, err
	}
	user.LastLogin = &now

	return s.authResult(user)
}

func (s *UserService) authResult(user entities.User) (entities.AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, string(user.UserType))
	if err != nil {
		return entities.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return entities.AuthResult{User: user, Token: token}, nil
}

func (s *UserService) SendPhoneVerification(ctx context.Context, userID string) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.PhoneVerified {
		return entities.ErrPhoneAlreadyVerified
	}
	return s.sendVerificationCode(ctx, user)
}

func (s *UserService) sendVerificationCode(ctx context.Context, user entities.User) error {
	code, err := newVerificationCode()
	if err != nil {
		return err
	}
	if err := s.verifications.SaveVerificationCode(ctx, user.ID, code, verificationCodeTTL); err != nil {
		return err
	}

	sms := entities.SMS{
		To:   user.PhoneNumber,
		Body: fmt.Sprintf("Your marketplace verification code is: %s", code),
	}
	if err := s.sms.SendSMS(ctx, sms); err != nil {
		return fmt.Errorf("failed to send verification sms: %w", err)
	}
	return nil
}

func newVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (s *UserService) VerifyPhone(ctx context.Context, userID, code string) error {
	stored, err := s.verifications.VerificationCode(ctx, userID)
	if err != nil {
		return err
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return entities.ErrInvalidVerificationCode
	}

	if err := s.users.SetPhoneVerified(ctx, userID, s.now()); err != nil {
		return err
	}
	if err := s.verifications.DeleteVerificationCode(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "failed to delete verification code", slog.String("error", err.Error()))
	}

	s.logger.InfoContext(ctx, "phone verified", slog.String("user_id", userID))
	return nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (entities.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

// UpdateProfile после смены номера телефон нужно подтвердить заново.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd entities.ProfileUpdate) (entities.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}

	if upd.PhoneNumber != nil && *upd.PhoneNumber != user.PhoneNumber {
		if err := s.ensureFree(ctx, s.users.GetUserByPhone, *upd.PhoneNumber); err != nil {
			return entities.User{}, err
		}
		user.PhoneNumber = *upd.PhoneNumber
		user.PhoneVerified = false
	}
	applyProfileUpdate(&user, upd)
	user.UpdatedAt = s.now()

	updated, err := s.users.UpdateProfile(ctx, user)
	if err != nil {
		return entities.User{}, err
	}

	s.logger.InfoContext(ctx, "profile updated", slog.String("user_id", userID))
	return updated, nil
}

func applyProfileUpdate(u *entities.User, upd entities.ProfileUpdate) {
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Location != nil {
		u.Location = *upd.Location
	}
	if upd.EcocashNumber != nil {
		u.EcocashNumber = *upd.EcocashNumber
	}
	if upd.NationalID != nil {
		u.NationalID = *upd.NationalID
	}
}

// SuspendUser заблокированный пользователь не может войти, выданные токены не отзываются.
func (s *UserService) SuspendUser(ctx context.Context, userID, adminID, reason string) (entities.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.UserType == entities.UserTypeAdmin {
		return entities.User{}, entities.ErrSuspendAdmin
	}

	suspended, err := s.users.SetSuspended(ctx, userID, true, reason, s.now())
	if err != nil {
		return entities.User{}, err
	}

	s.logger.InfoContext(ctx, "user suspended",
		slog.String("user_id", userID),
		slog.String("admin_id", adminID),
		slog.String("reason", reason),
	)
	return suspended, nil
}

func (s *UserService) UnsuspendUser(ctx context.Context, userID, adminID string) (entities.User, error) {
	user, err := s.users.SetSuspended(ctx, userID, false, "", s.now())
	if err != nil {
		return entities.User{}, err
	}

	s.logger.InfoContext(ctx, "user unsuspended",
		slog.String("user_id", userID),
		slog.String("admin_id", adminID),
	)
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, filter entities.UserFilter, page entities.PageRequest) (entities.Page[entities.User], error) {
	return paginate(ctx, page,
		func(ctx context.Context, page entities.PageRequest) ([]entities.User, error) {
			return s.users.ListUsers(ctx, filter, page)
		},
		func(ctx context.Context) (int, error) {
			return s.users.CountUsers(ctx, filter)
		},
	)
}
