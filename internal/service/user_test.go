package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/service"
	mocks "github.com/SergeyBogomolovv/marketplace-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userDeps struct {
	users         *mocks.MockUserRepo
	verifications *mocks.MockVerificationStore
	sms           *mocks.MockSMSSender
	tokens        *mocks.MockTokenIssuer
}

func newUserDeps(t *testing.T) userDeps {
	return userDeps{
		users:         mocks.NewMockUserRepo(t),
		verifications: mocks.NewMockVerificationStore(t),
		sms:           mocks.NewMockSMSSender(t),
		tokens:        mocks.NewMockTokenIssuer(t),
	}
}

func (d userDeps) newService() *service.UserService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewUserService(logger, d.users, d.verifications, d.sms, d.tokens)
}

var codePattern = regexp.MustCompile(`^[1-9]\d{5}$`)

func TestUserService_Register(t *testing.T) {
	type MockBehavior func(d userDeps)

	input := entities.RegisterInput{
		Email:       " Jane@Example.com ",
		Password:    "secret123",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+263771234567",
		UserType:    entities.UserTypeBuyer,
	}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(entities.User{}, entities.ErrUserNotFound)
				d.users.EXPECT().GetUserByPhone(mock.Anything, input.PhoneNumber).Return(entities.User{}, entities.ErrUserNotFound)
				d.users.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
					return u.Email == "jane@example.com" &&
						!u.PhoneVerified &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)) == nil
				})).RunAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
					return u, nil
				})
				d.verifications.EXPECT().SaveVerificationCode(mock.Anything, mock.Anything, mock.MatchedBy(codePattern.MatchString), mock.Anything).Return(nil)
				d.sms.EXPECT().SendSMS(mock.Anything, mock.MatchedBy(func(s entities.SMS) bool {
					return s.To == input.PhoneNumber
				})).Return(nil)
				d.tokens.EXPECT().Issue(mock.Anything, "buyer").Return("jwt", nil)
			},
		},
		{
			name: "email taken",
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(entities.User{ID: "u-1"}, nil)
			},
			wantErr: entities.ErrUserExists,
		},
		{
			name: "phone taken",
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(entities.User{}, entities.ErrUserNotFound)
				d.users.EXPECT().GetUserByPhone(mock.Anything, input.PhoneNumber).Return(entities.User{ID: "u-1"}, nil)
			},
			wantErr: entities.ErrUserExists,
		},
		{
			name: "sms failure does not fail registration",
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByEmail(mock.Anything, mock.Anything).Return(entities.User{}, entities.ErrUserNotFound)
				d.users.EXPECT().GetUserByPhone(mock.Anything, mock.Anything).Return(entities.User{}, entities.ErrUserNotFound)
				d.users.EXPECT().CreateUser(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
						return u, nil
					})
				d.verifications.EXPECT().SaveVerificationCode(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
				d.sms.EXPECT().SendSMS(mock.Anything, mock.Anything).Return(errors.New("broker down"))
				d.tokens.EXPECT().Issue(mock.Anything, "buyer").Return("jwt", nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newUserDeps(t)
			tc.mockBehavior(d)

			res, err := d.newService().Register(context.Background(), input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jwt", res.Token)
			assert.NotEmpty(t, res.User.ID)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	type MockBehavior func(d userDeps)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := entities.User{ID: "u-1", Email: "jane@example.com", PasswordHash: string(hash), UserType: entities.UserTypeSeller, IsActive: true}

	testCases := []struct {
		name         string
		password     string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:     "OK",
			password: "secret123",
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(user, nil)
				d.users.EXPECT().UpdateLastLogin(mock.Anything, "u-1", mock.Anything).Return(nil)
				d.tokens.EXPECT().Issue("u-1", "seller").Return("jwt", nil)
			},
		},
		{
			name:     "unknown email",
			password: "secret123",
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "wrong",
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(user, nil)
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name:     "suspended",
			password: "secret123",
			mockBehavior: func(d userDeps) {
				suspended := user
				suspended.IsSuspended = true
				d.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(suspended, nil)
			},
			wantErr: entities.ErrUserSuspended,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newUserDeps(t)
			tc.mockBehavior(d)

			res, err := d.newService().Login(context.Background(), "jane@example.com", tc.password)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jwt", res.Token)
			assert.NotNil(t, res.User.LastLogin)
		})
	}
}

func TestUserService_SendPhoneVerification(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		d := newUserDeps(t)
		d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(entities.User{ID: "u-1", PhoneNumber: "+263771234567"}, nil)
		d.verifications.EXPECT().SaveVerificationCode(mock.Anything, "u-1", mock.MatchedBy(codePattern.MatchString), mock.Anything).Return(nil)
		d.sms.EXPECT().SendSMS(mock.Anything, mock.Anything).Return(nil)

		assert.NoError(t, d.newService().SendPhoneVerification(context.Background(), "u-1"))
	})

	t.Run("already verified", func(t *testing.T) {
		d := newUserDeps(t)
		d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(entities.User{ID: "u-1", PhoneVerified: true}, nil)

		err := d.newService().SendPhoneVerification(context.Background(), "u-1")

		assert.ErrorIs(t, err, entities.ErrPhoneAlreadyVerified)
	})

	t.Run("sms failure", func(t *testing.T) {
		d := newUserDeps(t)
		smsErr := errors.New("broker down")
		d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(entities.User{ID: "u-1"}, nil)
		d.verifications.EXPECT().SaveVerificationCode(mock.Anything, "u-1", mock.Anything, mock.Anything).Return(nil)
		d.sms.EXPECT().SendSMS(mock.Anything, mock.Anything).Return(smsErr)

		err := d.newService().SendPhoneVerification(context.Background(), "u-1")

		assert.ErrorIs(t, err, smsErr)
	})
}

func TestUserService_VerifyPhone(t *testing.T) {
	testCases := []struct {
		name    string
		stored  string
		code    string
		wantErr error
	}{
		{name: "OK", stored: "123456", code: "123456"},
		{name: "wrong code", stored: "123456", code: "654321", wantErr: entities.ErrInvalidVerificationCode},
		{name: "expired", stored: "", code: "123456", wantErr: entities.ErrInvalidVerificationCode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newUserDeps(t)
			d.verifications.EXPECT().VerificationCode(mock.Anything, "u-1").Return(tc.stored, nil)
			if tc.wantErr == nil {
				d.users.EXPECT().SetPhoneVerified(mock.Anything, "u-1", mock.Anything).Return(nil)
				d.verifications.EXPECT().DeleteVerificationCode(mock.Anything, "u-1").Return(nil)
			}

			err := d.newService().VerifyPhone(context.Background(), "u-1", tc.code)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserService_GetProfile(t *testing.T) {
	d := newUserDeps(t)
	d.users.EXPECT().GetUserByID(mock.Anything, "missing").Return(entities.User{}, entities.ErrUserNotFound)

	_, err := d.newService().GetProfile(context.Background(), "missing")

	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	type MockBehavior func(d userDeps)

	current := entities.User{
		ID:            "u-1",
		FirstName:     "Jane",
		PhoneNumber:   "0771234567",
		PhoneVerified: true,
		Location:      entities.Location{City: "Harare", Province: "Harare"},
	}
	newPhone := "0779999999"
	name := "Janet"

	testCases := []struct {
		name          string
		upd           entities.ProfileUpdate
		mockBehavior  MockBehavior
		wantErr       error
		wantVerified  bool
		wantPhone     string
		wantFirstName string
	}{
		{
			name: "name only keeps verification",
			upd:  entities.ProfileUpdate{FirstName: &name},
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(current, nil)
				d.users.EXPECT().UpdateProfile(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
						return u, nil
					})
			},
			wantVerified:  true,
			wantPhone:     "0771234567",
			wantFirstName: "Janet",
		},
		{
			name: "same phone is not rechecked",
			upd:  entities.ProfileUpdate{PhoneNumber: &current.PhoneNumber},
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(current, nil)
				d.users.EXPECT().UpdateProfile(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
						return u, nil
					})
			},
			wantVerified:  true,
			wantPhone:     "0771234567",
			wantFirstName: "Jane",
		},
		{
			name: "new phone resets verification",
			upd:  entities.ProfileUpdate{PhoneNumber: &newPhone},
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(current, nil)
				d.users.EXPECT().GetUserByPhone(mock.Anything, newPhone).Return(entities.User{}, entities.ErrUserNotFound)
				d.users.EXPECT().UpdateProfile(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
						return u, nil
					})
			},
			wantPhone:     newPhone,
			wantFirstName: "Jane",
		},
		{
			name: "phone taken",
			upd:  entities.ProfileUpdate{PhoneNumber: &newPhone},
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(current, nil)
				d.users.EXPECT().GetUserByPhone(mock.Anything, newPhone).Return(entities.User{ID: "u-2"}, nil)
			},
			wantErr: entities.ErrUserExists,
		},
		{
			name: "missing user",
			upd:  entities.ProfileUpdate{FirstName: &name},
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newUserDeps(t)
			tc.mockBehavior(d)

			user, err := d.newService().UpdateProfile(context.Background(), "u-1", tc.upd)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantVerified, user.PhoneVerified)
			assert.Equal(t, tc.wantPhone, user.PhoneNumber)
			assert.Equal(t, tc.wantFirstName, user.FirstName)
			assert.Equal(t, current.Location, user.Location)
			assert.False(t, user.UpdatedAt.IsZero())
		})
	}
}

func TestUserService_SuspendUser(t *testing.T) {
	type MockBehavior func(d userDeps)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(entities.User{ID: "u-1", UserType: entities.UserTypeSeller}, nil)
				d.users.EXPECT().SetSuspended(mock.Anything, "u-1", true, "fraudulent listings", mock.Anything).
					Return(entities.User{ID: "u-1", IsSuspended: true, SuspensionReason: "fraudulent listings"}, nil)
			},
		},
		{
			name: "admin cannot be suspended",
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(entities.User{ID: "u-1", UserType: entities.UserTypeAdmin}, nil)
			},
			wantErr: entities.ErrSuspendAdmin,
		},
		{
			name: "missing user",
			mockBehavior: func(d userDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "u-1").Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newUserDeps(t)
			tc.mockBehavior(d)

			user, err := d.newService().SuspendUser(context.Background(), "u-1", "admin-1", "fraudulent listings")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, user.IsSuspended)
			assert.Equal(t, "fraudulent listings", user.SuspensionReason)
		})
	}
}

func TestUserService_UnsuspendUser(t *testing.T) {
	d := newUserDeps(t)
	d.users.EXPECT().SetSuspended(mock.Anything, "u-1", false, "", mock.Anything).
		Return(entities.User{ID: "u-1"}, nil)

	user, err := d.newService().UnsuspendUser(context.Background(), "u-1", "admin-1")

	require.NoError(t, err)
	assert.False(t, user.IsSuspended)
}

func TestUserService_ListUsers(t *testing.T) {
	suspended := true
	filter := entities.UserFilter{UserType: entities.UserTypeSeller, Suspended: &suspended}

	d := newUserDeps(t)
	d.users.EXPECT().ListUsers(mock.Anything, filter, entities.PageRequest{Page: 1, Limit: entities.DefaultPageLimit}).
		Return([]entities.User{{ID: "u-1"}}, nil)
	d.users.EXPECT().CountUsers(mock.Anything, filter).Return(1, nil)

	page, err := d.newService().ListUsers(context.Background(), filter, entities.PageRequest{})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Items, 1)
}
