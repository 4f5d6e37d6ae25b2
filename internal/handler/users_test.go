package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/marketplace-service/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Register(t *testing.T) {
	const body = `{
		"email":"tendai@example.com",
		"password":"secret-pass",
		"first_name":"Tendai",
		"last_name":"Moyo",
		"phone_number":"0771234567",
		"user_type":"seller",
		"location":{"city":"Bulawayo","province":"Bulawayo"}
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockUserService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: body,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in entities.RegisterInput) bool {
					return in.UserType == entities.UserTypeSeller && in.PhoneNumber == "0771234567"
				})).Return(entities.AuthResult{
					User:  entities.User{ID: "u-1", Email: "tendai@example.com", PasswordHash: "hash"},
					Token: "jwt",
				}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"token":"jwt"`,
		},
		{
			name:         "invalid phone",
			body:         `{"email":"a@b.co","password":"secret-pass","first_name":"Ta","last_name":"Mo","phone_number":"+263771234567","user_type":"buyer","location":{"city":"Harare","province":"Harare"}}`,
			mockBehavior: func(*mocks.MockUserService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"PhoneNumber":"phone"`,
		},
		{
			name:         "admin self registration",
			body:         `{"email":"a@b.co","password":"secret-pass","first_name":"Ta","last_name":"Mo","phone_number":"0771234567","user_type":"admin","location":{"city":"Harare","province":"Harare"}}`,
			mockBehavior: func(*mocks.MockUserService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"UserType":"oneof"`,
		},
		{
			name: "email taken",
			body: body,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().Register(mock.Anything, mock.Anything).Return(entities.AuthResult{}, entities.ErrUserExists).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `user already exists`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockUserService(t)
			tc.mockBehavior(svc)
			h := handler.NewUserHandler(discardLogger(), asUser("", ""), svc)

			status, body := serve(t, h, http.MethodPost, "/auth/register", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
			assert.NotContains(t, body, "hash")
		})
	}
}

func TestUserHandler_Login(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "wrong password", err: entities.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "suspended", err: entities.ErrUserSuspended, wantStatus: http.StatusUnauthorized},
		{name: "internal error", err: errors.New("db error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockUserService(t)
			svc.EXPECT().Login(mock.Anything, "tendai@example.com", "secret-pass").
				Return(entities.AuthResult{User: entities.User{ID: "u-1"}, Token: "jwt"}, tc.err).Once()
			h := handler.NewUserHandler(discardLogger(), asUser("", ""), svc)

			status, _ := serve(t, h, http.MethodPost, "/auth/login", `{"email":"tendai@example.com","password":"secret-pass"}`)

			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestUserHandler_PhoneVerification(t *testing.T) {
	t.Run("send code", func(t *testing.T) {
		svc := mocks.NewMockUserService(t)
		svc.EXPECT().SendPhoneVerification(mock.Anything, buyerID).Return(nil).Once()
		h := handler.NewUserHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, _ := serve(t, h, http.MethodPost, "/users/me/phone/verification", "")

		assert.Equal(t, http.StatusNoContent, status)
	})

	t.Run("already verified", func(t *testing.T) {
		svc := mocks.NewMockUserService(t)
		svc.EXPECT().SendPhoneVerification(mock.Anything, buyerID).Return(entities.ErrPhoneAlreadyVerified).Once()
		h := handler.NewUserHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, _ := serve(t, h, http.MethodPost, "/users/me/phone/verification", "")

		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("verify", func(t *testing.T) {
		svc := mocks.NewMockUserService(t)
		svc.EXPECT().VerifyPhone(mock.Anything, buyerID, "123456").Return(nil).Once()
		h := handler.NewUserHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, _ := serve(t, h, http.MethodPost, "/users/me/phone/verify", `{"code":"123456"}`)

		assert.Equal(t, http.StatusNoContent, status)
	})

	t.Run("code must be six digits", func(t *testing.T) {
		svc := mocks.NewMockUserService(t)
		h := handler.NewUserHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, _ := serve(t, h, http.MethodPost, "/users/me/phone/verify", `{"code":"12ab"}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestUserHandler_Profile(t *testing.T) {
	svc := mocks.NewMockUserService(t)
	svc.EXPECT().GetProfile(mock.Anything, buyerID).
		Return(entities.User{ID: buyerID, Email: "b@example.com", PasswordHash: "hash", Rating: entities.Rating{Average: 4.5, Count: 2}}, nil).Once()
	h := handler.NewUserHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

	status, body := serve(t, h, http.MethodGet, "/users/me", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"rating":{"average":4.5,"count":2}`)
	assert.NotContains(t, body, "hash")
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockUserService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "partial update",
			body: `{"first_name":"Rudo","location":{"city":"Mutare","province":"Manicaland"}}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().UpdateProfile(mock.Anything, buyerID, mock.MatchedBy(func(upd entities.ProfileUpdate) bool {
					return upd.FirstName != nil && *upd.FirstName == "Rudo" &&
						upd.LastName == nil && upd.PhoneNumber == nil &&
						upd.Location != nil && upd.Location.City == "Mutare"
				})).Return(entities.User{ID: buyerID, FirstName: "Rudo"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"first_name":"Rudo"`,
		},
		{
			name:         "invalid phone",
			body:         `{"phone_number":"+263771234567"}`,
			mockBehavior: func(*mocks.MockUserService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"PhoneNumber":"phone"`,
		},
		{
			name:         "location without city",
			body:         `{"location":{"province":"Manicaland"}}`,
			mockBehavior: func(*mocks.MockUserService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"City":"required"`,
		},
		{
			name: "phone taken",
			body: `{"phone_number":"0779999999"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().UpdateProfile(mock.Anything, buyerID, mock.Anything).
					Return(entities.User{}, entities.ErrUserExists).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockUserService(t)
			tc.mockBehavior(svc)
			h := handler.NewUserHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

			status, body := serve(t, h, http.MethodPatch, "/users/me", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestUserHandler_SuspendUser(t *testing.T) {
	testCases := []struct {
		name         string
		role         string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockUserService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "admin suspends seller",
			role:   "admin",
			target: "/admin/users/" + sellerID + "/suspend",
			body:   `{"reason":"fraudulent listings"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().SuspendUser(mock.Anything, sellerID, adminID, "fraudulent listings").
					Return(entities.User{ID: sellerID, IsSuspended: true, SuspensionReason: "fraudulent listings"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"suspension_reason":"fraudulent listings"`,
		},
		{
			name:         "reason is required",
			role:         "admin",
			target:       "/admin/users/" + sellerID + "/suspend",
			body:         `{}`,
			mockBehavior: func(*mocks.MockUserService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Reason":"required"`,
		},
		{
			name:   "admin cannot be suspended",
			role:   "admin",
			target: "/admin/users/" + adminID + "/suspend",
			body:   `{"reason":"testing"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().SuspendUser(mock.Anything, adminID, adminID, "testing").
					Return(entities.User{}, entities.ErrSuspendAdmin).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:         "seller is not admin",
			role:         "seller",
			target:       "/admin/users/" + buyerID + "/suspend",
			body:         `{"reason":"spam"}`,
			mockBehavior: func(*mocks.MockUserService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "malformed id",
			role:         "admin",
			target:       "/admin/users/nope/suspend",
			body:         `{"reason":"spam"}`,
			mockBehavior: func(*mocks.MockUserService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"id":"uuid"`,
		},
		{
			name:   "unsuspend",
			role:   "admin",
			target: "/admin/users/" + sellerID + "/unsuspend",
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().UnsuspendUser(mock.Anything, sellerID, adminID).
					Return(entities.User{ID: sellerID}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"is_suspended":false`,
		},
		{
			name:   "unsuspend missing user",
			role:   "admin",
			target: "/admin/users/" + sellerID + "/unsuspend",
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().UnsuspendUser(mock.Anything, sellerID, adminID).
					Return(entities.User{}, entities.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockUserService(t)
			tc.mockBehavior(svc)
			userID := adminID
			if tc.role != "admin" {
				userID = sellerID
			}
			h := handler.NewUserHandler(discardLogger(), asUser(userID, tc.role), svc)

			status, body := serve(t, h, http.MethodPost, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("passes filter and page", func(t *testing.T) {
		suspended := true
		svc := mocks.NewMockUserService(t)
		svc.EXPECT().
			ListUsers(mock.Anything,
				entities.UserFilter{UserType: entities.UserTypeSeller, Suspended: &suspended},
				entities.PageRequest{Page: 1, Limit: 20}).
			Return(entities.NewPage([]entities.User{{ID: sellerID, IsSuspended: true}}, 1, entities.PageRequest{Page: 1, Limit: 20}), nil).Once()
		h := handler.NewUserHandler(discardLogger(), asUser(adminID, "admin"), svc)

		status, body := serve(t, h, http.MethodGet, "/admin/users?user_type=seller&suspended=true&limit=20", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"total":1`)
		assert.Contains(t, body, `"is_suspended":true`)
	})

	testCases := []struct {
		name   string
		target string
	}{
		{name: "unknown user type", target: "/admin/users?user_type=moderator"},
		{name: "suspended is not boolean", target: "/admin/users?suspended=maybe"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockUserService(t)
			h := handler.NewUserHandler(discardLogger(), asUser(adminID, "admin"), svc)

			status, _ := serve(t, h, http.MethodGet, tc.target, "")

			assert.Equal(t, http.StatusBadRequest, status)
		})
	}
}
