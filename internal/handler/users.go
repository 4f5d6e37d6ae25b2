package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserService interface {
	Register(ctx context.Context, in entities.RegisterInput) (entities.AuthResult, error)
	Login(ctx context.Context, email, password string) (entities.AuthResult, error)
	SendPhoneVerification(ctx context.Context, userID string) error
	VerifyPhone(ctx context.Context, userID, code string) error
	GetProfile(ctx context.Context, userID string) (entities.User, error)
	UpdateProfile(ctx context.Context, userID string, upd entities.ProfileUpdate) (entities.User, error)
	SuspendUser(ctx context.Context, userID, adminID, reason string) (entities.User, error)
	UnsuspendUser(ctx context.Context, userID, adminID string) (entities.User, error)
	ListUsers(ctx context.Context, filter entities.UserFilter, page entities.PageRequest) (entities.Page[entities.User], error)
}

type UserHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     Middleware
	svc      UserService
}

func NewUserHandler(logger *slog.Logger, auth Middleware, svc UserService) *UserHandler {
	return &UserHandler{
		logger:   logger.With(slog.String("handler", "users")),
		validate: newValidator(),
		auth:     auth,
		svc:      svc,
	}
}

func (h *UserHandler) Init(r chi.Router) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)

	r.Route("/users/me", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.Profile)
		r.Patch("/", h.UpdateProfile)
		r.Post("/phone/verification", h.SendPhoneVerification)
		r.Post("/phone/verify", h.VerifyPhone)
	})

	r.Route("/admin/users", func(r chi.Router) {
		r.Use(h.auth, middleware.RequireRole(string(entities.UserTypeAdmin)))
		r.Get("/", h.ListUsers)
		r.Post("/{id}/suspend", h.SuspendUser)
		r.Post("/{id}/unsuspend", h.UnsuspendUser)
	})
}

// Register регистрирует покупателя или продавца и сразу выдает токен.
// @Summary      Регистрация покупателя или продавца
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Данные пользователя"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      422  {object}  utils.ErrorResponse "Email или телефон заняты"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /auth/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	res, err := h.svc.Register(r.Context(), RegisterJSONToEntity(req))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to register user")
		return
	}

	utils.WriteJSON(w, AuthResponse{Token: res.Token, User: UserEntityToJSON(res.User)}, http.StatusCreated)
}

// Login
// @Summary      Вход по email и паролю
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Учетные данные"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Неверные учетные данные или аккаунт заблокирован"
// @Router       /auth/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to login")
		return
	}

	utils.WriteJSON(w, AuthResponse{Token: res.Token, User: UserEntityToJSON(res.User)}, http.StatusOK)
}

// SendPhoneVerification отправляет код подтверждения по SMS.
// @Summary      Отправить код подтверждения
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      422  {object}  utils.ErrorResponse "Телефон уже подтвержден"
// @Router       /users/me/phone/verification [post]
func (h *UserHandler) SendPhoneVerification(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SendPhoneVerification(r.Context(), requester(r).UserID); err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to send verification code")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// VerifyPhone
// @Summary      Подтвердить телефон
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  VerifyPhoneRequest  true  "Код из SMS"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      422  {object}  utils.ErrorResponse "Неверный или просроченный код"
// @Router       /users/me/phone/verify [post]
func (h *UserHandler) VerifyPhone(w http.ResponseWriter, r *http.Request) {
	var req VerifyPhoneRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	if err := h.svc.VerifyPhone(r.Context(), requester(r).UserID, req.Code); err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to verify phone")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Profile
// @Summary      Профиль текущего пользователя
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  User
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Router       /users/me [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetProfile(r.Context(), requester(r).UserID)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get profile")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// UpdateProfile меняет только переданные поля. Новый телефон нужно подтвердить заново.
// @Summary      Обновить профиль
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateProfileRequest  true  "Изменяемые поля"
// @Success      200  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      422  {object}  utils.ErrorResponse "Телефон занят"
// @Router       /users/me [patch]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	user, err := h.svc.UpdateProfile(r.Context(), requester(r).UserID, UpdateProfileJSONToEntity(req))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to update profile")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// ListUsers
// @Summary      Список пользователей
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        user_type  query     string  false  "buyer, seller или admin"
// @Param        suspended  query     bool    false  "Только заблокированные или только активные"
// @Param        page       query     int     false  "Страница"
// @Param        limit      query     int     false  "Размер страницы"
// @Success      200  {object}  Page[User]
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Только для администраторов"
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.userFilter(w, r)
	if !ok {
		return
	}

	page, err := h.svc.ListUsers(r.Context(), filter, pageRequest(r))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list users")
		return
	}

	utils.WriteJSON(w, PageToJSON(page, UserEntityToJSON), http.StatusOK)
}

func (h *UserHandler) userFilter(w http.ResponseWriter, r *http.Request) (entities.UserFilter, bool) {
	query := r.URL.Query()
	userType := query.Get("user_type")
	if err := h.validate.Var(userType, "omitempty,oneof=buyer seller admin"); err != nil {
		utils.WriteValidationError(w, err)
		return entities.UserFilter{}, false
	}

	filter := entities.UserFilter{UserType: entities.UserType(userType)}
	if v := query.Get("suspended"); v != "" {
		suspended, err := strconv.ParseBool(v)
		if err != nil {
			utils.WriteJSON(w, utils.ValidationErrorResponse{
				Message: "invalid request",
				Fields:  map[string]string{"suspended": "boolean"},
			}, http.StatusBadRequest)
			return entities.UserFilter{}, false
		}
		filter.Suspended = &suspended
	}
	return filter, true
}

// SuspendUser блокирует вход пользователя, причина обязательна.
// @Summary      Заблокировать пользователя
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "ID пользователя"
// @Param        request  body      SuspendUserRequest  true  "Причина блокировки"
// @Success      200  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      422  {object}  utils.ErrorResponse "Администратора нельзя заблокировать"
// @Router       /admin/users/{id}/suspend [post]
func (h *UserHandler) SuspendUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}
	var req SuspendUserRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	user, err := h.svc.SuspendUser(r.Context(), id, requester(r).UserID, req.Reason)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to suspend user")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// UnsuspendUser
// @Summary      Разблокировать пользователя
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID пользователя"
// @Success      200  {object}  User
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Router       /admin/users/{id}/unsuspend [post]
func (h *UserHandler) UnsuspendUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}

	user, err := h.svc.UnsuspendUser(r.Context(), id, requester(r).UserID)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to unsuspend user")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}
