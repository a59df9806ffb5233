package http

import (
	"net/http"
	"time"

	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/logger"
)

type AuthHandler struct {
	userUsecase usecase.UserUC
	sessionTTL  time.Duration
	logger      logger.Logger
}

func NewAuthHandler(userUsecase usecase.UserUC, sessionTTL time.Duration, logger logger.Logger) *AuthHandler {
	return &AuthHandler{userUsecase: userUsecase, sessionTTL: sessionTTL, logger: logger}
}

// signup
//
//	@Summary		Регистрация пользователя
//	@Description	Создает пользователя и открывает сессию
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SignupRequest	true	"Данные регистрации"
//	@Success		200		{object}	UserResponse	"Пользователь и cookie сессии"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации или занятый email"
//	@Router			/signup [post]
func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("signup: bad payload: %s", err.Error())
		WriteError(w, err)
		return
	}

	session, err := h.userUsecase.Signup(r.Context(), &usecase.SignupReq{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Phone:    req.Phone,
		Address:  req.Address,
		Photo:    req.Photo,
		Role:     req.Role,
	})
	if err != nil {
		h.logger.Warnf("signup failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, session.Token)
	WriteSuccess(w, http.StatusOK, toUserResponse(session.User))
}

// login
//
//	@Summary		Вход по email и паролю
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"Учетные данные"
//	@Success		200		{object}	UserResponse	"Пользователь и cookie сессии"
//	@Failure		400		{object}	ErrorResponse	"Неизвестный email или неверный пароль"
//	@Router			/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("login: bad payload: %s", err.Error())
		WriteError(w, err)
		return
	}

	session, err := h.userUsecase.Login(r.Context(), &usecase.LoginReq{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnf("login failed for %s: %s", req.Email, err.Error())
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, session.Token)
	WriteSuccess(w, http.StatusOK, toUserResponse(session.User))
}

// logout
//
//	@Summary	Завершение сессии
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/logout [post]
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"loggedOut": true})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
