package http

import (
	"encoding/json"
	"net/http"

	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/Ranjan7481/Ecommerce/pkg/logger"
)

// allowedProfileFields — единственные поля, которые можно менять через PATCH.
var allowedProfileFields = map[string]struct{}{
	"FullName": {},
	"age":      {},
	"phone":    {},
	"address":  {},
	"photo":    {},
}

type ProfileHandler struct {
	userUsecase usecase.UserUC
	logger      logger.Logger
}

func NewProfileHandler(userUsecase usecase.UserUC, logger logger.Logger) *ProfileHandler {
	return &ProfileHandler{userUsecase: userUsecase, logger: logger}
}

// getProfile
//
//	@Summary	Профиль текущего пользователя
//	@Tags		profile
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/profile [get]
func (h *ProfileHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserResponse(user))
}

// updateProfile
//
//	@Summary		Частичное обновление профиля
//	@Description	Разрешены только FullName, age, phone, address и photo
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			body	body		UpdateProfileRequest	true	"Изменяемые поля"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse	"Недопустимое поле или ошибка валидации"
//	@Router			/profile/update [patch]
func (h *ProfileHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	defer r.Body.Close()

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrValidation))
		return
	}

	for field := range raw {
		if _, ok := allowedProfileFields[field]; !ok {
			h.logger.Warnf("profile update rejected: field %q is not editable", field)
			WriteError(w, e.Wrap(field, e.ErrEditFieldNotAllowed))
			return
		}
	}

	var req UpdateProfileRequest
	if err := remarshal(raw, &req); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrValidation))
		return
	}

	updated, err := h.userUsecase.UpdateProfile(r.Context(), &usecase.UpdateProfileReq{
		UserID:   user.ID,
		FullName: req.FullName,
		Age:      req.Age,
		Phone:    req.Phone,
		Address:  req.Address,
		Photo:    req.Photo,
	})
	if err != nil {
		h.logger.Warnf("profile update failed for user %d: %s", user.ID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserResponse(updated))
}

func remarshal(raw map[string]json.RawMessage, dst interface{}) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dst)
}
