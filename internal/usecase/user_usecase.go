package usecase

import (
	"context"
	"net/mail"
	"strings"
	"unicode"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/Ranjan7481/Ecommerce/pkg/logger"
)

// UserUseCase реализует регистрацию, вход и работу с профилем.
type UserUseCase struct {
	userRepo UserRepository
	hasher   PasswordHasher
	sessions SessionIssuer
	logger   logger.Logger
}

func NewUserUC(userRepo UserRepository, hasher PasswordHasher, sessions SessionIssuer, logger logger.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
		logger:   logger,
	}
}

// Signup валидирует профиль, хеширует пароль и создает пользователя.
// Email уникален: дубликат считается ошибкой валидации.
func (u *UserUseCase) Signup(ctx context.Context, req *SignupReq) (*SessionRes, error) {
	const op = "UserUseCase.Signup"

	if err := validateSignup(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user := domain.NewUser(
		strings.TrimSpace(req.FullName),
		strings.ToLower(strings.TrimSpace(req.Email)),
		hash,
		req.Age,
		req.Phone,
		strings.TrimSpace(req.Address),
		req.Photo,
		domain.Role(req.Role),
	)

	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	token, err := u.sessions.Issue(created.ID, created.Email, string(created.Role))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewSessionRes(created, token), nil
}

// Login проверяет учетные данные и выпускает токен сессии.
func (u *UserUseCase) Login(ctx context.Context, req *LoginReq) (*SessionRes, error) {
	const op = "UserUseCase.Login"

	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := u.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	token, err := u.sessions.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewSessionRes(user, token), nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const op = "UserUseCase.GetByID"

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

// ResolveSession сопоставляет токен из cookie с существующим пользователем.
func (u *UserUseCase) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	const op = "UserUseCase.ResolveSession"

	userID, err := u.sessions.Parse(token)
	if err != nil {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	return user, nil
}

// UpdateProfile применяет разрешенный набор изменений к профилю.
func (u *UserUseCase) UpdateProfile(ctx context.Context, req *UpdateProfileReq) (*domain.User, error) {
	const op = "UserUseCase.UpdateProfile"

	user, err := u.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = strings.TrimSpace(*req.Address)
	}
	if req.Photo != nil {
		user.Photo = req.Photo
	}

	if err := validateProfile(user); err != nil {
		return nil, e.Wrap(op, err)
	}

	updated, err := u.userRepo.Update(ctx, user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// validateSignup проверяет поля анкеты регистрации.
func validateSignup(req *SignupReq) error {
	fullName := strings.TrimSpace(req.FullName)
	if len(fullName) < 5 || len(fullName) > 50 {
		return e.Wrap("full name must be between 5 and 50 characters", e.ErrValidation)
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return e.Wrap("invalid email address", e.ErrValidation)
	}

	if !strongPassword(req.Password) {
		return e.Wrap("password is not strong enough", e.ErrValidation)
	}

	if req.Age < 12 {
		return e.Wrap("age must be at least 12", e.ErrValidation)
	}

	address := strings.TrimSpace(req.Address)
	if len(address) < 5 || len(address) > 100 {
		return e.Wrap("address must be between 5 and 100 characters", e.ErrValidation)
	}

	if req.Role != "" && req.Role != string(domain.RoleUser) && req.Role != string(domain.RoleAdmin) {
		return e.Wrap("role must be either 'user' or 'admin'", e.ErrValidation)
	}

	return nil
}

// validateProfile проверяет инварианты профиля после частичного обновления.
func validateProfile(user *domain.User) error {
	if len(user.FullName) < 5 || len(user.FullName) > 50 {
		return e.Wrap("full name must be between 5 and 50 characters", e.ErrValidation)
	}

	if user.Age < 12 {
		return e.Wrap("age must be at least 12", e.ErrValidation)
	}

	if len(user.Address) < 5 || len(user.Address) > 100 {
		return e.Wrap("address must be between 5 and 100 characters", e.ErrValidation)
	}

	return nil
}

// strongPassword требует не менее 8 символов с буквами обоих регистров,
// цифрой и спецсимволом.
func strongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	return lower && upper && digit && symbol
}
