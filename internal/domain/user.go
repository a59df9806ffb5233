package domain

import "time"

// Role определяет уровень доступа пользователя
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// DefaultUserPhoto подставляется, если пользователь не загрузил фото
const DefaultUserPhoto = "https://www.w3schools.com/howto/img_avatar.png"

// User описывает зарегистрированного пользователя магазина
type User struct {
	ID           int64
	FullName     string
	Email        string // хранится в нижнем регистре, уникален
	PasswordHash string
	Age          int
	Phone        *string
	Address      string
	Photo        *string // base64-кодированное изображение
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewUser(fullName, email, passwordHash string, age int, phone *string, address string, photo *string, role Role) *User {
	if role == "" {
		role = RoleUser
	}

	if photo == nil {
		defaultPhoto := DefaultUserPhoto
		photo = &defaultPhoto
	}

	return &User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		Age:          age,
		Phone:        phone,
		Address:      address,
		Photo:        photo,
		Role:         role,
	}
}

// IsAdmin сообщает, имеет ли пользователь права администратора каталога.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
