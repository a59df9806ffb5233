package usecase

import "context"

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// PasswordHasher — одностороннее хеширование паролей.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// SessionIssuer выпускает и проверяет подписанные токены сессий.
type SessionIssuer interface {
	Issue(userID int64, email string, role string) (string, error)
	Parse(token string) (int64, error)
}
