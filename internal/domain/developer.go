package domain

import "context"

// Developer - учетная запись разработчика API, ключом служит email.
type Developer struct {
	Email     string
	FirstName string
	LastName  string
	UserName  string
}

// DeveloperRepository определяет контракт для работы с хранилищем разработчиков.
type DeveloperRepository interface {
	Upsert(ctx context.Context, developer *Developer) error
	GetByEmail(ctx context.Context, email string) (*Developer, error)
}
