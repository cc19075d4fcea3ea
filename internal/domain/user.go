package domain

import "context"

// User - учетная запись платформы. С разработчиком связана только по почте.
type User struct {
	ID   int64
	Name string
	Mail string
}

// Label возвращает отображаемое имя пользователя.
func (u *User) Label() string {
	return u.Name
}

// UserStorage определяет контракт для поиска пользователей по свойствам.
// Поддерживаемые свойства: "mail", "name".
type UserStorage interface {
	Create(ctx context.Context, user *User) error
	LoadByProperties(ctx context.Context, properties map[string]string) ([]*User, error)
}
