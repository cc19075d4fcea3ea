package domain

import "context"

// CacheTagsInvalidator помечает закэшированный вывод по тегам устаревшим.
type CacheTagsInvalidator interface {
	InvalidateTags(ctx context.Context, tags []string)
}

// CacheTagsChecksum возвращает контрольную сумму набора тегов.
// Сумма меняется при каждой инвалидации любого из тегов.
type CacheTagsChecksum interface {
	Checksum(ctx context.Context, tags []string) (int64, error)
}

// Messenger собирает сообщения для пользователя.
type Messenger interface {
	AddStatus(message string)
	AddError(message string)
}

// Translator подставляет аргументы в шаблон сообщения.
type Translator interface {
	T(template string, args map[string]string) string
}

// Исходы удаления участника для метрик.
const (
	RemovalRemoved   = "removed"
	RemovalFailed    = "failed"
	RemovalRejected  = "rejected"
	RemovalCancelled = "cancelled"
)

// RemovalRecorder учитывает исходы удаления участников.
type RemovalRecorder interface {
	ObserveRemoval(outcome string)
}
