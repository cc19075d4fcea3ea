package messenger

import "team-member-service/internal/domain"

// Типы сообщений
const (
	TypeStatus = "status"
	TypeError  = "error"
)

// Message - одно сообщение для пользователя.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Messenger собирает сообщения в рамках одного запроса.
type Messenger struct {
	messages []Message
}

// New создает пустой Messenger.
func New() *Messenger {
	return &Messenger{}
}

var _ domain.Messenger = (*Messenger)(nil)

func (m *Messenger) AddStatus(message string) {
	m.messages = append(m.messages, Message{Type: TypeStatus, Text: message})
}

func (m *Messenger) AddError(message string) {
	m.messages = append(m.messages, Message{Type: TypeError, Text: message})
}

// All возвращает сообщения в порядке добавления.
func (m *Messenger) All() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// ByType возвращает тексты сообщений указанного типа.
func (m *Messenger) ByType(messageType string) []string {
	var out []string
	for _, msg := range m.messages {
		if msg.Type == messageType {
			out = append(out, msg.Text)
		}
	}
	return out
}
