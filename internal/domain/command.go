package domain

import "encoding/json"

// InternalCommand - оптимизированная команда для движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}

// NewInternalCommand переводит строковое действие из UI в ActionType
func NewInternalCommand(action string, payload json.RawMessage) InternalCommand {
	return InternalCommand{Action: ParseAction(action), Payload: payload}
}
