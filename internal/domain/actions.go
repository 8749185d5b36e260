package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionLook
	ActionTarget
	ActionValidate
	ActionZap
	ActionStatus
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"LOOK":     ActionLook,
	"TARGET":   ActionTarget,
	"VALIDATE": ActionValidate,
	"ZAP":      ActionZap,
	"STATUS":   ActionStatus,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionLook:     "LOOK",
	ActionTarget:   "TARGET",
	ActionValidate: "VALIDATE",
	ActionZap:      "ZAP",
	ActionStatus:   "STATUS",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
