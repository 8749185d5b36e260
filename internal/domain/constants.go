package domain

// Параметры восприятия
const (
	VisionRadius = 8
)

// Параметры жезлов
const (
	DefaultZapRange      = 12
	DefaultSleepMinTurns = 3
	DefaultSleepMaxTurns = 6
	DefaultSpeed         = 10
)

// DefaultPolymorphForms - в кого превращается цель, если жезл не задал свой список
var DefaultPolymorphForms = []string{
	"крыса",
	"летучая мышь",
	"кобольд",
	"змея",
	"гоблин",
	"тролль",
}
