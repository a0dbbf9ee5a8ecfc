package routines

import (
	"strings"
	"time"
)

// Icon define la categoría visual de una actividad.
// @Enum food, water, walk, medicine, sleep
type Icon string

const (
	IconFood     Icon = "food"
	IconWater    Icon = "water"
	IconWalk     Icon = "walk"
	IconMedicine Icon = "medicine"
	IconSleep    Icon = "sleep"
)

func ParseIcon(s string) (Icon, bool) {
	switch Icon(s) {
	case IconFood, IconWater, IconWalk, IconMedicine, IconSleep:
		return Icon(s), true
	default:
		return "", false
	}
}

// Item es una actividad agendada de la rutina diaria de una mascota.
// Time va en "HH:MM" 24h: así el orden lexicográfico es el cronológico.
type Item struct {
	ID       string
	Time     string
	Activity string
	Details  string
	Icon     Icon
}

// NormalizeTime lleva un horario a "HH:MM" 24h. Acepta también el
// formato am/pm que a veces devuelve el asistente.
func NormalizeTime(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range []string{"15:04", "3:04 PM", "3:04PM"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}
