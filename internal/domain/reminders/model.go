package reminders

import "time"

// Frequency define la recurrencia de un recordatorio.
// @Enum none, daily, weekly
type Frequency string

const (
	FrequencyNone   Frequency = "none"
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func ParseFrequency(s string) (Frequency, bool) {
	switch Frequency(s) {
	case FrequencyNone, FrequencyDaily, FrequencyWeekly:
		return Frequency(s), true
	default:
		return "", false
	}
}

const DateLayout = "2006-01-02"

// Reminder vive en una colección plana; la pertenencia a la mascota va
// por el campo PetID, no por clave de storage.
type Reminder struct {
	ID        string
	PetID     string
	Title     string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Frequency Frequency
}

// StartDate parsea la fecha de inicio normalizada a medianoche.
func (r Reminder) StartDate() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}

// IsDue decide si el recordatorio aplica hoy:
//  1. fechas normalizadas a medianoche
//  2. fecha de inicio en el futuro => no
//  3. daily => sí, desde la fecha de inicio en adelante
//  4. weekly => solo si coincide el día de la semana original
//  5. none => solo la fecha exacta
func IsDue(r Reminder, today time.Time) bool {
	start, err := r.StartDate()
	if err != nil {
		return false
	}

	// se comparan fechas puras, sin hora ni zona
	day := midnight(today)
	start = midnight(start)

	if start.After(day) {
		return false
	}

	switch r.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		return start.Weekday() == day.Weekday()
	default:
		return start.Equal(day)
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
