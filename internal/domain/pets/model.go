package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

func ParseSpecies(s string) (Species, bool) {
	switch Species(s) {
	case SpeciesDog, SpeciesCat:
		return Species(s), true
	default:
		return "", false
	}
}

// Pet representa el perfil de una mascota registrada en la app.
// Age y Weight son texto libre (así los captura el formulario).
type Pet struct {
	ID string

	Name    string
	Species Species
	Breed   string
	Age     string
	Weight  string

	Birthday        *time.Time
	Avatar          string // URI
	VaccinationInfo string

	CreatedAt time.Time
	UpdatedAt time.Time
}
