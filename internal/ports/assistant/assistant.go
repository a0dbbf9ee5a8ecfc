package assistant

import "context"

// Assistant es el colaborador generativo externo. El contrato exacto
// (modelo, prompts) es del adapter; acá solo viven los tipos que los
// dominios consumen.
type Assistant interface {
	// GenerateRoutine arma una agenda diaria sugerida para la mascota.
	GenerateRoutine(ctx context.Context, p PetContext) ([]SuggestedItem, error)

	// AnalyzePhoto evalúa una foto (piel, ojos, pelaje) y devuelve un reporte.
	AnalyzePhoto(ctx context.Context, species string, image []byte, mimeType string) (ScanReport, error)

	// Simplify reescribe un texto en términos simples para el dueño.
	Simplify(ctx context.Context, text string) (string, error)

	// Advise responde un mensaje de chat con el contexto de la mascota
	// y los turnos previos.
	Advise(ctx context.Context, p PetContext, history []Turn, message string) (string, error)

	// FindNearbyVets busca veterinarias cerca de las coordenadas dadas.
	FindNearbyVets(ctx context.Context, lat, lon float64) ([]Vet, error)
}

// PetContext es el subconjunto del perfil que viaja en los prompts.
type PetContext struct {
	Name    string
	Species string
	Breed   string
	Age     string
	Weight  string
}

type SuggestedItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Details  string `json:"details"`
	Icon     string `json:"icon"`
}

type ScanReport struct {
	Score           int      `json:"score"`
	Status          string   `json:"status"`
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Turn struct {
	Role Role
	Text string
}

type Vet struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}
