package health

import "time"

// Status del chequeo visual.
// @Enum Normal, Caution, Alert
type Status string

const (
	StatusNormal  Status = "Normal"
	StatusCaution Status = "Caution"
	StatusAlert   Status = "Alert"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusNormal, StatusCaution, StatusAlert:
		return Status(s), true
	default:
		return "", false
	}
}

// ScanResult es el resultado de analizar una foto.
type ScanResult struct {
	Score           int
	Status          Status
	Analysis        string
	Recommendations []string
	ScannedAt       time.Time
}

// Record guarda como máximo dos snapshots por mascota: el actual y el
// anterior. Cada escaneo nuevo corre el actual al slot previo y el más
// viejo se descarta.
type Record struct {
	Result         *ScanResult
	PreviousResult *ScanResult
}
