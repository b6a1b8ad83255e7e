package entity

import "time"

// Provincias canadienses válidas (código de 2 letras).
var ValidProvinces = map[string]bool{
	"NS": true, "NB": true, "PE": true, "NL": true, "QC": true,
	"ON": true, "MB": true, "SK": true, "AB": true, "BC": true,
	"YT": true, "NT": true, "NU": true,
}

// Employer representa la empresa que solicita la cotización de beneficios.
// Se crea una vez por solicitud y este flujo nunca la muta.
type Employer struct {
	ID           string
	Name         string
	Province     string // código de 2 letras (ON, QC, ...)
	IndustryCode string
	CreatedAt    time.Time
}
