package models

import "strings"

// Motorcycle is one registration record, keyed by frame number. Column and
// JSON names match the historical immatric table.
type Motorcycle struct {
	FrameNumber         string  `json:"FrameNumber" gorm:"column:FrameNumber;primaryKey;size:50" validate:"required,max=50"`
	Marque              *string `json:"Marque" gorm:"column:Marque;size:30" validate:"omitempty,max=30"`
	DateArrivage        *string `json:"DateArrivage" gorm:"column:DateArrivage;size:30" validate:"omitempty,max=30"`
	Modele              *string `json:"MODELE" gorm:"column:MODELE;size:50" validate:"omitempty,max=50"`
	NFacture            *string `json:"NFacture" gorm:"column:NFacture;size:20" validate:"omitempty,max=20"`
	Color               *string `json:"Color" gorm:"column:Color;size:30" validate:"omitempty,max=30"`
	Revendeur           *string `json:"revendeur" gorm:"column:revendeur;size:50" validate:"omitempty,max=50"`
	Client              *string `json:"client" gorm:"column:client;size:50" validate:"omitempty,max=50"`
	DateVenteRevendeur  *string `json:"DateVenteRevendeur" gorm:"column:DateVenteRevendeur;size:30" validate:"omitempty,max=30"`
	DateVenteClient     *string `json:"DateVenteClient" gorm:"column:DateVenteClient;size:30" validate:"omitempty,max=30"`
	Cnie                *string `json:"cnie" gorm:"column:cnie;size:20" validate:"omitempty,max=20"`
	Observation         *string `json:"observation" gorm:"column:observation;size:100" validate:"omitempty,max=100"`
	DateNaissance       *string `json:"DateNaissance" gorm:"column:DateNaissance;size:30" validate:"omitempty,max=30"`
	Sexe                *string `json:"Sexe" gorm:"column:Sexe;size:7" validate:"omitempty,max=7"`
	VilleVente          *string `json:"VilleVente" gorm:"column:VilleVente;size:50" validate:"omitempty,max=50"`
	ProvinceVente       *string `json:"ProvinceVente" gorm:"column:ProvinceVente;size:50" validate:"omitempty,max=50"`
	VilleAffectation    *string `json:"VilleAffectation" gorm:"column:VilleAffectation;size:50" validate:"omitempty,max=50"`
	ProvinceAffectation *string `json:"ProvinceAffectation" gorm:"column:ProvinceAffectation;size:50" validate:"omitempty,max=50"`
}

func (Motorcycle) TableName() string {
	return "immatric"
}

// ColumnSizes is the character limit of every optional column.
var ColumnSizes = map[string]int{
	"Marque":              30,
	"DateArrivage":        30,
	"MODELE":              50,
	"NFacture":            20,
	"Color":               30,
	"revendeur":           50,
	"client":              50,
	"DateVenteRevendeur":  30,
	"DateVenteClient":     30,
	"cnie":                20,
	"observation":         100,
	"DateNaissance":       30,
	"Sexe":                7,
	"VilleVente":          50,
	"ProvinceVente":       50,
	"VilleAffectation":    50,
	"ProvinceAffectation": 50,
}

// DateColumns are the columns holding dates as text. Inserts keep the text
// as given; updates store DD/MM/YY or YYYY-MM-DD.
var DateColumns = []string{"DateArrivage", "DateVenteRevendeur", "DateVenteClient", "DateNaissance"}

// MutableColumns lists every column an update may touch. The frame number is
// the key and is not part of it.
var MutableColumns = map[string]bool{
	"Marque":              true,
	"DateArrivage":        true,
	"MODELE":              true,
	"NFacture":            true,
	"Color":               true,
	"revendeur":           true,
	"client":              true,
	"DateVenteRevendeur":  true,
	"DateVenteClient":     true,
	"cnie":                true,
	"observation":         true,
	"DateNaissance":       true,
	"Sexe":                true,
	"VilleVente":          true,
	"ProvinceVente":       true,
	"VilleAffectation":    true,
	"ProvinceAffectation": true,
}

// NormalizeBlanks replaces every blank optional field with nil.
func (m *Motorcycle) NormalizeBlanks() {
	for _, field := range []**string{
		&m.Marque, &m.DateArrivage, &m.Modele, &m.NFacture, &m.Color,
		&m.Revendeur, &m.Client, &m.DateVenteRevendeur, &m.DateVenteClient,
		&m.Cnie, &m.Observation, &m.DateNaissance, &m.Sexe,
		&m.VilleVente, &m.ProvinceVente, &m.VilleAffectation, &m.ProvinceAffectation,
	} {
		*field = NullIfBlank(*field)
	}
}

// NullIfBlank returns nil for a nil or whitespace-only string.
func NullIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// SetColumn assigns the field stored in the given column. It reports false
// for a column the record does not have.
func (m *Motorcycle) SetColumn(column string, value *string) bool {
	switch column {
	case "FrameNumber":
		if value == nil {
			m.FrameNumber = ""
		} else {
			m.FrameNumber = *value
		}
	case "Marque":
		m.Marque = value
	case "DateArrivage":
		m.DateArrivage = value
	case "MODELE":
		m.Modele = value
	case "NFacture":
		m.NFacture = value
	case "Color":
		m.Color = value
	case "revendeur":
		m.Revendeur = value
	case "client":
		m.Client = value
	case "DateVenteRevendeur":
		m.DateVenteRevendeur = value
	case "DateVenteClient":
		m.DateVenteClient = value
	case "cnie":
		m.Cnie = value
	case "observation":
		m.Observation = value
	case "DateNaissance":
		m.DateNaissance = value
	case "Sexe":
		m.Sexe = value
	case "VilleVente":
		m.VilleVente = value
	case "ProvinceVente":
		m.ProvinceVente = value
	case "VilleAffectation":
		m.VilleAffectation = value
	case "ProvinceAffectation":
		m.ProvinceAffectation = value
	default:
		return false
	}
	return true
}
