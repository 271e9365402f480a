package models

// Province is a row of the province/city reference table used to fill the
// dependent dropdowns. Uniqueness is enforced by the queries, not the schema.
type Province struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Province *string `json:"province" gorm:"column:province;size:50;index"`
	Ville    *string `json:"ville" gorm:"column:ville;size:50"`
}

func (Province) TableName() string {
	return "provinces"
}

// ProvinceRow is the shape returned by the provinces listing.
type ProvinceRow struct {
	Province string `json:"province"`
}
