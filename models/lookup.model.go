package models

// LookupTables are the read-only reference tables, each served on its own route.
var LookupTables = []string{
	"caste",
	"sub_caste",
	"raasi",
	"star",
	"education",
	"extra_skills",
	"annual_income",
	"city",
	"state",
	"country",
}

// LookupRow is only used to create the lookup tables in local and test databases;
// reads return whatever columns the table has.
type LookupRow struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name;size:150;not null"`
}
