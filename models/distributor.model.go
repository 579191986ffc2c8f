package models

import (
	"time"

	"gorm.io/datatypes"
)

// Distributor is an account that creates and manages bureaus.
// Column names follow the existing camelCase schema.
type Distributor struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FullName      string    `gorm:"column:fullName;size:150;not null" json:"fullName"`
	Email         string    `gorm:"column:email;size:100;index;not null" json:"email"`
	MobileNumber  string    `gorm:"column:mobileNumber;size:20;index;not null" json:"mobileNumber"`
	Password      string    `gorm:"column:password;not null" json:"-"`
	CreatedAt     time.Time `gorm:"column:createdAt" json:"createdAt"`
	Location      string    `gorm:"column:location" json:"location"`
	PaymentStatus string    `gorm:"column:paymentStatus;size:50" json:"paymentStatus"`
	CompanyName   string    `gorm:"column:companyName;size:150;not null" json:"companyName"`
}

func (Distributor) TableName() string {
	return "distributor_profiles"
}

func (d *Distributor) GetID() uint { return d.ID }

func (d *Distributor) SetPassword(hash string) { d.Password = hash }

func (d *Distributor) PasswordHash() string { return d.Password }

func (d *Distributor) Identity() interface{} { return d.ID }

// DistributorDocument links an uploaded file to its distributor.
type DistributorDocument struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	DistributorID uint              `gorm:"column:distributor_id;index;not null" json:"distributorId"`
	FilePath      string            `gorm:"column:file_path;size:512;not null" json:"filePath"`
	Metadata      datatypes.JSONMap `gorm:"column:metadata" json:"metadata,omitempty"`
}

func (DistributorDocument) TableName() string {
	return "distributor_documents"
}
