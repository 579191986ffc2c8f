package models

import (
	"time"

	"gorm.io/datatypes"
)

// Bureau is a tenant business managed by a distributor. ID is the database key
// used by bureau_documents; BureauID is the public 7-digit identifier used by
// everything else.
type Bureau struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	BureauID           string    `gorm:"column:bureauId;size:7;uniqueIndex;not null" json:"bureauId"`
	BureauName         string    `gorm:"column:bureauName;size:150;not null" json:"bureauName"`
	MobileNumber       string    `gorm:"column:mobileNumber;size:20;index;not null" json:"mobileNumber"`
	About              string    `gorm:"column:about;type:text" json:"about"`
	Location           string    `gorm:"column:location" json:"location"`
	Email              string    `gorm:"column:email;size:100;index;not null" json:"email"`
	OwnerName          string    `gorm:"column:ownerName;size:150;not null" json:"ownerName"`
	PaymentStatus      string    `gorm:"column:paymentStatus;size:50" json:"paymentStatus"`
	DistributorID      uint      `gorm:"column:distributorId;index;not null" json:"distributorId"`
	Password           string    `gorm:"column:password;not null" json:"-"`
	WelcomeImageBanner *string   `gorm:"column:welcomeImageBanner;size:512" json:"welcomeImageBanner"`
	CreatedAt          time.Time `gorm:"column:createdAt" json:"createdAt"`
}

func (Bureau) TableName() string {
	return "bureau_profiles"
}

func (b *Bureau) GetID() uint { return b.ID }

func (b *Bureau) SetPassword(hash string) { b.Password = hash }

func (b *Bureau) PasswordHash() string { return b.Password }

// Identity is the bureauId, not the row key; clients address bureaus by it.
func (b *Bureau) Identity() interface{} { return b.BureauID }

// BureauDocument references the parent's row key (bureau_profiles.id).
type BureauDocument struct {
	ID       uint              `gorm:"primaryKey" json:"id"`
	BureauID uint              `gorm:"column:bureau_id;index;not null" json:"bureauId"`
	FilePath string            `gorm:"column:file_path;size:512;not null" json:"filePath"`
	Metadata datatypes.JSONMap `gorm:"column:metadata" json:"metadata,omitempty"`
}

func (BureauDocument) TableName() string {
	return "bureau_documents"
}
