package models

import "gorm.io/datatypes"

// SliderImage is one of many banner slider images shown for a bureau.
type SliderImage struct {
	ID       uint              `gorm:"primaryKey" json:"id"`
	BureauID string            `gorm:"column:bureauId;size:7;index;not null" json:"-"`
	ImageURL string            `gorm:"column:imageUrl;size:512;not null" json:"imageUrl"`
	Metadata datatypes.JSONMap `gorm:"column:metadata" json:"-"`
}

func (SliderImage) TableName() string {
	return "slider_images"
}

func (i *SliderImage) GetImageURL() string { return i.ImageURL }

type GalleryImage struct {
	ID       uint              `gorm:"primaryKey" json:"id"`
	BureauID string            `gorm:"column:bureauId;size:7;index;not null" json:"-"`
	ImageURL string            `gorm:"column:imageUrl;size:512;not null" json:"imageUrl"`
	Metadata datatypes.JSONMap `gorm:"column:metadata" json:"-"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}

func (i *GalleryImage) GetImageURL() string { return i.ImageURL }
