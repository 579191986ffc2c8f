package services

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"matrimony/models"
	"matrimony/utils"

	"gorm.io/gorm"
)

// imageRow is a child row that points at a stored image.
type imageRow interface {
	GetImageURL() string
}

// Attacher writes bureau images to disk and links them to the bureau.
// Slider and gallery images are many-per-bureau rows; the banner is a single
// column on the bureau itself.
type Attacher struct {
	Db    *gorm.DB
	Store *utils.FileStore

	columns *metadataColumns
}

func NewAttacher(db *gorm.DB, store *utils.FileStore) *Attacher {
	return &Attacher{Db: db, Store: store, columns: &metadataColumns{}}
}

func (a *Attacher) AddSliderImage(bureauID string, file *multipart.FileHeader) (*models.SliderImage, error) {
	img := &models.SliderImage{BureauID: bureauID}
	err := a.attach(file, utils.FolderSliderImages, func(stored *utils.StoredFile) interface{} {
		img.ImageURL = stored.URL
		img.Metadata = stored.Metadata
		return img
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (a *Attacher) AddGalleryImage(bureauID string, file *multipart.FileHeader) (*models.GalleryImage, error) {
	img := &models.GalleryImage{BureauID: bureauID}
	err := a.attach(file, utils.FolderGalleryImages, func(stored *utils.StoredFile) interface{} {
		img.ImageURL = stored.URL
		img.Metadata = stored.Metadata
		return img
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (a *Attacher) attach(file *multipart.FileHeader, folder string, row func(*utils.StoredFile) interface{}) error {
	stored, err := a.Store.Save(file, folder)
	if err != nil {
		return fmt.Errorf("save upload: %w", err)
	}
	if err := a.columns.create(a.Db, row(stored)); err != nil {
		a.Store.RemoveAll([]*utils.StoredFile{stored})
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

// SetBanner stores file as the bureau's welcome banner and returns its URL.
// The previous banner file, if any, is removed once the row points elsewhere.
func (a *Attacher) SetBanner(bureauID string, file *multipart.FileHeader) (string, error) {
	var bureau models.Bureau
	err := a.Db.Select("id", "welcomeImageBanner").Where(&models.Bureau{BureauID: bureauID}).Take(&bureau).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("load bureau: %w", err)
	}

	stored, err := a.Store.Save(file, utils.FolderHomeBanners)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	result := a.Db.Model(&models.Bureau{}).
		Where(&models.Bureau{BureauID: bureauID}).
		Update("welcomeImageBanner", stored.URL)
	if result.Error != nil {
		a.Store.RemoveAll([]*utils.StoredFile{stored})
		return "", fmt.Errorf("update banner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		a.Store.RemoveAll([]*utils.StoredFile{stored})
		return "", ErrNotFound
	}

	if previous := bureau.WelcomeImageBanner; previous != nil && *previous != "" && *previous != stored.URL {
		if err := a.Store.Remove(*previous); err != nil {
			log.Printf("Error removing previous banner %s: %v", *previous, err)
		}
	}
	return stored.URL, nil
}

func (a *Attacher) SliderImages(bureauID string) ([]models.SliderImage, error) {
	var images []models.SliderImage
	err := a.Db.Select("id", "imageUrl").Where(&models.SliderImage{BureauID: bureauID}).Order("id").Find(&images).Error
	return images, err
}

func (a *Attacher) GalleryImages(bureauID string) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := a.Db.Select("id", "imageUrl").Where(&models.GalleryImage{BureauID: bureauID}).Order("id").Find(&images).Error
	return images, err
}

func (a *Attacher) DeleteSliderImage(id uint) error {
	return a.deleteImage(&models.SliderImage{}, id)
}

func (a *Attacher) DeleteGalleryImage(id uint) error {
	return a.deleteImage(&models.GalleryImage{}, id)
}

// deleteImage removes the row and then, best effort, the file behind it.
func (a *Attacher) deleteImage(row imageRow, id uint) error {
	if err := a.Db.Take(row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load image: %w", err)
	}

	result := a.Db.Delete(row)
	if result.Error != nil {
		return fmt.Errorf("delete image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	if err := a.Store.Remove(row.GetImageURL()); err != nil {
		log.Printf("Error removing image file %s: %v", row.GetImageURL(), err)
	}
	return nil
}
