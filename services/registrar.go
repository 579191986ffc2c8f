package services

import (
	"fmt"
	"time"

	"matrimony/models"
	"matrimony/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Registrant is a parent row with unique contact fields and a hashed password.
type Registrant interface {
	GetID() uint
	SetPassword(hash string)
}

// Registration is one creation request. Files have already been written to
// disk; Register removes them again if nothing gets committed.
type Registration struct {
	Record       Registrant
	Email        string
	MobileNumber string
	Password     string
	Files        []*utils.StoredFile
	// Document builds the child row linking a file to the committed parent.
	Document func(parentID uint, file *utils.StoredFile) interface{}
	// BeforeCreate runs inside the transaction right before the parent insert.
	BeforeCreate func(tx *gorm.DB) error
}

// Registrar creates distributors and bureaus together with their documents.
type Registrar struct {
	Db               *gorm.DB
	Store            *utils.FileStore
	SaltRound        int
	BureauIDAttempts int
	NewBureauID      func() (string, error)

	columns *metadataColumns
}

func NewRegistrar(db *gorm.DB, store *utils.FileStore, saltRound, bureauIDAttempts int) *Registrar {
	return &Registrar{
		Db:               db,
		Store:            store,
		SaltRound:        saltRound,
		BureauIDAttempts: bureauIDAttempts,
		NewBureauID:      utils.GenerateBureauID,
		columns:          &metadataColumns{},
	}
}

// Register rejects a duplicate email or mobile number, hashes the password and
// inserts the parent plus one document row per file in a single transaction.
func (r *Registrar) Register(reg Registration) error {
	err := r.register(reg)
	if err != nil && r.Store != nil {
		r.Store.RemoveAll(reg.Files)
	}
	return err
}

func (r *Registrar) register(reg Registration) error {
	var existing int64
	if err := r.Db.Model(reg.Record).
		Where(clause.Or(
			clause.Eq{Column: clause.Column{Name: "email"}, Value: reg.Email},
			clause.Eq{Column: clause.Column{Name: "mobileNumber"}, Value: reg.MobileNumber},
		)).
		Count(&existing).Error; err != nil {
		return fmt.Errorf("duplicate check: %w", err)
	}
	if existing > 0 {
		return ErrDuplicate
	}

	hash, err := HashPassword(reg.Password, r.SaltRound)
	if err != nil {
		return err
	}
	reg.Record.SetPassword(hash)

	return r.Db.Transaction(func(tx *gorm.DB) error {
		if reg.BeforeCreate != nil {
			if err := reg.BeforeCreate(tx); err != nil {
				return err
			}
		}
		if err := tx.Create(reg.Record).Error; err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
		for _, file := range reg.Files {
			if err := r.columns.create(tx, reg.Document(reg.Record.GetID(), file)); err != nil {
				return fmt.Errorf("insert document %s: %w", file.URL, err)
			}
		}
		return nil
	})
}

// RegisterDistributor creates a distributor and its distributor_documents rows.
func (r *Registrar) RegisterDistributor(d *models.Distributor, password string, files []*utils.StoredFile) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	return r.Register(Registration{
		Record:       d,
		Email:        d.Email,
		MobileNumber: d.MobileNumber,
		Password:     password,
		Files:        files,
		Document: func(parentID uint, file *utils.StoredFile) interface{} {
			return &models.DistributorDocument{DistributorID: parentID, FilePath: file.URL, Metadata: file.Metadata}
		},
	})
}

// RegisterBureau creates a bureau with a freshly allocated bureauId and its
// bureau_documents rows.
func (r *Registrar) RegisterBureau(b *models.Bureau, password string, files []*utils.StoredFile) error {
	b.CreatedAt = time.Now()
	return r.Register(Registration{
		Record:       b,
		Email:        b.Email,
		MobileNumber: b.MobileNumber,
		Password:     password,
		Files:        files,
		Document: func(parentID uint, file *utils.StoredFile) interface{} {
			return &models.BureauDocument{BureauID: parentID, FilePath: file.URL, Metadata: file.Metadata}
		},
		BeforeCreate: func(tx *gorm.DB) error {
			id, err := r.allocateBureauID(tx)
			if err != nil {
				return err
			}
			b.BureauID = id
			return nil
		},
	})
}

// allocateBureauID draws random ids until one is unused. The unique index on
// bureauId still rejects a concurrent request that drew the same value.
func (r *Registrar) allocateBureauID(tx *gorm.DB) (string, error) {
	attempts := r.BureauIDAttempts
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		id, err := r.NewBureauID()
		if err != nil {
			return "", fmt.Errorf("generate bureauId: %w", err)
		}
		var taken int64
		if err := tx.Model(&models.Bureau{}).Where(&models.Bureau{BureauID: id}).Count(&taken).Error; err != nil {
			return "", fmt.Errorf("bureauId check: %w", err)
		}
		if taken == 0 {
			return id, nil
		}
	}
	return "", ErrBureauIDExhausted
}

// HashPassword is a salted bcrypt hash with the configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
