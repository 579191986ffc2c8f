package services_test

import (
	"errors"
	"os"
	"testing"

	"matrimony/models"
	"matrimony/services"
	"matrimony/testutil"
	"matrimony/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newRegistrar(t *testing.T) (*services.Registrar, *gorm.DB, *utils.FileStore) {
	cfg := testutil.Config(t)
	db := testutil.SetupTestDB(t, cfg)
	store := testutil.SetupStore(t, cfg)
	return services.NewRegistrar(db, store, cfg.SaltRound, cfg.BureauIDAttempts), db, store
}

func storeDocs(t *testing.T, store *utils.FileStore, names ...string) []*utils.StoredFile {
	var out []*utils.StoredFile
	for _, name := range names {
		header := testutil.FileHeader(t, testutil.File{Field: "documents", Name: name, Content: []byte(name)})
		stored, err := store.Save(header, utils.FolderDocuments)
		require.NoError(t, err)
		out = append(out, stored)
	}
	return out
}

func TestRegisterDistributorWithDocuments(t *testing.T) {
	r, db, store := newRegistrar(t)
	files := storeDocs(t, store, "licence.pdf", "gst.pdf")

	d := &models.Distributor{FullName: "A", Email: "a@x.com", MobileNumber: "123", CompanyName: "C"}
	require.NoError(t, r.RegisterDistributor(d, "p", files))

	var saved models.Distributor
	require.NoError(t, db.First(&saved, d.ID).Error)
	assert.NotEqual(t, "p", saved.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("p")))
	cost, err := bcrypt.Cost([]byte(saved.Password))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
	assert.False(t, saved.CreatedAt.IsZero())

	var docs []models.DistributorDocument
	require.NoError(t, db.Where(&models.DistributorDocument{DistributorID: d.ID}).Order("id").Find(&docs).Error)
	require.Len(t, docs, 2)
	assert.Equal(t, files[0].URL, docs[0].FilePath)
	assert.Equal(t, "licence.pdf", docs[0].Metadata["originalName"])
}

func TestRegisterRejectsDuplicateContact(t *testing.T) {
	r, db, store := newRegistrar(t)
	require.NoError(t, r.RegisterDistributor(&models.Distributor{FullName: "A", Email: "a@x.com", MobileNumber: "123", CompanyName: "C"}, "p", nil))

	cases := map[string]*models.Distributor{
		"same email":  {FullName: "B", Email: "a@x.com", MobileNumber: "999", CompanyName: "C"},
		"same mobile": {FullName: "B", Email: "b@x.com", MobileNumber: "123", CompanyName: "C"},
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			files := storeDocs(t, store, "dup.pdf")
			err := r.RegisterDistributor(d, "p", files)
			assert.ErrorIs(t, err, services.ErrDuplicate)

			_, statErr := os.Stat(files[0].Path)
			assert.True(t, os.IsNotExist(statErr), "uploaded file is cleaned up")
		})
	}

	var count int64
	db.Model(&models.Distributor{}).Count(&count)
	assert.Equal(t, int64(1), count)
	db.Model(&models.DistributorDocument{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterBureauAssignsBureauID(t *testing.T) {
	r, db, store := newRegistrar(t)
	files := storeDocs(t, store, "reg.pdf")

	b := &models.Bureau{BureauName: "B", Email: "b@x.com", MobileNumber: "555", OwnerName: "O", DistributorID: 1}
	require.NoError(t, r.RegisterBureau(b, "secret", files))

	assert.Len(t, b.BureauID, 7)

	var docs []models.BureauDocument
	require.NoError(t, db.Find(&docs).Error)
	require.Len(t, docs, 1)
	assert.Equal(t, b.ID, docs[0].BureauID, "documents reference the row key")
}

func TestRegisterBureauRetriesTakenBureauID(t *testing.T) {
	r, db, _ := newRegistrar(t)
	require.NoError(t, db.Create(&models.Bureau{
		BureauID: "1111111", BureauName: "Old", Email: "old@x.com", MobileNumber: "1", OwnerName: "O", DistributorID: 1, Password: "h",
	}).Error)

	draws := []string{"1111111", "1111111", "2222222"}
	r.NewBureauID = func() (string, error) {
		id := draws[0]
		draws = draws[1:]
		return id, nil
	}

	b := &models.Bureau{BureauName: "New", Email: "new@x.com", MobileNumber: "2", OwnerName: "O", DistributorID: 1}
	require.NoError(t, r.RegisterBureau(b, "secret", nil))
	assert.Equal(t, "2222222", b.BureauID)
}

func TestRegisterBureauGivesUpAfterAttempts(t *testing.T) {
	r, db, store := newRegistrar(t)
	require.NoError(t, db.Create(&models.Bureau{
		BureauID: "1111111", BureauName: "Old", Email: "old@x.com", MobileNumber: "1", OwnerName: "O", DistributorID: 1, Password: "h",
	}).Error)
	r.NewBureauID = func() (string, error) { return "1111111", nil }

	files := storeDocs(t, store, "doc.pdf")
	b := &models.Bureau{BureauName: "New", Email: "new@x.com", MobileNumber: "2", OwnerName: "O", DistributorID: 1}
	err := r.RegisterBureau(b, "secret", files)
	assert.ErrorIs(t, err, services.ErrBureauIDExhausted)

	var count int64
	db.Model(&models.Bureau{}).Count(&count)
	assert.Equal(t, int64(1), count)
	_, statErr := os.Stat(files[0].Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRegisterRollsBackWhenDocumentInsertFails(t *testing.T) {
	r, db, store := newRegistrar(t)
	files := storeDocs(t, store, "a.pdf", "b.pdf")

	d := &models.Distributor{FullName: "A", Email: "a@x.com", MobileNumber: "123", CompanyName: "C"}
	calls := 0
	err := r.Register(services.Registration{
		Record:       d,
		Email:        d.Email,
		MobileNumber: d.MobileNumber,
		Password:     "p",
		Files:        files,
		Document: func(parentID uint, file *utils.StoredFile) interface{} {
			calls++
			if calls == 2 {
				// Reusing the first document's key makes the second insert fail.
				return &models.DistributorDocument{ID: 1, DistributorID: parentID, FilePath: file.URL}
			}
			return &models.DistributorDocument{DistributorID: parentID, FilePath: file.URL}
		},
		BeforeCreate: func(tx *gorm.DB) error { return nil },
	})
	require.Error(t, err)

	var count int64
	db.Model(&models.Distributor{}).Count(&count)
	assert.Equal(t, int64(0), count, "parent rolled back")
	db.Model(&models.DistributorDocument{}).Count(&count)
	assert.Equal(t, int64(0), count)
	for _, f := range files {
		_, statErr := os.Stat(f.Path)
		assert.True(t, os.IsNotExist(statErr))
	}
}

func TestRegisterPropagatesBeforeCreateError(t *testing.T) {
	r, _, _ := newRegistrar(t)
	boom := errors.New("boom")
	err := r.Register(services.Registration{
		Record:       &models.Distributor{FullName: "A", Email: "a@x.com", MobileNumber: "123", CompanyName: "C"},
		Email:        "a@x.com",
		MobileNumber: "123",
		Password:     "p",
		BeforeCreate: func(tx *gorm.DB) error { return boom },
	})
	assert.ErrorIs(t, err, boom)
}

func TestRegisterWithoutMetadataColumn(t *testing.T) {
	r, db, store := newRegistrar(t)
	require.NoError(t, db.Migrator().DropColumn(&models.DistributorDocument{}, "metadata"))
	files := storeDocs(t, store, "licence.pdf")

	d := &models.Distributor{FullName: "A", Email: "a@x.com", MobileNumber: "123", CompanyName: "C"}
	require.NoError(t, r.RegisterDistributor(d, "p", files))

	var docs []models.DistributorDocument
	require.NoError(t, db.Where(&models.DistributorDocument{DistributorID: d.ID}).Find(&docs).Error)
	require.Len(t, docs, 1)
	assert.Equal(t, files[0].URL, docs[0].FilePath)
	assert.Nil(t, docs[0].Metadata)
}
