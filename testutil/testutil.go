package testutil

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"testing"

	"matrimony/config"
	"matrimony/database"
	"matrimony/utils"

	"gorm.io/gorm"
)

// Config returns a configuration pointing at a fresh sqlite file and upload
// root inside the test's temp dir.
func Config(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	return &config.Config{
		Port:             "0",
		DBDriver:         "sqlite",
		DBName:           filepath.Join(dir, "test.db"),
		DBMaxOpenConns:   10,
		DBMaxIdleConns:   5,
		AutoMigrate:      true,
		SaltRound:        10,
		BureauIDAttempts: 5,
		UploadRoot:       filepath.Join(dir, "public"),
		MaxDocuments:     10,
		BodyLimitMB:      20,
	}
}

// SetupTestDB opens the sqlite database described by cfg with the full schema.
func SetupTestDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := database.ConnectDb(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SetupStore creates the upload folders under cfg.UploadRoot.
func SetupStore(t *testing.T, cfg *config.Config) *utils.FileStore {
	t.Helper()

	store, err := utils.NewFileStore(cfg.UploadRoot)
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	return store
}

// File is one part of a multipart request body.
type File struct {
	Field    string
	Name     string
	Content  []byte
	MimeType string
}

// MultipartBody encodes fields and files as multipart/form-data.
func MultipartBody(t *testing.T, fields map[string]string, files ...File) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Name+`"`)
		mimeType := f.MimeType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		h.Set("Content-Type", mimeType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part %s: %v", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("write part %s: %v", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

// FileHeader builds a *multipart.FileHeader the way Fiber hands it to handlers.
func FileHeader(t *testing.T, f File) *multipart.FileHeader {
	t.Helper()

	body, contentType := MultipartBody(t, nil, f)
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[f.Field][0]
}
