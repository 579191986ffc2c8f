package utils

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Upload folders. Each is served back under /api/<folder>/<name>.
const (
	FolderSliderImages  = "bannerimages"
	FolderGalleryImages = "galleryimages"
	FolderHomeBanners   = "homebanners"
	FolderDocuments     = "uploads"
)

// AllowedFolders is the only set of directories the asset resolver will read from.
var AllowedFolders = []string{FolderSliderImages, FolderGalleryImages, FolderHomeBanners, FolderDocuments}

var (
	ErrFolderNotAllowed = errors.New("folder is not allowed")
	ErrInvalidName      = errors.New("invalid file name")
	ErrFileNotFound     = errors.New("file not found")
	ErrTooManyFiles     = errors.New("too many files")
)

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// StoredFile describes an upload after it has been written to disk.
type StoredFile struct {
	Name     string            // generated file name inside the folder
	Path     string            // path on disk
	URL      string            // public relative URL, "/<folder>/<name>"
	Metadata datatypes.JSONMap // original name, size and content type
}

// FileStore writes uploads into the allow-listed folders under Root.
type FileStore struct {
	Root string
}

// NewFileStore creates the upload folders under root if they are missing.
func NewFileStore(root string) (*FileStore, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload root: %w", err)
	}
	for _, folder := range AllowedFolders {
		if err := os.MkdirAll(filepath.Join(root, folder), 0755); err != nil {
			return nil, fmt.Errorf("create upload folder %s: %w", folder, err)
		}
	}
	return &FileStore{Root: root}, nil
}

func IsAllowedFolder(folder string) bool {
	for _, allowed := range AllowedFolders {
		if folder == allowed {
			return true
		}
	}
	return false
}

// Save copies an uploaded file into folder under a generated name. The client
// file name is never used on disk; it is only kept in the metadata.
func (s *FileStore) Save(file *multipart.FileHeader, folder string) (*StoredFile, error) {
	if !IsAllowedFolder(folder) {
		return nil, ErrFolderNotAllowed
	}

	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	destDir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, err
	}

	newFilename := GenerateFileName(file.Filename)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filePath)
		return nil, err
	}
	if err := dst.Close(); err != nil {
		os.Remove(filePath)
		return nil, err
	}

	return &StoredFile{
		Name: newFilename,
		Path: filePath,
		URL:  "/" + folder + "/" + newFilename,
		Metadata: datatypes.JSONMap{
			"originalName": file.Filename,
			"size":         file.Size,
			"contentType":  file.Header.Get("Content-Type"),
		},
	}, nil
}

// SaveAll saves every file into folder. On failure the files written so far
// are removed again.
func (s *FileStore) SaveAll(files []*multipart.FileHeader, folder string) ([]*StoredFile, error) {
	stored := make([]*StoredFile, 0, len(files))
	for _, file := range files {
		f, err := s.Save(file, folder)
		if err != nil {
			s.RemoveAll(stored)
			return nil, err
		}
		stored = append(stored, f)
	}
	return stored, nil
}

// GenerateFileName builds "<unix-millis>-<uuid><ext>". The extension is kept
// only when it is a short alphanumeric suffix.
func GenerateFileName(original string) string {
	base := original
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	ext := strings.ToLower(filepath.Ext(base))
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}

// Resolve maps folder/name to a file on disk. Folders outside the allow-list
// are rejected before any filesystem access.
func (s *FileStore) Resolve(folder, name string) (string, error) {
	if !IsAllowedFolder(folder) {
		return "", ErrFolderNotAllowed
	}
	if !validName(name) {
		return "", ErrInvalidName
	}

	filePath := filepath.Join(s.Root, folder, name)
	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		return "", ErrFileNotFound
	}
	return filePath, nil
}

// Remove deletes the file behind a public URL. Unknown or already missing
// files are not an error.
func (s *FileStore) Remove(url string) error {
	folder, name, ok := SplitURL(url)
	if !ok {
		return ErrInvalidName
	}
	err := os.Remove(filepath.Join(s.Root, folder, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// RemoveAll is the cleanup path after a failed write; errors are only logged.
func (s *FileStore) RemoveAll(files []*StoredFile) {
	for _, f := range files {
		if err := s.Remove(f.URL); err != nil {
			log.Printf("Error removing upload %s: %v", f.URL, err)
		}
	}
}

// SplitURL splits "/<folder>/<name>" into its parts when folder is allowed.
func SplitURL(url string) (folder, name string, ok bool) {
	parts := strings.Split(strings.TrimPrefix(url, "/"), "/")
	if len(parts) != 2 || !IsAllowedFolder(parts[0]) || !validName(parts[1]) {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// UploadKey reduces a stored path to "<folder>/<name>". It accepts the public
// URL form, the relative "uploads/<name>" form and backslash separators.
func UploadKey(path string) string {
	key := strings.ReplaceAll(strings.TrimSpace(path), `\`, "/")
	for {
		trimmed := strings.TrimPrefix(strings.TrimPrefix(key, "./"), "/")
		if trimmed == key {
			return key
		}
		key = trimmed
	}
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}

// FormFiles returns the files posted under field. A request that is not
// multipart simply carries no files.
func FormFiles(c *fiber.Ctx, field string, max int) ([]*multipart.FileHeader, error) {
	if !strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	files := form.File[field]
	if max > 0 && len(files) > max {
		return nil, ErrTooManyFiles
	}
	return files, nil
}
