package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"matrimony/testutil"
	"matrimony/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *utils.FileStore {
	store, err := utils.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewFileStoreCreatesFolders(t *testing.T) {
	store := newStore(t)
	for _, folder := range utils.AllowedFolders {
		info, err := os.Stat(filepath.Join(store.Root, folder))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveUsesOpaqueName(t *testing.T) {
	store := newStore(t)
	header := testutil.FileHeader(t, testutil.File{
		Field:    "image",
		Name:     "family portrait.JPG",
		Content:  []byte("jpeg bytes"),
		MimeType: "image/jpeg",
	})

	stored, err := store.Save(header, utils.FolderGalleryImages)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stored.Name, ".jpg"))
	assert.NotContains(t, stored.Name, "portrait")
	assert.Equal(t, "/galleryimages/"+stored.Name, stored.URL)
	assert.Equal(t, filepath.Join(store.Root, "galleryimages", stored.Name), stored.Path)
	assert.Equal(t, "family portrait.JPG", stored.Metadata["originalName"])
	assert.Equal(t, "image/jpeg", stored.Metadata["contentType"])

	content, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(content))
}

func TestSaveRejectsUnknownFolder(t *testing.T) {
	store := newStore(t)
	header := testutil.FileHeader(t, testutil.File{Field: "image", Name: "a.png", Content: []byte("x")})

	_, err := store.Save(header, "secrets")
	assert.ErrorIs(t, err, utils.ErrFolderNotAllowed)
}

func TestGenerateFileName(t *testing.T) {
	cases := map[string]string{
		"photo.png":            ".png",
		"archive.tar.GZ":       ".gz",
		"no-extension":         "",
		"weird.ext-with-dash!": "",
		`C:\users\me\cv.pdf`:   ".pdf",
		"long.abcdefghijklmno": "",
	}
	for original, ext := range cases {
		name := utils.GenerateFileName(original)
		assert.Equal(t, ext, filepath.Ext(name), original)
		assert.NotContains(t, name, "/")
		assert.NotContains(t, name, `\`)
	}

	assert.NotEqual(t, utils.GenerateFileName("a.png"), utils.GenerateFileName("a.png"))
}

func TestResolve(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(store.Root, "homebanners", "b.png"), []byte("x"), 0644))

	path, err := store.Resolve("homebanners", "b.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Root, "homebanners", "b.png"), path)

	_, err = store.Resolve("homebanners", "missing.png")
	assert.ErrorIs(t, err, utils.ErrFileNotFound)

	_, err = store.Resolve("etc", "passwd")
	assert.ErrorIs(t, err, utils.ErrFolderNotAllowed)

	for _, name := range []string{"", ".", "..", "..%2f", `a\b`, "a/b"} {
		_, err = store.Resolve("uploads", name)
		assert.ErrorIs(t, err, utils.ErrInvalidName, name)
	}
}

func TestResolveRejectsFolderWithoutTouchingDisk(t *testing.T) {
	// Root does not exist, so any filesystem access would fail differently.
	store := &utils.FileStore{Root: filepath.Join(t.TempDir(), "absent")}

	_, err := store.Resolve("private", "file.txt")
	assert.ErrorIs(t, err, utils.ErrFolderNotAllowed)
}

func TestRemove(t *testing.T) {
	store := newStore(t)
	path := filepath.Join(store.Root, "uploads", "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, store.Remove("/uploads/doc.pdf"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove("/uploads/doc.pdf"), "already gone is fine")
	assert.ErrorIs(t, store.Remove("/private/doc.pdf"), utils.ErrInvalidName)
}

func TestSplitURL(t *testing.T) {
	folder, name, ok := utils.SplitURL("/bannerimages/1-abc.png")
	assert.True(t, ok)
	assert.Equal(t, "bannerimages", folder)
	assert.Equal(t, "1-abc.png", name)

	for _, url := range []string{"", "/", "/bannerimages", "/other/x.png", "/uploads/a/b.png", "/uploads/.."} {
		_, _, ok := utils.SplitURL(url)
		assert.False(t, ok, url)
	}
}

func TestUploadKey(t *testing.T) {
	cases := map[string]string{
		"/uploads/a.pdf":     "uploads/a.pdf",
		"uploads/a.pdf":      "uploads/a.pdf",
		"./uploads/a.pdf":    "uploads/a.pdf",
		`uploads\a.pdf`:      "uploads/a.pdf",
		"/homebanners/b.png": "homebanners/b.png",
		" uploads/a b.pdf ":  "uploads/a b.pdf",
	}
	for in, want := range cases {
		assert.Equal(t, want, utils.UploadKey(in), in)
	}
}
