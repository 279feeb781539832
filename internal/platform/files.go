package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/translateai/translateai-desktop/internal/model"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// Documents directory names
const (
	DocumentsDirName       = "Documents"
	AndroidDocumentsDir    = "/sdcard/Documents"
	AndroidLibraryBasename = "libdist.so" // Fyne Android apps run as libdist.so
)

// AcceptedExtensions is the picker hint. It is advisory: the upload handler
// never rejects a file because of its extension.
var AcceptedExtensions = []string{".pdf", ".doc", ".docx"}

// AcceptFilter returns the file dialog filter for supported documents
func AcceptFilter() storage.FileFilter {
	return storage.NewExtensionFileFilter(AcceptedExtensions)
}

// IsAcceptedExtension reports whether name carries one of the hinted extensions
func IsAcceptedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

// DisplayName extracts the file name from a path, supporting both / and \ separators
func DisplayName(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// SelectedFileFromURI builds a SelectedFile from a picked or dropped URI
func SelectedFileFromURI(uri fyne.URI) model.SelectedFile {
	name := uri.Name()
	if name == "" {
		name = DisplayName(uri.Path())
	}
	return model.SelectedFile{
		Name:       name,
		URI:        uri.String(),
		SelectedAt: time.Now(),
	}
}

// SelectedFilesFromURIs converts dropped URIs, skipping nil entries
func SelectedFilesFromURIs(uris []fyne.URI) []model.SelectedFile {
	files := make([]model.SelectedFile, 0, len(uris))
	for _, uri := range uris {
		if uri == nil {
			continue
		}
		files = append(files, SelectedFileFromURI(uri))
	}
	return files
}

// SelectedFilesFromReader handles the file dialog result. A nil reader means
// the user cancelled and yields an empty selection. Only the name is used, so
// the reader is closed right away.
func SelectedFilesFromReader(reader fyne.URIReadCloser) ([]model.SelectedFile, error) {
	if reader == nil {
		return nil, nil
	}

	file := SelectedFileFromURI(reader.URI())
	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", file.Name, err)
	}
	return []model.SelectedFile{file}, nil
}

// IsAndroid reports whether the app runs on Android
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == AndroidLibraryBasename
}

// GetHomeDocumentsDir returns the directory the file picker starts in
func GetHomeDocumentsDir() (string, error) {
	if IsAndroid() {
		return AndroidDocumentsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DocumentsDirName), nil
}

// StartLocation returns a listable URI for the picker, or nil if the documents
// directory is not available
func StartLocation() fyne.ListableURI {
	dir, err := GetHomeDocumentsDir()
	if err != nil {
		return nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}

	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return nil
	}
	return lister
}
