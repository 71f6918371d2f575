// Package filehandler provides carrier file helpers: format detection and
// size-limited read/write. The codec core never touches the filesystem;
// everything that does lives here or in cmd.
package filehandler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize caps how much carrier data is loaded into memory.
const MaxFileSize = 100 * 1024 * 1024 // 100MB

// SupportedFormats maps file extensions to their format names.
var SupportedFormats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
	".wav":  "wav",
}

// DetectFormat detects the format of a carrier file, first by extension and
// then by content sniffing.
func DetectFormat(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if format, ok := SupportedFormats[ext]; ok {
		return format, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Read first 512 bytes to detect content type
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	buffer = buffer[:n]

	// RIFF/WAVE is not covered by http.DetectContentType's image sniffers.
	if len(buffer) >= 12 && bytes.Equal(buffer[0:4], []byte("RIFF")) &&
		bytes.Equal(buffer[8:12], []byte("WAVE")) {
		return "wav", nil
	}

	contentType := http.DetectContentType(buffer)
	switch {
	case strings.Contains(contentType, "image/png"):
		return "png", nil
	case strings.Contains(contentType, "image/jpeg"):
		return "jpeg", nil
	case strings.Contains(contentType, "image/gif"):
		return "gif", nil
	case strings.Contains(contentType, "image/bmp"):
		return "bmp", nil
	case strings.Contains(contentType, "image/tiff"):
		return "tiff", nil
	case strings.Contains(contentType, "audio/wave"):
		return "wav", nil
	default:
		return "", fmt.Errorf("unrecognized file format: %s", contentType)
	}
}

// ReadFileBytes reads a file and returns its content as a byte array.
func ReadFileBytes(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	size := info.Size()
	if size > MaxFileSize {
		return nil, fmt.Errorf("file too large (max 100MB)")
	}

	content := make([]byte, size)
	if _, err := io.ReadFull(file, content); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return content, nil
}

// SaveFile saves data to a file, creating parent directories as needed.
func SaveFile(data []byte, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// ReplaceExt swaps the extension of path for the one matching format.
func ReplaceExt(path, format string) string {
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + ext
}
