package security

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// FileValidationResult contains the result of resume file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed resume types
// Maps lowercase extension to possible magic byte prefixes
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                 // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},        // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                 // ZIP (PK..)
	".txt":  {},                                                         // Text files have no magic bytes - rely on MIME detection
}

// Allowed resume extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// Strict MIME types - DO NOT include application/octet-stream
var strictMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	// ZIP-based documents (DOCX detection fallback)
	"application/zip": true,
}

// ValidateResume performs 3-layer validation on an uploaded resume:
// 1. Extension whitelist check
// 2. Magic byte verification (content matches extension)
// 3. MIME type whitelist (application/octet-stream REJECTED)
func ValidateResume(filename string, data []byte, detectedMIME string) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: detectedMIME,
	}

	// Sanitize and extract extension
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	// Layer 1: Extension whitelist
	if !allowedExtensions[ext] {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	// Layer 2: Magic byte validation (skip for text files)
	if ext != ".txt" {
		if !validateMagicBytes(ext, data) {
			result.Error = "file content does not match extension (potential file spoofing detected)"
			return result
		}
	}

	// Layer 3: MIME type whitelist
	// application/octet-stream would allow arbitrary binary uploads
	if detectedMIME == "application/octet-stream" {
		// .doc/.docx are sometimes detected as octet-stream; magic bytes
		// above already confirmed the content, so let them through
		if ext != ".docx" && ext != ".doc" {
			result.Error = "binary files not allowed; file type could not be determined"
			return result
		}
	} else if detectedMIME != "" && !strictMIMETypes[normalizeMIME(detectedMIME)] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false // Unknown extension
	}

	// Empty signatures array = no magic bytes to check (e.g., txt)
	if len(signatures) == 0 {
		return true
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}

// normalizeMIME strips parameters like "; charset=utf-8" before whitelist lookup
func normalizeMIME(mime string) string {
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return strings.TrimSpace(strings.ToLower(mime))
}

// ValidateResumeExtension checks only the extension (for quick pre-validation)
func ValidateResumeExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if !allowedExtensions[ext] {
		return errors.New("file extension not allowed: " + ext)
	}
	return nil
}

// AllowedResumeExtensions returns the allowed extensions for error messages
func AllowedResumeExtensions() []string {
	extensions := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		extensions = append(extensions, ext)
	}
	return extensions
}
