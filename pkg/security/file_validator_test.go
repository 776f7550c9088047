package security_test

import (
	"testing"

	"go-internship-backend/pkg/security"

	"github.com/stretchr/testify/assert"
)

func TestValidateResume(t *testing.T) {
	pdfBytes := append([]byte("%PDF-1.4"), make([]byte, 16)...)
	docxBytes := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 16)...)

	tests := []struct {
		name     string
		filename string
		data     []byte
		mime     string
		valid    bool
	}{
		{"valid pdf", "resume.pdf", pdfBytes, "application/pdf", true},
		{"valid docx as octet-stream", "resume.docx", docxBytes, "application/octet-stream", true},
		{"txt without magic bytes", "resume.txt", []byte("plain text resume"), "text/plain", true},
		{"disallowed extension", "resume.exe", pdfBytes, "application/pdf", false},
		{"no extension", "resume", pdfBytes, "application/pdf", false},
		{"spoofed pdf", "resume.pdf", []byte("MZ\x90\x00 not a pdf"), "application/pdf", false},
		{"octet-stream pdf rejected", "resume.pdf", pdfBytes, "application/octet-stream", false},
		{"mime with charset param", "resume.txt", []byte("plain text resume"), "text/plain; charset=utf-8", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := security.ValidateResume(tt.filename, tt.data, tt.mime)
			assert.Equal(t, tt.valid, result.Valid, result.Error)
		})
	}
}

func TestValidateResumeExtension(t *testing.T) {
	assert.NoError(t, security.ValidateResumeExtension("cv.pdf"))
	assert.NoError(t, security.ValidateResumeExtension("CV.DOCX"))
	assert.Error(t, security.ValidateResumeExtension("cv.png"))
	assert.Error(t, security.ValidateResumeExtension("cv"))
}
