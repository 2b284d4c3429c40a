package utils

import (
	"strings"
	"testing"
)

func TestGenerateStoredName(t *testing.T) {
	first := GenerateStoredName("thesis draft.PDF")
	second := GenerateStoredName("thesis draft.PDF")

	if first == second {
		t.Error("stored names must not collide")
	}
	if !strings.HasSuffix(first, ".pdf") {
		t.Errorf("stored name %q should keep a lowercased extension", first)
	}
	if strings.Contains(first, " ") {
		t.Errorf("stored name %q should not contain spaces", first)
	}
}

func TestDocumentMimeAllowlist(t *testing.T) {
	allowed := []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/pdf; charset=binary",
		"Application/PDF",
	}
	for _, mime := range allowed {
		if !IsAllowedDocumentType(mime) {
			t.Errorf("IsAllowedDocumentType(%q) = false, want true", mime)
		}
	}

	denied := []string{"image/png", "application/x-msdownload", "text/html", ""}
	for _, mime := range denied {
		if IsAllowedDocumentType(mime) {
			t.Errorf("IsAllowedDocumentType(%q) = true, want false", mime)
		}
	}
}

func TestDatasetMimeAllowlistIncludesDocuments(t *testing.T) {
	for _, mime := range []string{"text/csv", "application/zip", "application/pdf"} {
		if !IsAllowedDatasetType(mime) {
			t.Errorf("IsAllowedDatasetType(%q) = false, want true", mime)
		}
	}
	if IsAllowedDatasetType("video/mp4") {
		t.Error("video should not pass the dataset allowlist")
	}
}

func TestVideoAllowlistRejectsAudio(t *testing.T) {
	if !IsAllowedVideoType("video/mp4") {
		t.Error("video/mp4 should be allowed")
	}
	if IsAllowedVideoType("audio/mpeg") {
		t.Error("audio should not pass the video allowlist")
	}
	if IsAllowedVideoType("image/png") {
		t.Error("images should not pass the video allowlist")
	}
}
