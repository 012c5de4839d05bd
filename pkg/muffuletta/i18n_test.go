package muffuletta

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCaptionDefaultsToEnglish(t *testing.T) {
	SetLocale("en")
	if got := captionContinue(); got != "Continue" {
		t.Errorf("captionContinue() = %q, want %q", got, "Continue")
	}
	if got := captionBack(); got != "Back" {
		t.Errorf("captionBack() = %q, want %q", got, "Back")
	}
}

func TestCaptionStepProgressTemplating(t *testing.T) {
	SetLocale("en")
	if got := captionStepProgress(2, 4); got != "Step 2 of 4" {
		t.Errorf("captionStepProgress(2, 4) = %q, want %q", got, "Step 2 of 4")
	}
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	SetLocale("xx")
	defer SetLocale("en")

	if got := captionFinish(); got != "Finish" {
		t.Errorf("captionFinish() = %q, want %q", got, "Finish")
	}
}

func TestLoadTranslationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "active.it.toml")
	content := "[Continue]\nother = \"Avanti\"\n\n[Back]\nother = \"Indietro\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadTranslationFile(path); err != nil {
		t.Fatalf("LoadTranslationFile() error = %v", err)
	}

	SetLocale("it")
	defer SetLocale("en")

	if got := captionContinue(); got != "Avanti" {
		t.Errorf("captionContinue() = %q, want %q", got, "Avanti")
	}
	if got := captionBack(); got != "Indietro" {
		t.Errorf("captionBack() = %q, want %q", got, "Indietro")
	}
}

func TestLoadTranslationFileMissing(t *testing.T) {
	err := LoadTranslationFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing translation file")
	}
	if !IsInfrastructureError(err) {
		t.Errorf("expected infrastructure error, got %v", err)
	}
}
