package file

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadSentencesSkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentences.txt")
	content := "John saw the dog\n\n# a comment\n  \nMary left\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	sentences, err := ReadSentences(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[0] != "John saw the dog" || sentences[1] != "Mary left" {
		t.Errorf("unexpected sentences: %v", sentences)
	}
}

func TestReadSentencesMissingFile(t *testing.T) {
	if _, err := ReadSentences(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
