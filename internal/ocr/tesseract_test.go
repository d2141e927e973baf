package ocr

import (
	"context"
	"testing"
)

func TestRecognizeHonorsContext(t *testing.T) {
	eng := NewTesseract(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := eng.Recognize(ctx, Request{Image: []byte{1}}); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestName(t *testing.T) {
	if got := NewTesseract(Config{}).Name(); got != "tesseract" {
		t.Errorf("Name = %q", got)
	}
}
