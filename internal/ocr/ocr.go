// Package ocr defines the optical character recognition capability consumed
// by the PDF extractor. The engine is treated as a black box: one binarized
// image in, recognized text out.
package ocr

import "context"

// Request encapsulates a single image submitted for recognition.
type Request struct {
	// Image is the encoded (PNG) image payload.
	Image []byte
	// Languages lists the Tesseract language hints (e.g. "rus", "eng").
	Languages []string
	// PageSegMode selects the page segmentation mode; 6 treats the image as
	// a single uniform block of text.
	PageSegMode int
}

// Engine is the OCR provider contract: one image in, one text out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, req Request) (string, error)
}
