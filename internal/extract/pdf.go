package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"sort"
	"strings"

	_ "image/jpeg"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	_ "golang.org/x/image/tiff"

	"github.com/hrkit/resume-pipeline/internal/common"
	"github.com/hrkit/resume-pipeline/internal/imgprep"
	"github.com/hrkit/resume-pipeline/internal/ocr"
)

// rowTolerance groups positional text fragments whose vertical positions
// differ by less than this many points into the same line.
const rowTolerance = 2.0

// extractPDF recovers text from a PDF: positional text blocks in reading
// order first, then OCR output for every embedded raster image, page by page.
func (e *Extractor) extractPDF(ctx context.Context, path string) (text string, err error) {
	// The underlying parsers panic on some malformed inputs; keep the
	// per-file contract by converting those into processing errors.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: pdf parse panic: %v", common.ErrProcessing, r)
		}
	}()

	f, r, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %v", common.ErrDecode, err)
	}
	defer f.Close()

	var images map[int][]image.Image
	if e.ocr != nil {
		images, err = pageImages(path)
		if err != nil {
			return "", fmt.Errorf("%w: enumerate images: %v", common.ErrProcessing, err)
		}
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		p := r.Page(pageNum)
		if p.V.IsNull() {
			continue
		}
		writeBlocks(&b, p.Content().Text)

		for _, img := range images[pageNum] {
			ocrText, err := e.ocrImage(ctx, img)
			if err != nil {
				return "", fmt.Errorf("%w: ocr page %d: %v", common.ErrProcessing, pageNum, err)
			}
			if ocrText != "" {
				b.WriteString(ocrText)
				b.WriteByte('\n')
			}
		}
	}
	return b.String(), nil
}

// writeBlocks emits positional text fragments sorted top-to-bottom then
// left-to-right, approximating natural reading order. PDF y-coordinates grow
// upwards, so higher y comes first.
func writeBlocks(b *strings.Builder, texts []pdflib.Text) {
	if len(texts) == 0 {
		return
	}
	sorted := make([]pdflib.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].Y-sorted[j].Y) > rowTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	lastY := sorted[0].Y
	lineStart := b.Len()
	for _, t := range sorted {
		if t.S == "" {
			continue
		}
		if math.Abs(t.Y-lastY) > rowTolerance {
			if b.Len() > lineStart {
				b.WriteByte('\n')
				lineStart = b.Len()
			}
			lastY = t.Y
		}
		b.WriteString(t.S)
	}
	if b.Len() > lineStart {
		b.WriteByte('\n')
	}
}

// pageImages decodes every embedded raster image, keyed by 1-based page
// number. Images that cannot be decoded are skipped.
func pageImages(path string) (map[int][]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	images := make(map[int][]image.Image)
	digest := func(img model.Image, singleImgPerPage bool, maxPageDigits int) error {
		decoded, _, err := image.Decode(img)
		if err != nil {
			return nil
		}
		images[img.PageNr] = append(images[img.PageNr], decoded)
		return nil
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ExtractImages(f, nil, digest, conf); err != nil {
		return nil, err
	}
	return images, nil
}

// ocrImage runs one embedded image through the enhancement chain and the OCR
// engine: grayscale, deskew/denoise/contrast/upscale, Otsu binarize, recognize.
func (e *Extractor) ocrImage(ctx context.Context, img image.Image) (string, error) {
	gray := imgprep.ToGray(img)
	gray = imgprep.Enhance(gray, e.cfg.ScaleFactor)
	gray = imgprep.Binarize(gray)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	return e.ocr.Recognize(ctx, ocr.Request{
		Image:       buf.Bytes(),
		Languages:   e.cfg.OCRLanguages,
		PageSegMode: e.cfg.PageSegMode,
	})
}
