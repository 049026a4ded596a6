package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract extracts text from screenshots via the system tesseract engine.
type Tesseract struct{}

func NewTesseract() *Tesseract {
	return &Tesseract{}
}

// ExtractText runs OCR on the image at path. A fresh client per call: the
// gosseract client is not safe for reuse across images with different
// settings and OCR is nowhere near the bottleneck here.
func (t *Tesseract) ExtractText(imagePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("loading image %s: %w", imagePath, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("running ocr on %s: %w", imagePath, err)
	}
	return text, nil
}
