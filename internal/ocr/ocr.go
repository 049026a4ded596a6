package ocr

// TextExtractor maps a saved screenshot to its extracted text. Best-effort:
// implementations return empty text rather than failing the pipeline.
type TextExtractor interface {
	ExtractText(imagePath string) (string, error)
}
