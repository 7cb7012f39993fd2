package cv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"code.sajari.com/docconv"
)

const (
	defaultOCRDPI     = 300
	defaultOCRTimeout = 2 * time.Minute
)

// PopplerOCR rasterizes PDF pages with pdftoppm and reads each page image
// through docconv's tesseract binding. docconv must be built with the
// "ocr" tag for recognition to succeed; otherwise every call fails and
// the extractor degrades to empty text.
type PopplerOCR struct {
	DPI     int
	Timeout time.Duration
	Binary  string
}

func NewPopplerOCR(dpi int, timeout time.Duration) *PopplerOCR {
	if dpi <= 0 {
		dpi = defaultOCRDPI
	}
	if timeout <= 0 {
		timeout = defaultOCRTimeout
	}
	return &PopplerOCR{DPI: dpi, Timeout: timeout, Binary: "pdftoppm"}
}

func (o *PopplerOCR) RecognizePDF(ctx context.Context, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "cv-ocr-*")
	if err != nil {
		return "", &OCRError{Step: "tempdir", Cause: err}
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(input, data, 0o600); err != nil {
		return "", &OCRError{Step: "write", Cause: err}
	}

	prefix := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, o.Binary, "-r", fmt.Sprint(o.DPI), "-png", input, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", &OCRError{Step: "rasterize", Cause: fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))}
	}

	images, err := filepath.Glob(prefix + "*.png")
	if err != nil {
		return "", &OCRError{Step: "glob", Cause: err}
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(images)

	chunks := make([]string, 0, len(images))
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return "", &OCRError{Step: "recognize", Cause: err}
		}
		text, err := recognizeImage(img)
		if err != nil {
			return "", &OCRError{Step: "recognize", Cause: err}
		}
		chunks = append(chunks, text)
	}
	return strings.TrimSpace(strings.Join(chunks, "\n")), nil
}

func recognizeImage(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, _, err := docconv.ConvertImage(f)
	return text, err
}
