package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdf-backend-bench/internal/domain"
)

// Pdfcpu is the pure-Go engine adapter. It covers all three capabilities:
// text via content extraction, embedded image extraction, and watermark
// stamping. pdfcpu works on files, so every call round-trips through
// scoped temporary artifacts.
type Pdfcpu struct {
	tempDir string
	logger  domain.Logger
	conf    *model.Configuration
}

// Compile-time interface assertions
var (
	_ domain.TextExtractor  = (*Pdfcpu)(nil)
	_ domain.ImageExtractor = (*Pdfcpu)(nil)
	_ domain.Watermarker    = (*Pdfcpu)(nil)
)

// NewPdfcpu creates the pdfcpu-backed adapter.
func NewPdfcpu(tempDir string, logger domain.Logger) *Pdfcpu {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Pdfcpu{
		tempDir: tempDir,
		logger:  logger,
		conf:    conf,
	}
}

func (p *Pdfcpu) Descriptor() domain.Descriptor {
	return domain.Descriptor{
		Name: "pdfcpu",
		Kind: domain.BackendKindInProcess,
		Capabilities: []domain.Capability{
			domain.CapabilityText,
			domain.CapabilityImages,
			domain.CapabilityWatermark,
		},
	}
}

// ExtractText extracts per-page content streams and joins them in page
// order with a newline separator. Pages without recoverable content stay
// in place as empty entries. Engine failures are contained.
func (p *Pdfcpu) ExtractText(ctx context.Context, payload []byte) (string, error) {
	inFile, cleanup, err := p.writeTemp(payload)
	if err != nil {
		return "", err
	}
	defer cleanup()

	pdfCtx, err := api.ReadContextFile(inFile)
	if err != nil {
		p.logger.Warn("pdfcpu could not read document", "error", err)
		return "", nil
	}
	pageCount := pdfCtx.PageCount

	outDir, err := os.MkdirTemp(p.tempDir, "pdfcpu-content-")
	if err != nil {
		return "", fmt.Errorf("failed to create content directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	if err := api.ExtractContentFile(inFile, outDir, nil, p.conf); err != nil {
		p.logger.Warn("pdfcpu content extraction failed", "error", err)
		return "", nil
	}

	pageTexts := make(map[int]string, pageCount)
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return "", fmt.Errorf("failed to read content directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
		if err != nil {
			continue
		}
		// Content file names vary across pdfcpu versions but always carry
		// the page number.
		if pageNum := pageNumFromName(entry.Name()); pageNum > 0 {
			pageTexts[pageNum] = string(content)
		}
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		b.WriteString(pageTexts[pageNum])
		b.WriteString("\n")
	}
	return b.String(), nil
}

// pageNumFromName returns the last integer embedded in a content file name,
// or 0 when there is none.
func pageNumFromName(name string) int {
	num, cur := 0, 0
	inNum := false
	for _, r := range name {
		if r >= '0' && r <= '9' {
			cur = cur*10 + int(r-'0')
			inNum = true
			continue
		}
		if inNum {
			num = cur
		}
		cur = 0
		inNum = false
	}
	if inNum {
		num = cur
	}
	return num
}

// ExtractImages extracts embedded images into a scoped directory and
// returns them by file name; pdfcpu's naming carries page and object
// numbers plus the inferred extension. Failures degrade to an empty list.
func (p *Pdfcpu) ExtractImages(ctx context.Context, payload []byte) ([]domain.Image, error) {
	inFile, cleanup, err := p.writeTemp(payload)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	outDir, err := os.MkdirTemp(p.tempDir, "pdfcpu-images-")
	if err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	if err := api.ExtractImagesFile(inFile, outDir, nil, p.conf); err != nil {
		p.logger.Warn("pdfcpu image extraction failed", "error", err)
		return []domain.Image{}, nil
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	images := make([]domain.Image, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
		if err != nil {
			p.logger.Warn("pdfcpu could not read extracted image", "name", entry.Name(), "error", err)
			continue
		}
		images = append(images, domain.Image{Name: entry.Name(), Data: data})
	}
	sort.Slice(images, func(i, j int) bool { return images[i].Name < images[j].Name })
	return images, nil
}

// ApplyWatermark stamps page one of the watermark document onto every page
// of the target and returns the new PDF. Any failure is fatal: a corrupted
// artifact must not be downgraded to an empty result.
func (p *Pdfcpu) ApplyWatermark(ctx context.Context, watermark, payload []byte) ([]byte, error) {
	wmFile, wmCleanup, err := p.writeTemp(watermark)
	if err != nil {
		return nil, err
	}
	defer wmCleanup()

	inFile, inCleanup, err := p.writeTemp(payload)
	if err != nil {
		return nil, err
	}
	defer inCleanup()

	outFile, outCleanup, err := p.writeTemp(nil)
	if err != nil {
		return nil, err
	}
	defer outCleanup()

	// The watermark source is logically one page: page 1 of the overlay.
	wm, err := api.PDFWatermark(wmFile+":1", "scalefactor:1 abs, pos:c, rot:0", true, false, types.POINTS)
	if err != nil {
		return nil, &domain.MalformedDocumentError{Backend: "pdfcpu", Cause: err}
	}

	if err := api.AddWatermarksFile(inFile, outFile, nil, wm, p.conf); err != nil {
		return nil, &domain.MalformedDocumentError{Backend: "pdfcpu", Cause: err}
	}

	out, err := os.ReadFile(outFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read watermarked output: %w", err)
	}
	return out, nil
}

func (p *Pdfcpu) writeTemp(data []byte) (string, func(), error) {
	f, err := os.CreateTemp(p.tempDir, "pdfcpu-*.pdf")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	name := f.Name()
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		os.Remove(name)
		if werr != nil {
			return "", nil, fmt.Errorf("failed to write temp file: %w", werr)
		}
		return "", nil, fmt.Errorf("failed to close temp file: %w", cerr)
	}
	return name, func() { os.Remove(name) }, nil
}
