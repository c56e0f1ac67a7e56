package backend

import (
	"context"
	"path/filepath"
	"strings"

	"pdf-backend-bench/internal/domain"
	"pdf-backend-bench/internal/runner"
)

// image formats pdfalto is known to emit into its output directory
var pdfaltoImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".ppm":  true,
	".pbm":  true,
}

// Pdfalto wraps the pdfalto layout-analysis tool. Text extraction is a
// two-stage pipeline: pdfalto emits ALTO XML on stdout, then an XSL
// transform flattens the XML to plain text. Image extraction harvests the
// files pdfalto writes next to its output prefix.
type Pdfalto struct {
	runner         *runner.Runner
	path           string
	xsltprocPath   string
	altoStylesheet string
	logger         domain.Logger
}

// Compile-time interface assertions
var (
	_ domain.TextExtractor  = (*Pdfalto)(nil)
	_ domain.ImageExtractor = (*Pdfalto)(nil)
)

// NewPdfalto creates the pdfalto adapter. All tool locations are injected
// configuration.
func NewPdfalto(r *runner.Runner, path, xsltprocPath, altoStylesheet string, logger domain.Logger) *Pdfalto {
	return &Pdfalto{
		runner:         r,
		path:           path,
		xsltprocPath:   xsltprocPath,
		altoStylesheet: altoStylesheet,
		logger:         logger,
	}
}

func (p *Pdfalto) Descriptor() domain.Descriptor {
	return domain.Descriptor{
		Name: "pdfalto",
		Kind: domain.BackendKindExternal,
		Capabilities: []domain.Capability{
			domain.CapabilityText,
			domain.CapabilityImages,
		},
	}
}

// ExtractText runs the two-stage PDF -> ALTO XML -> text pipeline. A stage
// failure is fatal and identifies the failing stage.
func (p *Pdfalto) ExtractText(ctx context.Context, payload []byte) (string, error) {
	out, err := p.runner.RunPipeline(ctx, []runner.Command{
		{
			Path: p.path,
			Args: []string{"-noImageInline", "-fullFontName", "-noImage", "-readingOrder", runner.ArgInput, "-"},
		},
		{
			Path: p.xsltprocPath,
			Args: []string{p.altoStylesheet, runner.ArgInput},
		},
	}, payload)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ExtractImages runs pdfalto against an output prefix and harvests the
// image files it writes. Tool failures are contained and degrade to an
// empty list; only an unlocatable executable is fatal.
func (p *Pdfalto) ExtractImages(ctx context.Context, payload []byte) ([]domain.Image, error) {
	files, err := p.runner.RunIntoDir(ctx, runner.Command{
		Path: p.path,
		Args: []string{runner.ArgInput, runner.ArgOutputDir},
	}, payload)
	if err != nil {
		if domain.IsBackendUnavailable(err) {
			return nil, err
		}
		p.logger.Warn("pdfalto image extraction failed", "error", err)
		return []domain.Image{}, nil
	}

	images := make([]domain.Image, 0, len(files))
	for _, f := range files {
		if !pdfaltoImageExts[strings.ToLower(filepath.Ext(f.Name))] {
			continue
		}
		images = append(images, domain.Image{Name: f.Name, Data: f.Data})
	}
	return images, nil
}
