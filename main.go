package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nvr-ai/go-filters/filters"
	"github.com/nvr-ai/go-filters/images"
	"github.com/nvr-ai/go-filters/pipeline"
	"github.com/nvr-ai/go-filters/profiler"
	"github.com/nvr-ai/go-filters/util"
	"github.com/pkg/errors"
)

const (
	// DefaultOutputDir is where directory batches are written when -output-dir is unset.
	DefaultOutputDir = "filtered"
	// DefaultOutputSuffix is appended to the input name when -output is unset.
	DefaultOutputSuffix = "_filtered"
)

// InputType represents the type of input being processed
type InputType int

const (
	InputImage InputType = iota
	InputDirectory
)

// InputConfig holds the input configuration
type InputConfig struct {
	Type InputType
	Path string
}

// Options holds everything parsed from the command line.
type Options struct {
	Image        string
	Dir          string
	Output       string
	OutputDir    string
	Grayscale    bool
	Brightness   int
	PipelinePath string
	Preview      string
	Quality      int
	Workers      int
	Profile      bool
	Verbose      bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.Image, "image", "", "Path to image file (.jpg, .jpeg, .png, .bmp, .tif, .tiff, .webp)")
	flag.StringVar(&opts.Dir, "dir", "", "Directory of images to process")
	flag.StringVar(&opts.Output, "output", "", "Output file for -image (default: <name>"+DefaultOutputSuffix+"<ext>)")
	flag.StringVar(&opts.OutputDir, "output-dir", DefaultOutputDir, "Output directory for -dir")
	flag.BoolVar(&opts.Grayscale, "grayscale", false, "Apply the grayscale filter")
	flag.IntVar(&opts.Brightness, "brightness", 0, "Brightness offset added to every channel (saturates at 0 and 255)")
	flag.StringVar(&opts.PipelinePath, "pipeline", "", "YAML or JSON pipeline file; overrides -grayscale and -brightness")
	flag.StringVar(&opts.Preview, "preview", "", "Fit output inside WxH (e.g. 800x600) or a preset (vga, 720p, 1080p, ...), downscaling only")
	flag.IntVar(&opts.Quality, "quality", images.DefaultJPEGQuality, "JPEG/WebP quality (1-100)")
	flag.IntVar(&opts.Workers, "workers", 0, "Filter goroutines (0: one per CPU, 1: sequential)")
	flag.BoolVar(&opts.Profile, "profile", false, "Print per-operation timings")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// run executes one CLI invocation.
func run(opts Options) error {
	if opts.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		images.SetLogger(logger)
		pipeline.SetLogger(logger)
	}

	input, err := validateInputFlags(opts.Image, opts.Dir)
	if err != nil {
		return err
	}
	if input.Type == InputDirectory {
		if err := validateOutputDir(input.Path, opts.OutputDir); err != nil {
			return err
		}
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	previewW, previewH, err := parsePreview(opts.Preview)
	if err != nil {
		return err
	}

	tracker := profiler.NewTracker()
	pipeOpts := []pipeline.Option{pipeline.WithTracker(tracker)}
	if opts.Workers > 0 {
		pipeOpts = append(pipeOpts, pipeline.WithFilterOptions(filters.WithWorkers(opts.Workers)))
	}
	p, err := pipeline.New(cfg, pipeOpts...)
	if err != nil {
		return err
	}

	proc := &processor{
		pipeline: p,
		tracker:  tracker,
		encode:   images.EncodeOptions{Quality: opts.Quality},
		previewW: previewW,
		previewH: previewH,
	}

	switch input.Type {
	case InputImage:
		out := opts.Output
		if out == "" {
			out = defaultOutputPath(input.Path)
		}
		err = proc.processFile(input.Path, out)
	case InputDirectory:
		err = proc.processDirectory(input.Path, opts.OutputDir)
	}
	if err != nil {
		return err
	}

	if opts.Profile {
		return tracker.Report(os.Stdout)
	}
	return nil
}

// processor applies one pipeline to every input.
type processor struct {
	pipeline *pipeline.Pipeline
	tracker  *profiler.Tracker
	encode   images.EncodeOptions
	previewW int
	previewH int
}

// processFile loads, filters, optionally fits and saves a single image.
func (p *processor) processFile(in, out string) error {
	done := p.tracker.StartOperation("load")
	frame, err := images.Load(in)
	done()
	if err != nil {
		return err
	}
	return p.processFrame(frame, in, out)
}

// processDirectory filters every supported image in dir into outDir, keeping names.
func (p *processor) processDirectory(dir, outDir string) error {
	files, err := util.LoadDirectoryImageFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.Errorf("no supported images in %s", dir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", outDir)
	}

	for _, f := range files {
		done := p.tracker.StartOperation("load")
		frame, err := images.Decode(bytes.NewReader(f.Data))
		done()
		if err != nil {
			return errors.Wrapf(err, "failed to decode %s", f.Path)
		}
		if err := p.processFrame(frame, f.Path, filepath.Join(outDir, f.Name)); err != nil {
			return err
		}
	}
	log.Printf("Processed %d images from %s into %s", len(files), dir, outDir)
	return nil
}

func (p *processor) processFrame(frame *images.Frame, in, out string) error {
	before := images.Checksum(frame.Pix)
	if err := p.pipeline.RunFrame(frame); err != nil {
		return errors.Wrapf(err, "failed to filter %s", in)
	}
	changed := before != images.Checksum(frame.Pix)

	if p.previewW > 0 {
		done := p.tracker.StartOperation("preview")
		frame = images.Fit(frame, p.previewW, p.previewH)
		done()
	}

	done := p.tracker.StartOperation("save")
	err := images.Save(out, frame, p.encode)
	done()
	if err != nil {
		return err
	}

	log.Printf("%s -> %s (%dx%d, changed=%t)", in, out, frame.Width, frame.Height, changed)
	return nil
}

// validateInputFlags validates the input flags and returns the input configuration
func validateInputFlags(imagePath, dirPath string) (*InputConfig, error) {
	if imagePath != "" && dirPath != "" {
		return nil, errors.New("cannot specify both -image and -dir")
	}
	if imagePath == "" && dirPath == "" {
		return nil, errors.New("one of -image or -dir is required")
	}

	if dirPath != "" {
		info, err := os.Stat(dirPath)
		if err != nil {
			return nil, errors.Wrap(err, "directory validation error")
		}
		if !info.IsDir() {
			return nil, errors.Errorf("not a directory: %s", dirPath)
		}
		return &InputConfig{Type: InputDirectory, Path: dirPath}, nil
	}

	if err := validateFile(imagePath); err != nil {
		return nil, errors.Wrap(err, "image validation error")
	}
	return &InputConfig{Type: InputImage, Path: imagePath}, nil
}

// validateOutputDir rejects an output directory that resolves to the input
// directory, which would overwrite the source images.
func validateOutputDir(dir, outDir string) error {
	in, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", dir)
	}
	out, err := filepath.Abs(outDir)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", outDir)
	}
	if resolved, err := filepath.EvalSymlinks(in); err == nil {
		in = resolved
	}
	if resolved, err := filepath.EvalSymlinks(out); err == nil {
		out = resolved
	}
	if in == out {
		return errors.Errorf("-output-dir %s is the input directory %s", outDir, dir)
	}
	return nil
}

// validateFile checks if the file exists and has a supported extension
func validateFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return errors.Wrapf(err, "file not found: %s", filePath)
	}
	if !images.IsSupportedPath(filePath) {
		return errors.Wrapf(images.ErrUnsupportedFormat, "file %s", filePath)
	}
	return nil
}

// buildConfig returns the pipeline file's config, or one built from the
// -grayscale and -brightness flags with grayscale first.
func buildConfig(opts Options) (*pipeline.Config, error) {
	if opts.PipelinePath != "" {
		return pipeline.LoadConfig(opts.PipelinePath)
	}

	cfg := &pipeline.Config{Name: "cli"}
	if opts.Grayscale {
		cfg.Steps = append(cfg.Steps, pipeline.Step{Op: pipeline.OpGrayscale})
	}
	if opts.Brightness != 0 {
		cfg.Steps = append(cfg.Steps, pipeline.Step{Op: pipeline.OpBrightness, Factor: opts.Brightness})
	}
	if len(cfg.Steps) == 0 {
		return nil, errors.New("nothing to do: set -grayscale, -brightness or -pipeline")
	}
	return cfg, nil
}

// parsePreview parses "WxH" or a preset name such as "720p". An empty
// string disables previews.
func parsePreview(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	if r, ok := images.LookupResolution(s); ok {
		return r.Width, r.Height, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, errors.Errorf("invalid -preview %q, want WxH", s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, errors.Errorf("invalid -preview %q, want positive WxH", s)
	}
	return w, h, nil
}

// defaultOutputPath turns dir/name.ext into dir/name_filtered.ext.
func defaultOutputPath(in string) string {
	ext := filepath.Ext(in)
	return fmt.Sprintf("%s%s%s", strings.TrimSuffix(in, ext), DefaultOutputSuffix, ext)
}
