package generator

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/javagen/inspector/graph"
	"github.com/viant/javagen/inspector/java"
	"github.com/viant/javagen/javafile"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"runtime"
	"strings"
)

// Status describes the outcome for one file.
type Status string

const (
	// Written means the file was created or replaced.
	Written Status = "written"
	// Unchanged means the stored content already matched.
	Unchanged Status = "unchanged"
	// Stale means the stored content differs from the rendered content.
	Stale Status = "stale"
	// Missing means no file is stored at the destination.
	Missing Status = "missing"
)

// Result reports what happened to one file.
type Result struct {
	Path        string
	URL         string
	Fingerprint uint64
	Status      Status
}

// Generator renders files, optionally verifies the output parses as Java, and stores it with afs.
type Generator struct {
	fs        afs.Service
	assembler *javafile.Assembler
	inspector *java.Inspector
	logger    *zap.Logger
	verify    bool
	workers   int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger, also passed to the assembler.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithFS sets the storage service.
func WithFS(fs afs.Service) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithVerification re-parses every rendered file and fails on syntax errors.
func WithVerification(verify bool) Option {
	return func(g *Generator) {
		g.verify = verify
	}
}

// WithWorkers bounds the number of files rendered concurrently.
func WithWorkers(workers int) Option {
	return func(g *Generator) {
		if workers > 0 {
			g.workers = workers
		}
	}
}

// New creates a generator.
func New(options ...Option) *Generator {
	ret := &Generator{logger: zap.NewNop(), workers: runtime.NumCPU(), inspector: java.NewInspector()}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	ret.assembler = javafile.NewAssembler(javafile.WithLogger(ret.logger))
	return ret
}

// Render returns the source text of file, verified when verification is enabled.
func (g *Generator) Render(aFile *javafile.File) (string, error) {
	text, err := g.assembler.Assemble(aFile)
	if err != nil {
		return "", errors.Wrapf(err, "failed to render %s", aFile.Path())
	}
	if g.verify {
		if err = g.inspector.Validate([]byte(text)); err != nil {
			return "", errors.Wrapf(err, "rendered %s", aFile.Path())
		}
	}
	return text, nil
}

type rendered struct {
	path        string
	text        string
	fingerprint uint64
}

// renderAll renders files concurrently, keeping the input order.
func (g *Generator) renderAll(ctx context.Context, files []*javafile.File) ([]*rendered, error) {
	ret := make([]*rendered, len(files))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(g.workers)
	for i, aFile := range files {
		i, aFile := i, aFile
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Wrapf(err, "render %s", aFile.Path())
			}
			text, err := g.Render(aFile)
			if err != nil {
				return err
			}
			fingerprint, err := graph.HashText(text)
			if err != nil {
				return err
			}
			ret[i] = &rendered{path: aFile.Path(), text: text, fingerprint: fingerprint}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

// compare reports the status of the stored copy of r.
func (g *Generator) compare(ctx context.Context, destURL string, r *rendered) (Status, error) {
	exists, err := g.fs.Exists(ctx, destURL)
	if err != nil {
		return "", errors.Wrapf(err, "failed to check %s", destURL)
	}
	if !exists {
		return Missing, nil
	}
	stored, err := g.fs.DownloadWithURL(ctx, destURL)
	if err != nil {
		return "", errors.Wrapf(err, "failed to download %s", destURL)
	}
	fingerprint, err := graph.Hash(stored)
	if err != nil {
		return "", err
	}
	if fingerprint == r.fingerprint {
		return Unchanged, nil
	}
	return Stale, nil
}

// Store renders files and uploads them under baseURL, skipping files whose stored content
// already matches.
func (g *Generator) Store(ctx context.Context, baseURL string, files ...*javafile.File) ([]*Result, error) {
	outputs, err := g.renderAll(ctx, files)
	if err != nil {
		return nil, err
	}
	var results []*Result
	for _, output := range outputs {
		destURL := url.Join(baseURL, output.path)
		status, err := g.compare(ctx, destURL, output)
		if err != nil {
			return nil, err
		}
		if status != Unchanged {
			if err = g.fs.Upload(ctx, destURL, file.DefaultFileOsMode, strings.NewReader(output.text)); err != nil {
				return nil, errors.Wrapf(err, "failed to store %s", destURL)
			}
			status = Written
		}
		g.logger.Info("stored", zap.String("url", destURL), zap.String("status", string(status)),
			zap.String("fingerprint", graph.FormatFingerprint(output.fingerprint)))
		results = append(results, &Result{Path: output.path, URL: destURL, Fingerprint: output.fingerprint, Status: status})
	}
	return results, nil
}

// Check renders files and compares them with the copies stored under baseURL without writing.
func (g *Generator) Check(ctx context.Context, baseURL string, files ...*javafile.File) ([]*Result, error) {
	outputs, err := g.renderAll(ctx, files)
	if err != nil {
		return nil, err
	}
	var results []*Result
	for _, output := range outputs {
		destURL := url.Join(baseURL, output.path)
		status, err := g.compare(ctx, destURL, output)
		if err != nil {
			return nil, err
		}
		g.logger.Debug("checked", zap.String("url", destURL), zap.String("status", string(status)))
		results = append(results, &Result{Path: output.path, URL: destURL, Fingerprint: output.fingerprint, Status: status})
	}
	return results, nil
}

// UpToDate reports whether every result is unchanged.
func UpToDate(results []*Result) bool {
	for _, result := range results {
		if result.Status != Unchanged {
			return false
		}
	}
	return true
}
