package sink

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of files written or read at once.
const DefaultConcurrency = 8

// File is one generated file.
type File struct {
	// Path is relative to the sink root, slash separated.
	Path    string
	Content []byte
}

// WriteAll writes every file to s, at most DefaultConcurrency at a time.
// Failures are collected into a *multierror.Error in file order; the
// other files are still written.
func WriteAll(ctx context.Context, s OutputSink, files []File) error {
	errs := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(DefaultConcurrency)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := s.WriteFile(ctx, f.Path, f.Content); err != nil {
				errs[i] = fmt.Errorf("%s: %w", f.Path, err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return collect(errs)
}

// DriftError reports a file whose content on disk differs from what would
// be generated, or that does not exist.
type DriftError struct {
	Path string
	// Diff is a line diff from the existing content (-) to the generated
	// content (+). It is empty when the file is missing.
	Diff    string
	Missing bool
}

func (e *DriftError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: missing", e.Path)
	}
	return fmt.Sprintf("%s: out of date:\n%s", e.Path, e.Diff)
}

// Verify compares each file with the content src holds for its path.
// Stale and missing files produce *DriftError values; read failures are
// returned as they are. All problems are collected into a
// *multierror.Error in file order. Verify returns nil if everything is up
// to date.
func Verify(ctx context.Context, src Source, files []File) error {
	errs := make([]error, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			existing, err := src.ReadFile(ctx, f.Path)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				errs[i] = &DriftError{Path: f.Path, Missing: true}
			case err != nil:
				errs[i] = fmt.Errorf("%s: %w", f.Path, err)
			default:
				if diff := Diff(existing, f.Content); diff != "" {
					errs[i] = &DriftError{Path: f.Path, Diff: diff}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return collect(errs)
}

// Diff returns a line diff from old to new, or "" if they are equal.
func Diff(old, new []byte) string {
	return cmp.Diff(strings.Split(string(old), "\n"), strings.Split(string(new), "\n"))
}

func collect(errs []error) error {
	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
