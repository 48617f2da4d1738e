package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
)

// Job is one output file: Render writes its content.
type Job struct {
	Name   string // file name relative to the output directory
	Render func(w io.Writer) error
}

// PNGJob wraps a plot as a Job producing a DefaultSize PNG.
func PNGJob(name string, p *plot.Plot) Job {
	return Job{
		Name: name,
		Render: func(w io.Writer) error {
			return WritePNG(w, p, DefaultSize)
		},
	}
}

// HTMLJob wraps HeatmapHTML as a Job.
func HTMLJob(name string, values [][]float64, title string) Job {
	return Job{
		Name: name,
		Render: func(w io.Writer) error {
			return HeatmapHTML(w, values, title)
		},
	}
}

// SaveAll creates dir and writes every job to its own file concurrently.
// The first failure cancels jobs that have not started yet.
func SaveAll(ctx context.Context, dir string, jobs []Job) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeFile(filepath.Join(dir, job.Name), job.Render)
		})
	}
	return g.Wait()
}

func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := render(bw); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return bw.Flush()
}
