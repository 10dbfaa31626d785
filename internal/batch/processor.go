// Package batch renders every pose of a catalog to image files.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"posefig/internal/catalog"
	"posefig/internal/figure"
	"posefig/internal/raster"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Format      raster.Format
	Renderer    *figure.Renderer
	Width       int
	Height      int
	Supersample int
	Workers     int
	// Progress is how often a progress line is logged; zero means 2s.
	Progress time.Duration
	Logger   *slog.Logger
}

// Result holds the outcome of rendering one pose.
type Result struct {
	ID          int
	Name        string
	Image       string // relative to OutputDir
	Illustrated bool
	Success     bool
	Error       string
}

// ImageName is the output file name for a pose id.
func ImageName(id int, f raster.Format) string {
	return strconv.Itoa(id) + "." + string(f)
}

// Run renders all poses using a worker pool. Results are in input order.
// Cancelling ctx stops handing out work; poses not started are reported
// with the context error.
func Run(ctx context.Context, cfg Config, poses []catalog.Pose) []Result {
	cfg.defaults()
	total := len(poses)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.Progress)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					cfg.Logger.Info("batch progress", "done", p, "total", total, "per_sec", fmt.Sprintf("%.1f", rate))
				}
			}
		}
	}()

	jobs := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processPose(cfg, poses[idx])
				processed.Add(1)
			}
		}()
	}

	next := 0
send:
	for ; next < total; next++ {
		select {
		case <-ctx.Done():
			break send
		case jobs <- next:
		}
	}
	close(jobs)
	wg.Wait()
	close(done)

	for i := next; i < total; i++ {
		results[i] = Result{ID: poses[i].ID, Name: poses[i].NameZH, Error: ctx.Err().Error()}
	}

	cfg.Logger.Debug("batch finished", "total", total, "elapsed", time.Since(start).Round(time.Millisecond))
	return results
}

func (c *Config) defaults() {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Progress <= 0 {
		c.Progress = 2 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Renderer == nil {
		c.Renderer = figure.NewRenderer(nil, figure.ScaleClip)
	}
	if c.Format == "" {
		c.Format = raster.FormatWebP
	}
	if c.Width <= 0 {
		c.Width = figure.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = figure.DefaultHeight
	}
}

func processPose(cfg Config, pose catalog.Pose) Result {
	res := Result{
		ID:    pose.ID,
		Name:  pose.NameZH,
		Image: ImageName(pose.ID, cfg.Format),
	}

	img, ok := raster.RenderPose(cfg.Renderer, pose.NameZH, raster.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
	})
	res.Illustrated = ok
	if !ok {
		cfg.Logger.Debug("no drawing for pose, using placeholder", "id", pose.ID, "name", pose.NameZH)
	}

	if err := raster.WriteFile(filepath.Join(cfg.OutputDir, res.Image), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}
