// Package source reads precomputed shape data from the backend that produces
// it. Two read-only resources exist per shape: its points and its stats.
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"pointview/internal/cloud"
)

// UserMessage is shown whenever a load fails, whatever the cause.
const UserMessage = "Failed to load shape data. Make sure the backend server is running."

// ErrLoadFailure is the only error kind a load can produce.
var ErrLoadFailure = errors.New("load failure")

// LoadError records which resource of which shape could not be read.
type LoadError struct {
	Shape    cloud.ShapeName
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Shape, e.Resource, e.Err)
}

func (e *LoadError) Unwrap() []error { return []error{ErrLoadFailure, e.Err} }

// Source serves the two resources of a shape.
type Source interface {
	Points(ctx context.Context, name cloud.ShapeName) ([]cloud.Point, error)
	Stats(ctx context.Context, name cloud.ShapeName) (cloud.ShapeStats, error)
}

// Snapshot is one shape's points and stats, read together.
type Snapshot struct {
	Shape  cloud.ShapeName
	Points []cloud.Point
	Stats  cloud.ShapeStats
}

// Fetch reads both resources concurrently and returns once both are done.
// Any failure yields a *LoadError matching ErrLoadFailure.
func Fetch(ctx context.Context, src Source, name cloud.ShapeName) (Snapshot, error) {
	snap := Snapshot{Shape: name}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pts, err := src.Points(gctx, name)
		if err != nil {
			return asLoadError(name, "points", err)
		}
		snap.Points = pts
		return nil
	})
	g.Go(func() error {
		st, err := src.Stats(gctx, name)
		if err != nil {
			return asLoadError(name, "stats", err)
		}
		if err := st.Validate(); err != nil {
			return asLoadError(name, "stats", err)
		}
		snap.Stats = st
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func asLoadError(name cloud.ShapeName, resource string, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		return le
	}
	return &LoadError{Shape: name, Resource: resource, Err: err}
}

func pointsPath(name cloud.ShapeName) string { return "shapes/" + string(name) + ".points.json" }
func statsPath(name cloud.ShapeName) string  { return "shapes/" + string(name) + ".stats.json" }

// Open picks a Source for base: an http(s) URL or a local directory,
// optionally written as a file:// URL.
func Open(base string) Source {
	switch {
	case strings.HasPrefix(base, "http://"), strings.HasPrefix(base, "https://"):
		return NewHTTP(base)
	case strings.HasPrefix(base, "file://"):
		return Dir{Root: strings.TrimPrefix(base, "file://")}
	default:
		return Dir{Root: base}
	}
}
