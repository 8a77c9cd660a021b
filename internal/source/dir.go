package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pointview/internal/cloud"
)

// Dir reads the same layout as HTTP from a local directory, so exported
// backend output can be viewed without a running server.
type Dir struct {
	Root string
}

func (d Dir) Points(ctx context.Context, name cloud.ShapeName) ([]cloud.Point, error) {
	var pts []cloud.Point
	if err := d.readJSON(ctx, pointsPath(name), &pts); err != nil {
		return nil, err
	}
	return pts, nil
}

func (d Dir) Stats(ctx context.Context, name cloud.ShapeName) (cloud.ShapeStats, error) {
	var st cloud.ShapeStats
	if err := d.readJSON(ctx, statsPath(name), &st); err != nil {
		return cloud.ShapeStats{}, err
	}
	return st, nil
}

func (d Dir) readJSON(ctx context.Context, rel string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(filepath.Join(d.Root, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := decodeStrict(f, v); err != nil {
		return fmt.Errorf("%s: %w", rel, err)
	}
	return nil
}
