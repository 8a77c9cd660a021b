// Package store keeps the viewer session and the single live point cloud.
package store

import (
	"context"
	"log/slog"

	"pointview/internal/cloud"
	"pointview/internal/scene"
	"pointview/internal/source"
)

const (
	PointSize    = 0.05
	PointOpacity = 0.8
)

// Session is what the control panel shows.
type Session struct {
	Selected cloud.ShapeName
	Loading  bool
	Err      error
	// Stats belong to the last successful load; nil before the first one.
	Stats *cloud.ShapeStats
}

// Request identifies one load. Only the most recent request may change the
// session; older ones that finish late are dropped.
type Request struct {
	Seq   uint64
	Shape cloud.ShapeName
}

// Result is the outcome of fetching a Request.
type Result struct {
	Request
	Snapshot source.Snapshot
	Err      error
}

type Store struct {
	scene *scene.Scene
	src   source.Source
	log   *slog.Logger

	session Session
	seq     uint64
}

func New(sc *scene.Scene, src source.Source, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{scene: sc, src: src, log: log}
}

func (s *Store) Session() Session { return s.session }

// Current returns the live render object, or nil.
func (s *Store) Current() *scene.PointCloud { return s.scene.Cloud() }

// Begin marks the session loading for name and returns its request.
func (s *Store) Begin(name cloud.ShapeName) Request {
	s.seq++
	s.session.Selected = name
	s.session.Loading = true
	s.session.Err = nil
	s.log.Info("load shape", "shape", name, "seq", s.seq)
	return Request{Seq: s.seq, Shape: name}
}

// Fetch reads the request's resources. It does not touch the session and
// may run off the event loop.
func (s *Store) Fetch(ctx context.Context, req Request) Result {
	snap, err := source.Fetch(ctx, s.src, req.Shape)
	return Result{Request: req, Snapshot: snap, Err: err}
}

// Complete applies a result. It reports false for a superseded request,
// which leaves the session untouched.
func (s *Store) Complete(res Result) bool {
	if res.Seq != s.seq {
		s.log.Debug("drop stale load", "shape", res.Shape, "seq", res.Seq, "latest", s.seq)
		return false
	}
	defer s.finish(res.Request)
	if res.Err != nil {
		s.session.Err = res.Err
		s.log.Error("load failed", "shape", res.Shape, "err", res.Err)
		return true
	}
	st := res.Snapshot.Stats
	s.session.Stats = &st
	s.scene.Replace(s.build(res.Shape, res.Snapshot.Points))
	s.log.Info("shape loaded", "shape", res.Shape, "points", len(res.Snapshot.Points))
	return true
}

// LoadShape runs a whole load synchronously. The loading flag is cleared
// on every exit path.
func (s *Store) LoadShape(ctx context.Context, name cloud.ShapeName) error {
	req := s.Begin(name)
	defer s.finish(req)
	res := s.Fetch(ctx, req)
	s.Complete(res)
	return res.Err
}

func (s *Store) finish(req Request) {
	if req.Seq == s.seq {
		s.session.Loading = false
	}
}

func (s *Store) build(name cloud.ShapeName, pts []cloud.Point) *scene.PointCloud {
	res := s.scene.Resources
	return &scene.PointCloud{
		Name:     string(name),
		Geometry: res.NewGeometry(cloud.Flatten(pts)),
		Material: res.NewMaterial(cloud.Color(name), PointSize, PointOpacity),
	}
}
