package core

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/helixnav/pathlens/internal/config"
	"github.com/helixnav/pathlens/internal/core/cluster"
	"github.com/helixnav/pathlens/internal/core/model"
	"github.com/helixnav/pathlens/internal/core/pipeline"
	"github.com/helixnav/pathlens/internal/driver"
)

// Published is the normalized result handed to consumers: the displayable
// graph, ranked reasoning paths, warnings, and cluster groupings for layout.
type Published struct {
	SnapshotID string                `json:"snapshotId"`
	ComputedAt time.Time             `json:"computedAt"`
	Graph      model.Graph           `json:"graph"`
	Paths      []model.ReasoningPath `json:"reasoningPaths"`
	Warnings   []model.Warning       `json:"warnings"`
	Clusters   [][]string            `json:"clusters,omitempty"`
}

// Engine hosts the pipeline for in-process consumers. It holds the published
// result of the most recent snapshot; a newer snapshot replaces it wholesale
// (last-write-wins), never incrementally. The pipeline itself is pure; all
// state lives here.
type Engine struct {
	Driver   driver.GraphDriver // optional; nil disables persistence
	Config   *config.Config
	Detector cluster.Detector

	mu     sync.RWMutex
	latest *Published
}

func NewEngine(d driver.GraphDriver, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{
		Driver:   d,
		Config:   cfg,
		Detector: cluster.NewComponentDetector(),
	}
}

// Ingest normalizes a raw snapshot and publishes the result atomically.
// Persistence failures are logged and do not fail the ingest; the published
// in-memory result is the source of truth for the renderer.
func (e *Engine) Ingest(ctx context.Context, snapshot model.RawSnapshot) (*Published, error) {
	result := pipeline.Normalize(snapshot, e.Config.Taxonomy, e.Config.Ranking)

	pub := &Published{
		SnapshotID: uuid.New().String(),
		ComputedAt: time.Now().UTC(),
		Graph:      result.Graph,
		Paths:      result.Paths,
		Warnings:   result.Warnings,
	}

	if e.Detector != nil {
		clusters, err := e.Detector.Detect(result.Graph.Nodes, result.Graph.Edges)
		if err != nil {
			log.Printf("Failed to cluster snapshot %s: %v", pub.SnapshotID, err)
		}
		for _, c := range clusters {
			ids := make([]string, len(c))
			for i, n := range c {
				ids[i] = n.ID
			}
			pub.Clusters = append(pub.Clusters, ids)
		}
	}

	if e.Driver != nil {
		if err := e.persist(ctx, pub); err != nil {
			log.Printf("Failed to persist snapshot %s: %v", pub.SnapshotID, err)
		}
	}

	e.mu.Lock()
	e.latest = pub
	e.mu.Unlock()

	return pub, nil
}

// Latest returns the most recently published result, or nil before the first
// ingest.
func (e *Engine) Latest() *Published {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.latest
}

func (e *Engine) BuildIndices(ctx context.Context) error {
	if e.Driver == nil {
		return nil
	}
	return e.Driver.BuildIndices(ctx)
}

func (e *Engine) persist(ctx context.Context, pub *Published) error {
	for _, n := range pub.Graph.Nodes {
		params := map[string]interface{}{
			"id":            n.ID,
			"snapshot_id":   pub.SnapshotID,
			"label":         n.Label,
			"type":          string(n.Type),
			"is_comparator": n.IsComparator(),
		}
		if _, err := e.Driver.ExecuteQuery(ctx, driver.SaveNodeQuery, params); err != nil {
			return err
		}
	}

	for _, edge := range pub.Graph.Edges {
		params := map[string]interface{}{
			"snapshot_id":  pub.SnapshotID,
			"source":       edge.Source,
			"target":       edge.Target,
			"relationship": string(edge.Relationship),
			"weight":       edge.Weight,
		}
		if _, err := e.Driver.ExecuteQuery(ctx, driver.SaveEdgeQuery, params); err != nil {
			return err
		}
	}

	for _, p := range pub.Paths {
		params := map[string]interface{}{
			"id":               p.ID,
			"snapshot_id":      pub.SnapshotID,
			"nodes":            p.Nodes,
			"confidence_score": p.ConfidenceScore,
			"source_count":     p.SourceCount,
		}
		if _, err := e.Driver.ExecuteQuery(ctx, driver.SavePathQuery, params); err != nil {
			return err
		}
	}

	return nil
}
