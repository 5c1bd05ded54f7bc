package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/helixnav/pathlens/internal/config"
	"github.com/helixnav/pathlens/internal/core"
	"github.com/helixnav/pathlens/internal/core/model"
	"github.com/helixnav/pathlens/internal/core/taxonomy"
	"github.com/helixnav/pathlens/internal/driver"
	"github.com/helixnav/pathlens/internal/llm"
)

type Server struct {
	Engine    *core.Engine
	Suggester *taxonomy.Suggester // nil when no LLM provider is configured
}

// NewServer wires the engine from config and environment. Memgraph and the
// LLM provider are both optional collaborators; the pipeline works without
// either.
func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s (%v), using default taxonomy", cfgPath, err)
		cfg = config.Default()
	}

	if uri := os.Getenv("MEMGRAPH_URI"); uri != "" {
		cfg.Memgraph.URI = uri
	}
	if user := os.Getenv("MEMGRAPH_USER"); user != "" {
		cfg.Memgraph.User = user
	}
	if pass := os.Getenv("MEMGRAPH_PASSWORD"); pass != "" {
		cfg.Memgraph.Password = pass
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = provider
	}
	if llmModel := os.Getenv("LLM_MODEL"); llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		cfg.LLM.BaseURL = baseURL
	}

	var graphDriver driver.GraphDriver
	if cfg.Memgraph.URI != "" {
		d, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			log.Fatalf("Failed to connect to Memgraph: %v", err)
		}
		graphDriver = d
	}

	engine := core.NewEngine(graphDriver, cfg)
	if err := engine.BuildIndices(context.Background()); err != nil {
		log.Printf("Failed to build indices: %v", err)
	}

	srv := &Server{Engine: engine}

	if cfg.LLM.Provider != "" {
		llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Printf("LLM client unavailable (%v), taxonomy suggestions disabled", err)
		} else {
			srv.Suggester = taxonomy.NewSuggester(llmClient)
		}
	}

	return srv
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/snapshots", s.IngestSnapshot)
	r.GET("/graph", s.GetGraph)
	r.GET("/paths", s.GetPaths)
	r.GET("/warnings", s.GetWarnings)
	r.POST("/taxonomy/suggest", s.SuggestSynonyms)

	return r
}

// IngestSnapshot accepts a raw snapshot from the fetch collaborator, runs
// normalization, and atomically replaces the published result.
func (s *Server) IngestSnapshot(c *gin.Context) {
	var snapshot model.RawSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid snapshot payload"})
		return
	}

	pub, err := s.Engine.Ingest(c.Request.Context(), snapshot)
	if err != nil {
		log.Printf("Failed to ingest snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process snapshot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshotId": pub.SnapshotID,
		"nodes":      len(pub.Graph.Nodes),
		"edges":      len(pub.Graph.Edges),
		"paths":      len(pub.Paths),
		"warnings":   len(pub.Warnings),
	})
}

func (s *Server) GetGraph(c *gin.Context) {
	pub := s.Engine.Latest()
	if pub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No snapshot ingested yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshotId": pub.SnapshotID,
		"computedAt": pub.ComputedAt,
		"nodes":      pub.Graph.Nodes,
		"edges":      pub.Graph.Edges,
		"clusters":   pub.Clusters,
	})
}

func (s *Server) GetPaths(c *gin.Context) {
	pub := s.Engine.Latest()
	if pub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No snapshot ingested yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshotId":     pub.SnapshotID,
		"reasoningPaths": pub.Paths,
	})
}

func (s *Server) GetWarnings(c *gin.Context) {
	pub := s.Engine.Latest()
	if pub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No snapshot ingested yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshotId": pub.SnapshotID,
		"warnings":   pub.Warnings,
	})
}

type SuggestRequest struct {
	Candidates []string `json:"candidates"`
	Canonical  []string `json:"canonical"`
}

// SuggestSynonyms proposes disease-label merges for curator review. The
// suggestions never feed the pipeline directly.
func (s *Server) SuggestSynonyms(c *gin.Context) {
	if s.Suggester == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No LLM provider configured"})
		return
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	pairs, err := s.Suggester.SuggestSynonyms(c.Request.Context(), req.Candidates, req.Canonical)
	if err != nil {
		log.Printf("Failed to suggest synonyms: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to suggest synonyms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"synonyms": pairs})
}
