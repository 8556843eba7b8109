// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the pipeline and post store over HTTP. The two
// core operations are generate and reprocess; everything else is post
// management for the edit workflow.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/blogsmith/internal/pipeline"
	"github.com/pdiddy/blogsmith/internal/postprocess"
	"github.com/pdiddy/blogsmith/pkg/types"
)

// Generator runs one pipeline per call. Satisfied by
// *pipeline.Orchestrator; tests supply a stub.
type Generator interface {
	Generate(ctx context.Context, req types.GenerationRequest) (*types.PublishedArtifact, error)
}

// PostStore persists artifacts. Satisfied by *storage.Store.
type PostStore interface {
	Save(artifact *types.PublishedArtifact) error
	Update(artifact *types.PublishedArtifact) error
	Load(slug string) (*types.PublishedArtifact, error)
	List() ([]types.ArtifactMeta, error)
	Delete(slug string) error
}

// Server wires the HTTP handlers to the pipeline and store.
type Server struct {
	generator Generator
	store     PostStore
	ppConfig  types.PostProcessConfig
}

// New builds a Server.
func New(generator Generator, store PostStore, ppConfig types.PostProcessConfig) *Server {
	return &Server{generator: generator, store: store, ppConfig: ppConfig}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/posts", s.generatePost)
	api.GET("/posts", s.listPosts)
	api.GET("/posts/:slug", s.getPost)
	api.PUT("/posts/:slug", s.editPost)
	api.DELETE("/posts/:slug", s.deletePost)
	api.POST("/reprocess", s.reprocessPreview)

	return r
}

// generatePost runs the full pipeline and saves the artifact. A fatal stage
// failure names the stage and saves nothing.
func (s *Server) generatePost(c *gin.Context) {
	var payload GeneratePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req, err := payload.toRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := s.generator.Generate(c.Request.Context(), req)
	if err != nil {
		var stageErr *pipeline.StageError
		switch {
		case errors.As(err, &stageErr):
			slog.Error("generation failed", "stage", stageErr.Stage, "error", stageErr.Err)
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "generation failed; no post was saved",
				"stage": stageErr.Stage,
			})
		case errors.Is(err, postprocess.ErrPostProcessing):
			slog.Error("post-processing failed", "error", err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	if err := s.store.Save(artifact); err != nil {
		slog.Error("saving post", "slug", artifact.Meta.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save post"})
		return
	}

	slog.Info("post generated", "slug", artifact.Meta.Slug, "title", artifact.Meta.Title)
	c.JSON(http.StatusCreated, toPostResponse(artifact))
}

func (s *Server) listPosts(c *gin.Context) {
	metas, err := s.store.List()
	if err != nil {
		slog.Error("listing posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list posts"})
		return
	}
	summaries := make([]PostSummary, 0, len(metas))
	for _, meta := range metas {
		summaries = append(summaries, toSummary(meta))
	}
	c.JSON(http.StatusOK, gin.H{"posts": summaries, "total": len(summaries)})
}

func (s *Server) getPost(c *gin.Context) {
	artifact, err := s.store.Load(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, toPostResponse(artifact))
}

// editPost reprocesses edited Markdown under the existing slug and rewrites
// that slug's files.
func (s *Server) editPost(c *gin.Context) {
	slug := c.Param("slug")

	var payload EditPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := s.store.Load(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	artifact, err := postprocess.Reprocess(payload.Markdown, postprocess.MetaOverrides{
		Title:       payload.Title,
		Slug:        slug,
		Description: payload.Description,
		Keywords:    payload.Keywords,
	}, postprocess.Options{Config: s.ppConfig, Now: time.Now()})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	artifact.Meta.RunID = existing.Meta.RunID
	artifact.Meta.CreatedAt = existing.Meta.CreatedAt
	artifact.Meta.Unverified = existing.Meta.Unverified

	if err := s.store.Update(artifact); err != nil {
		slog.Error("updating post", "slug", slug, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	slog.Info("post updated", "slug", slug)
	c.JSON(http.StatusOK, toPostResponse(artifact))
}

func (s *Server) deletePost(c *gin.Context) {
	slug := c.Param("slug")
	if err := s.store.Delete(slug); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	slog.Info("post deleted", "slug", slug)
	c.Status(http.StatusNoContent)
}

// reprocessPreview runs post-processing over submitted text without saving.
func (s *Server) reprocessPreview(c *gin.Context) {
	var payload ReprocessPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := postprocess.Reprocess(payload.Markdown, postprocess.MetaOverrides{
		Title:       payload.Title,
		Description: payload.Description,
		Keywords:    payload.Keywords,
	}, postprocess.Options{Config: s.ppConfig, Now: time.Now()})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPostResponse(artifact))
}
