// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main contains the HTTP route handlers. Routes come in two
// groups: the service-level endpoints at the root (liveness and info) and
// the video API under /api/v1 (metadata, processing, summarization, job
// cleanup, and a fixed smoke test).
package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ytprod/video-summary/internal/core/model"
	"github.com/ytprod/video-summary/internal/summarize"
)

// Version is the service version reported by the root and info endpoints.
const Version = "1.0.0"

// SmokeTestURL is the known public video the test endpoint processes.
const SmokeTestURL = "https://www.youtube.com/watch?v=jNQXAC9IVRw"

// videoRequest is the body for the metadata and process endpoints. The
// summarize flag only has an effect on the process endpoint.
type videoRequest struct {
	YoutubeURL string `json:"youtube_url" binding:"required"`
	Summarize  bool   `json:"summarize"`
}

// summarizeRequest is the body for the summarize endpoint.
type summarizeRequest struct {
	Text string `json:"text" binding:"required"`
	TopK int    `json:"top_k"`
}

// abortWithError maps a failure onto the HTTP status contract: recognized
// processing errors are client-correctable and yield a 400, anything else
// is a 500 carrying the raw message.
func abortWithError(c *gin.Context, err error) {
	if pe, ok := model.AsProcessingError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": pe.Error(), "kind": string(pe.Kind)})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ServiceRouter registers the root-level service endpoints.
func ServiceRouter(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": state.config.Application.Name,
			"version": Version,
			"status":  "running",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"app":                 state.config.Application.Name,
			"version":             Version,
			"environment":         state.config.Application.Environment,
			"database_configured": state.config.Application.DatabaseURL != "",
			"features": []string{
				"YouTube video processing",
				"Transcript extraction",
				"AI-powered summarization",
				"Keyword extraction",
			},
		})
	})
}

// VideoRouter registers the video API endpoints under the given group.
func VideoRouter(r *gin.RouterGroup) {
	// Handler for POST /metadata
	r.POST("/metadata", func(c *gin.Context) {
		var req videoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		metadata, err := state.ytdlp.FetchMetadata(c.Request.Context(), req.YoutubeURL)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, metadata)
	})

	// Handler for POST /process
	r.POST("/process", func(c *gin.Context) {
		var req videoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		jobID := uuid.NewString()
		result, err := state.workflow.Run(c.Request.Context(), req.YoutubeURL, jobID, req.Summarize)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	})

	// Handler for POST /summarize
	r.POST("/summarize", func(c *gin.Context) {
		var req summarizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if state.summarizer == nil {
			abortWithError(c, model.Errorf(model.ErrNoBackendAvailable,
				"no summarization backend available: configure an API key or a local model endpoint"))
			return
		}
		result, err := state.summarizer.ProcessText(c.Request.Context(), req.Text)
		if err != nil {
			abortWithError(c, err)
			return
		}
		// A per-request keyword count overrides the configured default.
		if req.TopK > 0 {
			result.Keywords = summarize.ExtractKeywords(req.Text, req.TopK)
		}
		c.JSON(http.StatusOK, result)
	})

	// Handler for DELETE /jobs/:job_id
	r.DELETE("/jobs/:job_id", func(c *gin.Context) {
		jobID := c.Param("job_id")
		if err := state.workspaces.Cleanup(jobID); err != nil {
			slog.Error("workspace cleanup failed", "job_id", jobID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"job_id": jobID, "status": "cleaned"})
	})

	// Handler for GET /test
	r.GET("/test", func(c *gin.Context) {
		jobID := uuid.NewString()
		result, err := state.workflow.Run(c.Request.Context(), SmokeTestURL, jobID, false)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	})
}
