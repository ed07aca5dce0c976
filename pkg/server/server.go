// Package server exposes the classification pipeline over HTTP: a minimal
// web form for interactive use and a JSON API for programmatic callers.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolbeans/aiact/pkg/pipeline"
	"github.com/coolbeans/aiact/pkg/taxonomy"
)

// MinDescriptionLength is the form-level minimum for useful descriptions.
// The classification core itself accepts any length; this guard only keeps
// the web form from producing meaningless assessments.
const MinDescriptionLength = 50

// Server serves the classification web form and JSON API.
type Server struct {
	pipeline *pipeline.Pipeline
}

// New creates a server over the given pipeline.
func New(pl *pipeline.Pipeline) *Server {
	return &Server{pipeline: pl}
}

// Router builds the gin router with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.GET("/", s.handleForm)
	router.POST("/api/classify", s.handleClassify)
	router.GET("/api/taxonomies", s.handleTaxonomies)

	return router
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) handleForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(formPage))
}

func (s *Server) handleClassify(c *gin.Context) {
	var req pipeline.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Description) < MinDescriptionLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "please provide a more detailed description (at least 50 characters)",
		})
		return
	}

	rep := s.pipeline.Run(c.Request.Context(), req)
	c.JSON(http.StatusOK, rep)
}

// handleTaxonomies lists the fixed high-risk context and data taxonomies as
// reference material for form users.
func (s *Server) handleTaxonomies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"high_risk_contexts": taxonomy.RiskContexts.Labels(),
		"data_types":         taxonomy.DataTypes.Labels(),
		"sectors":            taxonomy.Sectors.Labels(),
	})
}
