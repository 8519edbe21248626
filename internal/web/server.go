package web

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Nishanth262/portfolio/internal/content"
	"github.com/Nishanth262/portfolio/internal/sections"
)

// Options tune the router. Zero values pick the host clock and a stderr logger.
type Options struct {
	Clock          sections.Clock
	Logger         *log.Logger
	TrustedProxies []string
}

// NewRouter wires every page, fragment and API route over repo.
func NewRouter(repo content.Repository, opts Options) (*gin.Engine, error) {
	if opts.Clock == nil {
		opts.Clock = sections.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "[portfolio] ", log.LstdFlags)
	}

	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	hasher, err := newVisitorHasher()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("setting trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), requestID(), accessLog(opts.Logger, hasher))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(staticFiles()))

	h := &handler{repo: repo, clock: opts.Clock, logger: opts.Logger}

	// Full page
	r.GET("/", h.index)

	// HTMX fragments
	r.GET("/sections/experience", h.experienceFragment)
	r.GET("/sections/projects", h.projectsFragment)
	r.GET("/sections/footer", h.footerFragment)

	// JSON API
	api := r.Group("/api")
	api.GET("/experience", h.listExperience)
	api.GET("/education", h.getEducation)
	api.GET("/projects", h.listProjects)
	api.GET("/projects/:id", h.getProject)
	api.GET("/categories", h.listCategories)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, nil
}
