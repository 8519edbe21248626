package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nishanth262/portfolio/internal/content"
	"github.com/Nishanth262/portfolio/internal/sections"
)

type handler struct {
	repo   content.Repository
	clock  sections.Clock
	logger *log.Logger
}

// pageData is the root template context.
type pageData struct {
	Title      string
	Experience sections.ExperienceView
	Projects   sections.ProjectsView
	Footer     sections.FooterView
}

// filterParam returns the requested category, defaulting to "All".
func filterParam(c *gin.Context) string {
	if f := c.Query("filter"); f != "" {
		return f
	}
	return content.AllCategory
}

func (h *handler) experienceView(ctx context.Context) (sections.ExperienceView, error) {
	entries, err := h.repo.Experience(ctx)
	if err != nil {
		return sections.ExperienceView{}, err
	}
	edu, err := h.repo.Education(ctx)
	if err != nil {
		return sections.ExperienceView{}, err
	}
	return sections.NewExperienceSection(entries, edu).View(), nil
}

func (h *handler) projectsView(ctx context.Context, filter string) (sections.ProjectsView, error) {
	projects, err := h.repo.Projects(ctx)
	if err != nil {
		return sections.ProjectsView{}, err
	}
	categories, err := h.repo.Categories(ctx)
	if err != nil {
		return sections.ProjectsView{}, err
	}
	state := sections.NewProjectsState()
	state.SetFilter(filter)
	return sections.NewProjectsSection(projects, categories).View(state), nil
}

func (h *handler) footerView(ctx context.Context) (sections.FooterView, error) {
	profile, err := h.repo.Profile(ctx)
	if err != nil {
		return sections.FooterView{}, err
	}
	return sections.NewFooterSection(profile, h.clock).View(), nil
}

func (h *handler) renderError(c *gin.Context, what string, err error) {
	h.logger.Printf("Error loading %s: %v request_id=%s", what, err, c.GetString(requestIDKey))
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"error": "Sorry, this section could not be loaded. Please try again later.",
	})
}

func (h *handler) jsonError(c *gin.Context, what string, err error) {
	h.logger.Printf("Error loading %s: %v request_id=%s", what, err, c.GetString(requestIDKey))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load " + what})
}

func (h *handler) index(c *gin.Context) {
	ctx := c.Request.Context()

	experience, err := h.experienceView(ctx)
	if err != nil {
		h.renderError(c, "experience", err)
		return
	}
	projects, err := h.projectsView(ctx, filterParam(c))
	if err != nil {
		h.renderError(c, "projects", err)
		return
	}
	footer, err := h.footerView(ctx)
	if err != nil {
		h.renderError(c, "footer", err)
		return
	}

	c.HTML(http.StatusOK, "index.html", pageData{
		Title:      footer.Name + " | Portfolio",
		Experience: experience,
		Projects:   projects,
		Footer:     footer,
	})
}

func (h *handler) experienceFragment(c *gin.Context) {
	view, err := h.experienceView(c.Request.Context())
	if err != nil {
		h.renderError(c, "experience", err)
		return
	}
	c.HTML(http.StatusOK, "experience.html", view)
}

func (h *handler) projectsFragment(c *gin.Context) {
	view, err := h.projectsView(c.Request.Context(), filterParam(c))
	if err != nil {
		h.renderError(c, "projects", err)
		return
	}
	c.HTML(http.StatusOK, "projects.html", view)
}

func (h *handler) footerFragment(c *gin.Context) {
	view, err := h.footerView(c.Request.Context())
	if err != nil {
		h.renderError(c, "footer", err)
		return
	}
	c.HTML(http.StatusOK, "footer.html", view)
}

func (h *handler) listExperience(c *gin.Context) {
	entries, err := h.repo.Experience(c.Request.Context())
	if err != nil {
		h.jsonError(c, "experience", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *handler) getEducation(c *gin.Context) {
	edu, err := h.repo.Education(c.Request.Context())
	if err != nil {
		h.jsonError(c, "education", err)
		return
	}
	c.JSON(http.StatusOK, edu)
}

func (h *handler) listProjects(c *gin.Context) {
	projects, err := h.repo.Projects(c.Request.Context())
	if err != nil {
		h.jsonError(c, "projects", err)
		return
	}
	c.JSON(http.StatusOK, sections.Filter(projects, filterParam(c)))
}

func (h *handler) getProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := content.ProjectByID(c.Request.Context(), h.repo, id)
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		h.jsonError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *handler) listCategories(c *gin.Context) {
	categories, err := h.repo.Categories(c.Request.Context())
	if err != nil {
		h.jsonError(c, "categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
