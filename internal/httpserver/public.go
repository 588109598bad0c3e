package httpserver

import (
	"net/http"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/i18n"
	"portfolio-site/internal/icons"

	"github.com/gin-gonic/gin"
)

type linkView struct {
	domain.Link
	Glyph icons.Icon `json:"icon_glyph"`
}

type experienceView struct {
	domain.Experience
	Glyph icons.Icon `json:"icon_glyph"`
}

type projectLinkView struct {
	domain.ProjectLink
	Glyph icons.Icon `json:"icon_glyph"`
}

type projectView struct {
	domain.Project
	Links []projectLinkView `json:"links"`
}

func (h *handler) presentLinks(items []domain.Link) any {
	out := make([]linkView, len(items))
	for i, l := range items {
		out[i] = linkView{Link: l, Glyph: h.icons.Resolve(l.Icon)}
	}
	return out
}

func (h *handler) presentExperiences(items []domain.Experience) any {
	out := make([]experienceView, len(items))
	for i, e := range items {
		out[i] = experienceView{Experience: e, Glyph: h.icons.Resolve(e.Icon)}
	}
	return out
}

func (h *handler) presentProjects(items []domain.Project) any {
	out := make([]projectView, len(items))
	for i, p := range items {
		links := make([]projectLinkView, len(p.Links))
		for j, l := range p.Links {
			links[j] = projectLinkView{ProjectLink: l, Glyph: h.icons.Resolve(l.Icon)}
		}
		out[i] = projectView{Project: p, Links: links}
	}
	return out
}

func (h *handler) getProfile(c *gin.Context) {
	if h.deps.Profile == nil {
		h.abort(c, http.StatusNotFound, i18n.NotFound)
		return
	}
	c.JSON(http.StatusOK, h.deps.Profile)
}

func (h *handler) getTech(c *gin.Context) {
	if h.deps.Profile == nil {
		h.abort(c, http.StatusNotFound, i18n.NotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.deps.Profile.Tech(c.Query("category"))})
}

func (h *handler) getIcons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"project_links": h.icons.ProjectLinkOptions(),
		"lucide":        h.icons.LucideNames(),
	})
}
