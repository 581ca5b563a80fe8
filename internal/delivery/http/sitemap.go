package http

import (
	"encoding/xml"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// urlSet is the sitemap.org urlset document.
type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// Sitemap serves the XML sitemap: the static pages plus one URL per catalog
// recipe. If the catalog is unavailable only the static pages are listed.
// GET /sitemap.xml
func (h *Handler) Sitemap(c *gin.Context) {
	now := time.Now().UTC().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: h.publicURL, LastMod: now, ChangeFreq: "daily", Priority: 1},
		{Loc: h.publicURL + "/home", LastMod: now, ChangeFreq: "daily", Priority: 0.9},
	}

	if h.service != nil {
		recipes, err := h.service.Recipes(c.Request.Context())
		if err != nil {
			log.Printf("[HTTP] sitemap catalog load failed, serving static routes only: %v", err)
		}
		for _, recipe := range recipes {
			urls = append(urls, sitemapURL{
				Loc:        fmt.Sprintf("%s/home/receitas/%d", h.publicURL, recipe.ID),
				LastMod:    now,
				ChangeFreq: "weekly",
				Priority:   0.8,
			})
		}
	}

	c.XML(http.StatusOK, urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}
