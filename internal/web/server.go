package web

import (
	"html/template"
	"sync"

	"fashionblog/internal/blog"
	"fashionblog/internal/config"
)

type Server struct {
	Config *config.Config
	Store  blog.Store
	Site   *blog.SiteStore

	// Guards TemplateCache: cache misses fill the map from concurrent
	// request goroutines.
	tmplMu        sync.RWMutex
	TemplateCache map[string]*template.Template
}

func NewServer(cfg *config.Config, store blog.Store, site *blog.SiteStore) *Server {
	return &Server{
		Config:        cfg,
		Store:         store,
		Site:          site,
		TemplateCache: make(map[string]*template.Template),
	}
}
