package main

import (
	"log"
	"net/http"
	"path/filepath"

	"fashionblog/internal/blog"
	"fashionblog/internal/config"
	"fashionblog/internal/web"
)

func main() {
	cfg := config.Load()

	store, err := blog.NewMemoryStoreFromFile(filepath.Join(cfg.DataDir, "posts.json"))
	if err != nil {
		log.Fatal(err)
	}

	site, err := blog.NewSiteStore(filepath.Join(cfg.DataDir, "site.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer(cfg, store, site)

	log.Printf("Server listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, server.Routes()))
}
