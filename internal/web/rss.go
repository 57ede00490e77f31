package web

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
)

func (s *Server) RSS(w http.ResponseWriter, r *http.Request) {
	profile := s.Site.Get()
	siteURL := s.Config.SiteBaseURL

	feed := &feeds.Feed{
		Title:       profile.Title,
		Link:        &feeds.Link{Href: siteURL},
		Description: profile.Tagline,
		Author:      &feeds.Author{Name: profile.Title, Email: profile.Email},
		Created:     time.Now(),
	}

	posts := s.Store.List()
	if len(posts) > 20 {
		posts = posts[:20]
	}

	for _, post := range posts {
		created, _ := time.Parse("2006-01-02", post.Date)
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       post.Title,
			Link:        &feeds.Link{Href: siteURL + "/post/" + post.Slug},
			Description: excerpt(post.Content, 160),
			Created:     created,
			Content:     renderMarkdown(post.Content),
		})
	}

	w.Header().Set("Content-Type", "application/xml")
	if err := feed.WriteRss(w); err != nil {
		log.Printf("RSS error: %v", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
	}
}
