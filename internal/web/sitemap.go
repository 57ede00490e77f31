package web

import (
	"encoding/xml"
	"net/http"
	"net/url"
)

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type URLSet struct {
	XMLName xml.Name `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []URL    `xml:"url"`
}

func (s *Server) Sitemap(w http.ResponseWriter, r *http.Request) {
	baseURL := s.Config.SiteBaseURL
	profile := s.Site.Get()

	var urls []URL

	urls = append(urls, URL{
		Loc:        baseURL + "/",
		ChangeFreq: "daily",
		Priority:   "1.0",
	})
	urls = append(urls, URL{Loc: baseURL + "/about", Priority: "0.5"})
	urls = append(urls, URL{Loc: baseURL + "/contact", Priority: "0.5"})

	for _, post := range s.Store.List() {
		urls = append(urls, URL{
			Loc:        baseURL + "/post/" + post.Slug,
			LastMod:    post.Date,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	for _, category := range profile.Categories {
		urls = append(urls, URL{
			Loc:      baseURL + "/category/" + url.PathEscape(category),
			Priority: "0.6",
		})
	}
	for _, tag := range profile.Tags {
		urls = append(urls, URL{
			Loc:      baseURL + "/tag/" + url.PathEscape(tag),
			Priority: "0.4",
		})
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(URLSet{URLs: urls}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
