package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	// Static assets (CSS, post images).
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(s.Config.StaticDir))))

	r.HandleFunc("/", s.Index).Methods(http.MethodGet)
	r.HandleFunc("/post/{slug}", s.PostDetail).Methods(http.MethodGet)
	r.HandleFunc("/category/{name}", s.CategoryPage).Methods(http.MethodGet)
	r.HandleFunc("/tag/{name}", s.TagPage).Methods(http.MethodGet)
	r.HandleFunc("/about", s.About).Methods(http.MethodGet)
	r.HandleFunc("/contact", s.Contact).Methods(http.MethodGet)
	r.HandleFunc("/feed", s.RSS).Methods(http.MethodGet)
	r.HandleFunc("/sitemap.xml", s.Sitemap).Methods(http.MethodGet)

	r.HandleFunc("/admin", s.AdminDashboard).Methods(http.MethodGet)
	r.HandleFunc("/admin/new_post", s.AdminNewPost).Methods(http.MethodGet, http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(s.NotFound)
	return r
}
