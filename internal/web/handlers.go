package web

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"fashionblog/internal/blog"

	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	data := s.baseData()
	data["Posts"] = s.Store.List()
	s.render(w, "index.html", data)
}

func (s *Server) PostDetail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, ok := s.Store.GetBySlug(slug)
	if !ok {
		s.NotFound(w, r)
		return
	}

	data := s.baseData()
	data["Post"] = post
	data["PostHTML"] = template.HTML(renderMarkdown(post.Content))
	data["Title"] = post.Title + " - " + data["Title"].(string)
	s.render(w, "post.html", data)
}

// CategoryPage lists every post filed under the category. An unknown
// category is not an error; the page simply has no posts.
func (s *Server) CategoryPage(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	data := s.baseData()
	data["Category"] = name
	data["Posts"] = s.Store.ListByCategory(name)
	s.render(w, "category.html", data)
}

func (s *Server) TagPage(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	data := s.baseData()
	data["Tag"] = name
	data["Posts"] = s.Store.ListByTag(name)
	s.render(w, "tag.html", data)
}

func (s *Server) About(w http.ResponseWriter, r *http.Request) {
	s.render(w, "about.html", s.baseData())
}

func (s *Server) Contact(w http.ResponseWriter, r *http.Request) {
	s.render(w, "contact.html", s.baseData())
}

func (s *Server) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	data := s.baseData()
	data["PostCount"] = len(s.Store.List())
	s.render(w, "admin_dashboard.html", data)
}

func (s *Server) AdminNewPost(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data := s.baseData()
		data["Post"] = blog.Post{}
		s.render(w, "admin_form.html", data)
	case http.MethodPost:
		post := parsePostForm(r)
		if post.Slug == "" {
			post.Slug = blog.Slugify(post.Title)
		}
		if post.Slug == "" {
			s.renderAdminFormError(w, "A title with letters or digits is required.", post)
			return
		}
		if post.Category != "" && !s.Site.Get().HasCategory(post.Category) {
			s.renderAdminFormError(w, "Unknown category: "+post.Category, post)
			return
		}
		if post.Date == "" {
			post.Date = time.Now().Format("2006-01-02")
		}
		if err := s.Store.Create(post); err != nil {
			if errors.Is(err, blog.ErrDuplicateSlug) {
				s.renderAdminFormError(w, "A post with this slug already exists.", post)
				return
			}
			s.renderAdminFormError(w, err.Error(), post)
			return
		}
		log.Printf("New post created: %s", post.Title)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	data := s.baseData()
	data["Path"] = r.URL.Path
	s.renderStatus(w, "404.html", data, http.StatusNotFound)
}

func parsePostForm(r *http.Request) blog.Post {
	_ = r.ParseForm()
	return blog.Post{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Slug:     strings.TrimSpace(r.FormValue("slug")),
		Content:  strings.TrimSpace(r.FormValue("content")),
		Image:    strings.TrimSpace(r.FormValue("image")),
		Category: strings.TrimSpace(r.FormValue("category")),
		Tags:     splitComma(r.FormValue("tags")),
	}
}

func (s *Server) renderAdminFormError(w http.ResponseWriter, msg string, post blog.Post) {
	data := s.baseData()
	data["Error"] = msg
	data["Post"] = post
	s.render(w, "admin_form.html", data)
}

func (s *Server) render(w http.ResponseWriter, page string, data map[string]any) {
	s.renderStatus(w, page, data, http.StatusOK)
}

func (s *Server) renderStatus(w http.ResponseWriter, page string, data map[string]any, status int) {
	t, err := s.templateFor(page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Render into a buffer first so a template error never leaks a half
	// page with the wrong status code.
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) templateFor(page string) (*template.Template, error) {
	s.tmplMu.RLock()
	t, ok := s.TemplateCache[page]
	s.tmplMu.RUnlock()
	if ok {
		return t, nil
	}

	files := []string{
		filepath.Join(s.Config.TemplateDir, "base.html"),
		filepath.Join(s.Config.TemplateDir, page),
	}

	t, err := template.New("").Funcs(template.FuncMap{
		"joinTags": func(tags []string) string {
			return strings.Join(tags, ", ")
		},
		"excerpt": excerpt,
	}).ParseFiles(files...)
	if err != nil {
		return nil, err
	}

	s.tmplMu.Lock()
	if s.TemplateCache == nil {
		s.TemplateCache = make(map[string]*template.Template)
	}
	s.TemplateCache[page] = t
	s.tmplMu.Unlock()
	return t, nil
}

func (s *Server) baseData() map[string]any {
	profile := s.Site.Get()
	return map[string]any{
		"Title":      profile.Title,
		"SiteName":   profile.Title,
		"Tagline":    profile.Tagline,
		"About":      profile.About,
		"Email":      profile.Email,
		"Categories": profile.Categories,
		"Tags":       profile.Tags,
		"SiteURL":    s.Config.SiteBaseURL,
	}
}

func renderMarkdown(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	var b strings.Builder
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	if err := md.Convert([]byte(input), &b); err != nil {
		return input
	}
	return b.String()
}

func excerpt(input string, n int) string {
	input = strings.TrimSpace(input)
	runes := []rune(input)
	if len(runes) <= n {
		return input
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}

func splitComma(input string) []string {
	parts := strings.Split(input, ",")
	var result []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		result = append(result, part)
	}
	return result
}
