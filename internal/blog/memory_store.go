package blog

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

var ErrDuplicateSlug = errors.New("post slug already exists")
var ErrInvalidSlug = errors.New("post slug is required")

// MemoryStore holds all posts in process memory. It is populated once at
// startup and only ever grows through Create; nothing is written back to
// disk.
type MemoryStore struct {
	mu    sync.RWMutex
	posts []Post
}

func NewMemoryStore(posts []Post) *MemoryStore {
	store := &MemoryStore{}
	store.posts = make([]Post, len(posts))
	copy(store.posts, posts)
	return store
}

// NewMemoryStoreFromFile seeds the store from a JSON file. A missing or
// empty file falls back to the built-in sample posts.
func NewMemoryStoreFromFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMemoryStore(SeedPosts()), nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return NewMemoryStore(SeedPosts()), nil
	}

	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, err
	}
	return NewMemoryStore(posts), nil
}

func (s *MemoryStore) List() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy so callers cannot mutate the internal slice.
	posts := make([]Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

// GetBySlug returns the first post with the given slug in store order.
// If the seed data carries duplicate slugs, the earliest entry wins.
func (s *MemoryStore) GetBySlug(slug string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.posts {
		if post.Slug == slug {
			return post, true
		}
	}
	return Post{}, false
}

func (s *MemoryStore) ListByCategory(name string) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []Post{}
	for _, post := range s.posts {
		if post.Category == name {
			matched = append(matched, post)
		}
	}
	return matched
}

func (s *MemoryStore) ListByTag(name string) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []Post{}
	for _, post := range s.posts {
		if post.HasTag(name) {
			matched = append(matched, post)
		}
	}
	return matched
}

func (s *MemoryStore) Create(post Post) error {
	if post.Slug == "" {
		return ErrInvalidSlug
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.posts {
		if existing.Slug == post.Slug {
			return ErrDuplicateSlug
		}
	}

	if post.ID == 0 {
		max := 0
		for _, existing := range s.posts {
			if existing.ID > max {
				max = existing.ID
			}
		}
		post.ID = max + 1
	}

	s.posts = append(s.posts, post)
	return nil
}

// SeedPosts is the default content the site starts with when no posts.json
// seed file is present.
func SeedPosts() []Post {
	return []Post{
		{
			ID:       1,
			Title:    "The Rise of Sustainable Fashion",
			Slug:     "sustainable-fashion",
			Content:  "Explore the growing movement towards eco-conscious clothing...",
			Image:    "static/img/sustainable.jpg",
			Category: "Trends",
			Tags:     []string{"sustainable", "eco-friendly", "fashion"},
			Date:     "2025-05-09",
		},
		{
			ID:       2,
			Title:    "Styling a Classic Trench Coat",
			Slug:     "trench-coat-styling",
			Content:  "Versatile ways to wear a timeless trench coat...",
			Image:    "static/img/trench.jpg",
			Category: "Style Tips",
			Tags:     []string{"classic", "outerwear", "styling"},
			Date:     "2025-05-08",
		},
		{
			ID:       3,
			Title:    "Inside the Atelier: A Designer Spotlight",
			Slug:     "atelier-designer-spotlight",
			Content:  "A look behind the scenes at how a small atelier works...",
			Image:    "static/img/atelier.jpg",
			Category: "Designer Spotlights",
			Tags:     []string{"classic", "fashion"},
			Date:     "2025-05-07",
		},
	}
}
