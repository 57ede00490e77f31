package blog

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SiteProfile carries the site metadata and the reference lists that
// categories and tags are drawn from. It is read once at startup and never
// changes afterwards.
type SiteProfile struct {
	Title      string   `yaml:"title"`
	Tagline    string   `yaml:"tagline"`
	About      string   `yaml:"about"`
	Email      string   `yaml:"email"`
	Categories []string `yaml:"categories"`
	Tags       []string `yaml:"tags"`
}

func (p SiteProfile) HasCategory(name string) bool {
	for _, category := range p.Categories {
		if category == name {
			return true
		}
	}
	return false
}

type SiteStore struct {
	data SiteProfile
}

// NewSiteStore loads the profile from a YAML file. A missing or empty file
// yields the built-in defaults.
func NewSiteStore(path string) (*SiteStore, error) {
	store := &SiteStore{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			store.data = DefaultProfile()
			return store, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		store.data = DefaultProfile()
		return store, nil
	}

	var profile SiteProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	store.data = profile
	return store, nil
}

func (s *SiteStore) Get() SiteProfile {
	return s.data
}

func DefaultProfile() SiteProfile {
	return SiteProfile{
		Title:   "Thread & Trend",
		Tagline: "Notes on style, craft and the people behind the clothes",
		About:   "Thread & Trend is a small fashion journal covering trends, styling advice and the designers we admire.",
		Email:   "hello@example.com",
		Categories: []string{
			"Trends",
			"Style Tips",
			"Designer Spotlights",
		},
		Tags: []string{
			"sustainable",
			"eco-friendly",
			"fashion",
			"classic",
			"outerwear",
			"styling",
		},
	}
}
