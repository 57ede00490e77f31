package blog

import (
	"fmt"
	"strings"
)

type Post struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Date     string   `json:"date"` // YYYY-MM-DD
}

func (p Post) HasTag(name string) bool {
	for _, tag := range p.Tags {
		if tag == name {
			return true
		}
	}
	return false
}

func (p Post) ReadTime() string {
	words := len(strings.Fields(p.Content))
	minutes := words / 200
	if minutes < 1 {
		return "1 min read"
	}
	return fmt.Sprintf("%d min read", minutes)
}
