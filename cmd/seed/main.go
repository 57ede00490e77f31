package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fashionblog/internal/blog"

	"github.com/brianvoe/gofakeit/v6"
)

// Generates a posts.json seed file with fabricated posts so the site has
// more than the built-in samples to show during development.
func main() {
	out := flag.String("out", "data/posts.json", "Path of the seed file to write")
	count := flag.Int("count", 12, "Number of posts to generate")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	profile := blog.DefaultProfile()
	posts := blog.SeedPosts()

	seen := map[string]bool{}
	for _, p := range posts {
		seen[p.Slug] = true
	}

	for i := 0; len(posts) < *count; i++ {
		title := strings.TrimSuffix(gofakeit.Sentence(gofakeit.Number(3, 6)), ".")
		slug := blog.Slugify(title)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true

		posts = append(posts, blog.Post{
			ID:       len(posts) + 1,
			Title:    title,
			Slug:     slug,
			Content:  gofakeit.Paragraph(3, 4, 12, "\n\n"),
			Image:    "static/img/" + slug + ".jpg",
			Category: gofakeit.RandomString(profile.Categories),
			Tags:     pickTags(profile.Tags, gofakeit.Number(1, 3)),
			Date:     time.Now().AddDate(0, 0, -i).Format("2006-01-02"),
		})
	}

	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wrote %d posts to %s\n", len(posts), *out)
}

func pickTags(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	picked := map[string]bool{}
	var tags []string
	for len(tags) < n {
		tag := gofakeit.RandomString(pool)
		if picked[tag] {
			continue
		}
		picked[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
