package blog

type Store interface {
	List() []Post
	GetBySlug(slug string) (Post, bool)
	ListByCategory(name string) []Post
	ListByTag(name string) []Post
	Create(post Post) error
}
