package posts

import "git.home.luguber.info/inful/blogkit/internal/authors"

// GroupByAuthorKey partitions posts by map-declared author key, preserving
// the relative post order within each bucket. Every key in the authors map
// gets a bucket, empty when the author has no posts yet. Inline authors have
// no key and are never grouped.
func GroupByAuthorKey(list []*Post, m authors.Map) map[string][]*Post {
	grouped := make(map[string][]*Post, len(m))
	for key := range m {
		grouped[key] = []*Post{}
	}
	for _, post := range list {
		for _, key := range post.AuthorKeys() {
			grouped[key] = append(grouped[key], post)
		}
	}
	return grouped
}
