package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaswdr/faker"

	"postshare/pkg/post"
)

var f = faker.New()

// seed fills the collection with fake posts to have better UI experience.
func seed(ctx context.Context, repo *post.Repo, n int) error {
	for i := 0; i < n; i++ {
		if _, err := repo.Add(ctx, genPost()); err != nil {
			return fmt.Errorf("seed: can't add post %d: %w", i, err)
		}
	}
	return nil
}

func genPost() *post.Post {
	tags := f.Lorem().Words(f.IntBetween(1, 4))
	for i, t := range tags {
		tags[i] = truncate(t, 50)
	}
	return &post.Post{
		Title:   truncate(strings.TrimSuffix(f.Lorem().Sentence(f.IntBetween(2, 6)), "."), 100),
		Message: truncate(f.Lorem().Paragraph(f.IntBetween(1, 3)), 1000),
		Creator: truncate(f.Person().Name(), 100),
		Tags:    tags,
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
