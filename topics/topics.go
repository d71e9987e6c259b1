package topics

import (
	"context"
	"fmt"
	"log"

	"github.com/vartanbeno/go-reddit/v2/reddit"

	"shorts-factory/types"
)

// Feed pulls trending product topics from subreddits. It is an optional
// source of batch items alongside the image inbox.
type Feed struct {
	client *reddit.Client
}

func NewFeed(opts ...reddit.Opt) (*Feed, error) {
	client, err := reddit.NewReadonlyClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("reddit client: %w", err)
	}
	return &Feed{client: client}, nil
}

// Fetch collects up to limit hot post titles per subreddit as topic-only
// batch items. A subreddit that fails is logged and skipped so one bad
// feed never blocks the run.
func (f *Feed) Fetch(ctx context.Context, subreddits []string, limit int) []types.BatchItem {
	var items []types.BatchItem
	for _, sub := range subreddits {
		posts, _, err := f.client.Subreddit.HotPosts(ctx, sub, &reddit.ListOptions{Limit: limit})
		if err != nil {
			log.Printf("[topics] ⚠️  r/%s fetch failed: %v", sub, err)
			continue
		}
		added := 0
		for _, post := range posts {
			if post.Title == "" {
				continue
			}
			items = append(items, types.BatchItem{
				Name:  post.ID,
				Topic: post.Title,
			})
			added++
		}
		log.Printf("[topics] r/%s: %d topics", sub, added)
	}
	return items
}
