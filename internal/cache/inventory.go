package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ArticleKeyPrefix     = "article:%s"
	ArticleFrontPageKey  = "articles:front:%d"
	SettingsKey          = "settings"
	CategoriesKey        = "articles:categories"
	TagsKey              = "articles:tags"
)

const (
	ArticleTTL   = 10 * time.Minute
	FrontPageTTL = 2 * time.Minute
	SettingsTTL  = 5 * time.Minute
	TaxonomyTTL  = 10 * time.Minute
)

func ArticleKey(slug string) string {
	return fmt.Sprintf(ArticleKeyPrefix, slug)
}

func FrontPageKey(limit int) string {
	return fmt.Sprintf(ArticleFrontPageKey, limit)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateArticle drops the cached article and every listing that could
// include it.
func InvalidateArticle(ctx context.Context, slug string) {
	if client == nil {
		return
	}
	Invalidate(ctx, ArticleKey(slug))
	Invalidate(ctx, CategoriesKey)
	Invalidate(ctx, TagsKey)
	iter := client.Scan(ctx, 0, "articles:front:*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

func InvalidateSettings(ctx context.Context) {
	Invalidate(ctx, SettingsKey)
}
