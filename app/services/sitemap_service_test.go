package services

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapGenerate(t *testing.T) {
	repo := newMockPostRepo()
	posts := NewPostService(repo)
	sitemap := NewSitemapService(repo, "https://example.com")

	_, err := posts.Create(CreatePostInput{ID: "older", Title: "T", Content: "C", Date: "2023-06-15T00:00:00Z"})
	require.NoError(t, err)
	_, err = posts.Create(CreatePostInput{ID: "newer", Title: "T", Content: "C", Date: "2024-02-01T00:00:00Z"})
	require.NoError(t, err)

	data, err := sitemap.Generate()
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	urlset := doc.Root()
	require.NotNil(t, urlset)
	assert.Equal(t, "urlset", urlset.Tag)
	assert.Equal(t, sitemapNamespace, urlset.SelectAttrValue("xmlns", ""))

	urls := urlset.SelectElements("url")
	// Two fixed entries plus one per post.
	require.Len(t, urls, 4)

	locs := make([]string, len(urls))
	for i, url := range urls {
		locs[i] = url.SelectElement("loc").Text()
	}
	assert.Equal(t, []string{
		"https://example.com/resume.html",
		"https://example.com/blog/index.html",
		"https://example.com/blog/index.html#/post/newer",
		"https://example.com/blog/index.html#/post/older",
	}, locs)

	assert.Nil(t, urls[0].SelectElement("lastmod"))
	assert.Equal(t, "2024-02-01", urls[2].SelectElement("lastmod").Text())
	assert.Equal(t, "2023-06-15", urls[3].SelectElement("lastmod").Text())
	assert.Equal(t, "monthly", urls[0].SelectElement("changefreq").Text())
	assert.Equal(t, "1.0", urls[0].SelectElement("priority").Text())
	assert.Equal(t, "0.8", urls[2].SelectElement("priority").Text())
}

func TestSitemapGenerateEmpty(t *testing.T) {
	sitemap := NewSitemapService(newMockPostRepo(), "https://example.com")

	data, err := sitemap.Generate()
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	assert.Len(t, doc.Root().SelectElements("url"), 2)
}
