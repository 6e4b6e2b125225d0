package services

import (
	"fmt"

	"github.com/beevik/etree"

	"blogapi/app/repositories"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapService renders the sitemap-protocol XML document for the site.
type SitemapService struct {
	repo    repositories.PostRepository
	baseURL string
}

// NewSitemapService creates a new SitemapService rooted at baseURL.
func NewSitemapService(repo repositories.PostRepository, baseURL string) *SitemapService {
	return &SitemapService{repo: repo, baseURL: baseURL}
}

// Generate builds the sitemap: the resume page, the blog index, then one
// deep-link entry per post in the same order as List.
func (s *SitemapService) Generate() ([]byte, error) {
	posts, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	addURL(urlset, s.baseURL+"/resume.html", "", "monthly", "1.0")
	addURL(urlset, s.baseURL+"/blog/index.html", "", "weekly", "0.9")

	for _, post := range posts {
		loc := fmt.Sprintf("%s/blog/index.html#/post/%s", s.baseURL, post.ID)
		addURL(urlset, loc, post.Date.Format("2006-01-02"), "monthly", "0.8")
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func addURL(urlset *etree.Element, loc, lastmod, changefreq, priority string) {
	url := urlset.CreateElement("url")
	url.CreateElement("loc").SetText(loc)
	if lastmod != "" {
		url.CreateElement("lastmod").SetText(lastmod)
	}
	url.CreateElement("changefreq").SetText(changefreq)
	url.CreateElement("priority").SetText(priority)
}
