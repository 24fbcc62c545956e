package crawl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extracted is the usable content pulled out of one article page.
type Extracted struct {
	Title      string
	Image      string
	Paragraphs []string
}

// skipParents lists containers whose paragraphs are navigation or chrome,
// not article text.
const skipParents = "script, nav, aside, footer, header, noscript, figure"

// ExtractPage parses an article page and returns its headline, lead image,
// and cleaned body paragraphs. fallbackTitle is used when the page exposes
// neither an h1 nor an og:title.
func ExtractPage(html []byte, fallbackTitle string) (Extracted, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return Extracted{}, fmt.Errorf("parse html: %w", err)
	}

	out := Extracted{
		Title: extractTitle(doc, fallbackTitle),
		Image: extractOGImage(doc),
	}

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if s.Closest(skipParents).Length() > 0 {
			return
		}
		if txt := cleanParagraph(s.Text()); txt != "" {
			out.Paragraphs = append(out.Paragraphs, txt)
		}
	})

	return out, nil
}

func extractTitle(doc *goquery.Document, fallback string) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}
	return fallback
}

func extractOGImage(doc *goquery.Document) string {
	if img, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		if img = strings.TrimSpace(img); img != "" {
			return img
		}
	}
	if img, ok := doc.Find(`meta[name="twitter:image"]`).Attr("content"); ok {
		return strings.TrimSpace(img)
	}
	return ""
}
