package crawl

import (
	"regexp"
	"strings"
)

// badSnippets flags boilerplate the portals inject between real paragraphs:
// CTAs, share bars, ads, cookie banners.
var badSnippets = []string{
	// chamadas e CTAs
	"leia mais", "leia também", "saiba mais", "veja também", "veja mais",
	"continue lendo", "continue a ler", "clique aqui", "acesse aqui",
	"inscreva-se", "assine", "assinar", "newsletter",
	// redes/compartilhamento
	"compartilhe", "siga-nos", "siga no instagram", "siga no twitter", "siga no x",
	"siga no facebook", "acompanhe nas redes",
	// publicidade/comercial
	"publicidade", "anúncio", "publieditorial", "conteúdo patrocinado", "oferta",
	// navegação/site
	"voltar ao topo", "voltar para o início", "cookies", "aceitar cookies",
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	urlRe        = regexp.MustCompile(`https?://\S+`)
	ctaPrefixRe  = regexp.MustCompile(`^(?:leia|veja|saiba|assine|clique)\b`)
)

const minParagraphLen = 25

// cleanParagraph normalizes one paragraph of article text and returns "" when
// the paragraph is boilerplate rather than content.
func cleanParagraph(p string) string {
	txt := strings.TrimSpace(whitespaceRe.ReplaceAllString(p, " "))
	if txt == "" {
		return ""
	}
	low := strings.ToLower(txt)
	for _, b := range badSnippets {
		if strings.Contains(low, b) {
			return ""
		}
	}
	if len(txt) < minParagraphLen {
		return ""
	}
	if urlRe.MatchString(txt) {
		return ""
	}
	if ctaPrefixRe.MatchString(low) {
		return ""
	}
	return txt
}
