package domain

import (
	"strings"

	"golang.org/x/net/html"
)

// Tags that survive sanitization, with the attributes each may keep. Everything
// else is entity-escaped on the way out.
var allowedTags = map[string][]string{
	"a":      {"href", "title", "target"},
	"b":      nil,
	"i":      nil,
	"em":     nil,
	"strong": nil,
	"p":      nil,
	"br":     nil,
	"ul":     nil,
	"ol":     nil,
	"li":     nil,
	"code":   nil,
	"pre":    nil,
	"img":    {"src", "alt", "width", "height"},
}

var textEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

var attrEscaper = strings.NewReplacer(`"`, "&quot;", "<", "&lt;", ">", "&gt;")

// SanitizeHTML renders s safe for embedding in an HTML context. Tags outside
// the whitelist (script among them) are escaped to their entity forms, allowed
// tags keep only their allowed attributes, and event handlers and script URLs
// are dropped. Escaping is applied exactly once: already-escaped text comes
// back unchanged.
func SanitizeHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.WriteString(textEscaper.Replace(string(z.Text())))
		case html.StartTagToken, html.SelfClosingTagToken:
			writeStartTag(&b, z)
		case html.EndTagToken:
			name, _ := z.TagName()
			if _, ok := allowedTags[string(name)]; ok {
				b.WriteString("</")
				b.Write(name)
				b.WriteByte('>')
			} else {
				b.WriteString(textEscaper.Replace(string(z.Raw())))
			}
		case html.CommentToken, html.DoctypeToken:
			b.WriteString(textEscaper.Replace(string(z.Raw())))
		}
	}
}

func writeStartTag(b *strings.Builder, z *html.Tokenizer) {
	raw := string(z.Raw())
	name, hasAttr := z.TagName()
	tag := string(name)
	allowed, ok := allowedTags[tag]
	if !ok {
		b.WriteString(textEscaper.Replace(raw))
		return
	}

	b.WriteByte('<')
	b.WriteString(tag)
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		k := string(key)
		v := string(val)
		if !attrAllowed(allowed, k) || !safeAttrValue(k, v) {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(v))
		b.WriteByte('"')
	}
	b.WriteByte('>')
}

func attrAllowed(allowed []string, key string) bool {
	for _, a := range allowed {
		if a == key {
			return true
		}
	}
	return false
}

// safeAttrValue rejects URL attributes carrying an executable scheme.
func safeAttrValue(key, val string) bool {
	if key != "href" && key != "src" {
		return true
	}
	v := strings.ToLower(strings.TrimSpace(val))
	// Strip control characters browsers ignore inside schemes.
	v = strings.Map(func(r rune) rune {
		if r <= 0x20 {
			return -1
		}
		return r
	}, v)
	for _, scheme := range []string{"javascript:", "vbscript:", "data:"} {
		if strings.HasPrefix(v, scheme) {
			return false
		}
	}
	return true
}
