package table

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// setDisplay sets the display property of the inline style of s.
//
// An empty value removes the property, like clearing it from a script.
func setDisplay(s *goquery.Selection, value string) {
	s.Each(func(_ int, s *goquery.Selection) {
		var decls []string
		for _, decl := range strings.Split(s.AttrOr("style", ""), ";") {
			name, _, _ := strings.Cut(decl, ":")
			if strings.TrimSpace(decl) == "" || strings.EqualFold(strings.TrimSpace(name), "display") {
				continue
			}
			decls = append(decls, strings.TrimSpace(decl))
		}
		if value != "" {
			decls = append(decls, "display: "+value)
		}
		if len(decls) == 0 {
			s.RemoveAttr("style")
			return
		}
		s.SetAttr("style", strings.Join(decls, "; "))
	})
}

// display returns the display property of the inline style of the first element of s.
func display(s *goquery.Selection) string {
	for _, decl := range strings.Split(s.AttrOr("style", ""), ";") {
		name, value, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(name), "display") {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
