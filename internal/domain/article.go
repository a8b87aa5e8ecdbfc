package domain

import (
	"regexp"
	"strings"
)

// Артикул хранится в верхнем регистре, без пробелов. Кириллица допустима.
var articleRe = regexp.MustCompile(`^[A-ZА-ЯЁ0-9]+$`)

// FormatArticle normalizes raw user input to the stored article form:
// uppercase, all whitespace stripped.
func FormatArticle(input string) string {
	fields := strings.Fields(strings.ToUpper(input))
	return strings.Join(fields, "")
}

// IsValidArticle reports whether an already normalized article is acceptable.
func IsValidArticle(article string) bool {
	return articleRe.MatchString(article)
}
