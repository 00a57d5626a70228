package shipping

import "strings"

// Classifier decides the delivery zone from free-text address parts
type Classifier interface {
	IsInnerCity(address, province, district string) bool
}

// KeywordClassifier substring-based zone classifier.
// An empty address classifies as inner city.
type KeywordClassifier struct {
	keywords []string
}

// NewKeywordClassifier builds a classifier from lowercase-normalized keywords
func NewKeywordClassifier(keywords []string) *KeywordClassifier {
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" {
			normalized = append(normalized, keyword)
		}
	}
	return &KeywordClassifier{keywords: normalized}
}

// IsInnerCity reports whether any address part matches an inner-city keyword
func (c *KeywordClassifier) IsInnerCity(address, province, district string) bool {
	haystack := strings.ToLower(strings.TrimSpace(strings.Join([]string{address, province, district}, " ")))
	if haystack == "" {
		return true
	}
	for _, keyword := range c.keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
