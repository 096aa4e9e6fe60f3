package match

import "strings"

// relatedFields maps a field of study to keywords that indicate an adjacent
// program. Matching any of them earns partial field credit.
var relatedFields = map[string][]string{
	"computer science": {"cs", "computing", "software", "programming"},
	"data science":     {"data", "analytics", "statistics", "machine learning", "ai"},
	"engineering":      {"mechanical", "electrical", "civil", "chemical"},
	"business":         {"mba", "management", "finance", "marketing"},
	"medicine":         {"medical", "health", "clinical"},
	"ai":               {"artificial intelligence", "machine learning", "ml", "deep learning"},
}

func relatedKeywords(field string) []string {
	field = strings.ToLower(field)
	keywords := []string{field}

	for key, related := range relatedFields {
		if strings.Contains(field, key) {
			keywords = append(keywords, related...)
		}
	}

	return keywords
}
