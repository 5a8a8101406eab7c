package currencyinput

import (
	"strings"

	"golang.org/x/text/language"
)

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// localeCandidates lists the lookup order for locale: the locale itself, its
// parents, then every resolver fallback followed by that fallback's parents.
// The base language is always present, which matters for tags like "es-MX"
// whose CLDR parent is "es-419".
func localeCandidates(locale string, resolver FallbackResolver) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	seen := make(map[string]struct{}, 6)
	candidates := make([]string, 0, 6)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(locale)
	for _, parent := range localeParentChain(locale) {
		appendLocale(parent)
	}

	if resolver != nil {
		for _, fallback := range resolver.Resolve(locale) {
			appendLocale(fallback)
			for _, parent := range localeParentChain(fallback) {
				appendLocale(parent)
			}
		}
	}

	appendLocale(baseLanguage(locale))

	return candidates
}

func baseLanguage(locale string) string {
	tag := language.Make(locale)
	base, _ := tag.Base()
	value := base.String()
	if value == "und" {
		return ""
	}
	return value
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
