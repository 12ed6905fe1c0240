package resolve

import "regexp"

var (
	// Keyword-search result URLs must match the canonical profile form with a
	// trailing slash.
	keywordProfileRe = regexp.MustCompile(`^https://www\.linkedin\.com/in/([^/]+)/$`)
	// Organic scrape results link without a guaranteed trailing slash.
	organicProfileRe = regexp.MustCompile(`^https://www\.linkedin\.com/in/([^/]+?)/?$`)
)

// MatchKeywordProfile extracts the profile slug from a keyword-search result
// URL, or "" when the URL is not a profile link.
func MatchKeywordProfile(rawURL string) string {
	m := keywordProfileRe.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// MatchOrganicProfile extracts the profile slug from an organic search result
// link, or "" when the link is not a profile.
func MatchOrganicProfile(link string) string {
	m := organicProfileRe.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// Reconcile merges the candidate slugs from both backends into a primary id
// plus alternates. The first slug of profiles1 (in order) that also appears
// in profiles2 wins; without cross-source agreement the first profiles2 slug
// is preferred, then the first profiles1 slug. Alternates keep first-seen
// order across profiles1 then profiles2, excluding the chosen id. Both return
// values are empty when neither list has candidates.
func Reconcile(profiles1, profiles2 []string) (id string, others []string) {
	if len(profiles1) == 0 && len(profiles2) == 0 {
		return "", nil
	}

	for _, s := range profiles1 {
		if containsSlug(profiles2, s) {
			id = s
			break
		}
	}
	if id == "" {
		if len(profiles2) > 0 {
			id = profiles2[0]
		} else {
			id = profiles1[0]
		}
	}

	seen := map[string]bool{id: true}
	for _, s := range profiles1 {
		if !seen[s] {
			seen[s] = true
			others = append(others, s)
		}
	}
	for _, s := range profiles2 {
		if !seen[s] {
			seen[s] = true
			others = append(others, s)
		}
	}

	return id, others
}

// containsSlug is an ordered containment scan; order matters for the
// first-hit tie-break so no set conversion happens here.
func containsSlug(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
