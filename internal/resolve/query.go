package resolve

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sells-group/prospect-cli/internal/model"
)

// KeywordQuery builds the free-text query for the keyword-search backend:
// first middle last organization "LinkedIn", space-joined. Absent fields
// contribute an empty token; the join never skips positions.
func KeywordQuery(p model.Prospect) string {
	middle := ""
	if p.MiddleName != nil {
		middle = *p.MiddleName
	}
	return fmt.Sprintf(`%s %s %s %s "LinkedIn"`, p.FirstName, middle, p.LastName, p.Organization)
}

// SearchEngineURL builds the search-engine URL submitted through the scrape
// proxy: a plus-joined query of the non-missing name parts, the organization
// tokens, and the literal token LinkedIn. A name part containing whitespace
// is truncated to its first token before joining.
func SearchEngineURL(p model.Prospect, count int) string {
	var tokens []string
	for _, part := range []*string{&p.FirstName, p.MiddleName, &p.LastName} {
		if part == nil {
			continue
		}
		if tok := firstToken(*part); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if p.Organization != "" {
		tokens = append(tokens, strings.Fields(p.Organization)...)
	}
	tokens = append(tokens, "LinkedIn")

	escaped := make([]string, len(tokens))
	for i, t := range tokens {
		escaped[i] = url.QueryEscape(t)
	}

	return fmt.Sprintf("https://www.google.com/search?q=%s&num=%d", strings.Join(escaped, "+"), count)
}

// firstToken returns the first whitespace-delimited token of s.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
