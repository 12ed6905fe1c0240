// Package model defines the record types shared by the extraction and
// resolution stages.
package model

// NameRecord is one person extracted from a document. MiddleName and Suffix
// are nil when the source text has nothing for them; nil and empty string are
// not interchangeable.
type NameRecord struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	Suffix     *string `json:"suffix,omitempty"`
}

// Key returns the deduplication identity: (first_name, last_name),
// case-sensitive exact match.
func (r NameRecord) Key() [2]string {
	return [2]string{r.FirstName, r.LastName}
}

// Prospect is one row of the stage-1/stage-2 interchange table: a NameRecord
// tagged with its organization, plus the resolution fields populated by
// stage 2.
type Prospect struct {
	NameRecord
	Organization string  `json:"organization"`
	LinkedInID   *string `json:"linkedin_id,omitempty"`
	OtherMatches *string `json:"other_matches,omitempty"`
	DatabaseID   string  `json:"database_id,omitempty"`
}

// FullName joins the present name parts with single spaces, for logging.
func (p Prospect) FullName() string {
	name := p.FirstName
	if p.MiddleName != nil && *p.MiddleName != "" {
		name += " " + *p.MiddleName
	}
	if p.LastName != "" {
		name += " " + p.LastName
	}
	return name
}

// StringPtr returns a pointer to s. Convenience for building optional fields.
func StringPtr(s string) *string {
	return &s
}
