package extract

import (
	"github.com/sells-group/prospect-cli/internal/model"
)

// Normalize attaches the organization label to every record and deduplicates
// by the (first_name, last_name) identity key, keeping the first occurrence
// in extraction order. The transformation is pure and order-preserving.
func Normalize(records []model.NameRecord, organization string) []model.Prospect {
	seen := make(map[[2]string]bool, len(records))
	out := make([]model.Prospect, 0, len(records))

	for _, r := range records {
		key := r.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, model.Prospect{
			NameRecord:   r,
			Organization: organization,
		})
	}

	return out
}

// NormalizeKeepAll attaches the organization without deduplicating, for runs
// configured with dedup off.
func NormalizeKeepAll(records []model.NameRecord, organization string) []model.Prospect {
	out := make([]model.Prospect, 0, len(records))
	for _, r := range records {
		out = append(out, model.Prospect{
			NameRecord:   r,
			Organization: organization,
		})
	}
	return out
}
