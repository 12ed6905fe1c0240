package extract

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
)

// nameList mirrors the declared response schema.
type nameList struct {
	Names []model.NameRecord `json:"names"`
}

// ParseNames recovers a validated record list from a raw model response.
// Fenced code blocks are stripped first; the remainder must be a JSON object
// matching the names envelope. Records missing a required name field are
// dropped individually rather than failing the batch.
func ParseNames(content string) ([]model.NameRecord, error) {
	cleaned := cleanJSON(content)

	if err := validateAgainstSchema(namesRecoverySchema(), []byte(cleaned)); err != nil {
		return nil, &SchemaError{Err: err}
	}

	var list nameList
	if err := json.Unmarshal([]byte(cleaned), &list); err != nil {
		return nil, &SchemaError{Err: eris.Wrap(err, "extract: decode names")}
	}

	records := make([]model.NameRecord, 0, len(list.Names))
	for _, r := range list.Names {
		if r.FirstName == "" || r.LastName == "" {
			zap.L().Warn("extract: dropping record missing a required name field",
				zap.String("first_name", r.FirstName),
				zap.String("last_name", r.LastName),
			)
			continue
		}
		records = append(records, r)
	}

	return records, nil
}

// cleanJSON strips markdown fences and extracts the JSON object.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
