package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()

	a := NameRecord{FirstName: "Jane", LastName: "Doe", MiddleName: StringPtr("M.")}
	b := NameRecord{FirstName: "Jane", LastName: "Doe", Suffix: StringPtr("Jr.")}
	c := NameRecord{FirstName: "jane", LastName: "Doe"}

	assert.Equal(t, a.Key(), b.Key(), "middle name and suffix do not affect identity")
	assert.NotEqual(t, a.Key(), c.Key(), "key comparison is case-sensitive")
}

func TestFullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  Prospect
		want string
	}{
		{
			name: "all_parts",
			row: Prospect{NameRecord: NameRecord{
				FirstName: "Jane", MiddleName: StringPtr("M."), LastName: "Doe",
			}},
			want: "Jane M. Doe",
		},
		{
			name: "no_middle",
			row:  Prospect{NameRecord: NameRecord{FirstName: "Jane", LastName: "Doe"}},
			want: "Jane Doe",
		},
		{
			name: "empty_middle_skipped",
			row: Prospect{NameRecord: NameRecord{
				FirstName: "Jane", MiddleName: StringPtr(""), LastName: "Doe",
			}},
			want: "Jane Doe",
		},
		{
			name: "first_only",
			row:  Prospect{NameRecord: NameRecord{FirstName: "Jane"}},
			want: "Jane",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.row.FullName())
		})
	}
}

func TestNameRecordJSON(t *testing.T) {
	t.Parallel()

	// Absent optional fields are omitted, not serialized as null.
	data, err := json.Marshal(NameRecord{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"first_name":"Jane","last_name":"Doe"}`, string(data))

	var rec NameRecord
	require.NoError(t, json.Unmarshal([]byte(`{"first_name":"Jane","last_name":"Doe","middle_name":null,"suffix":"Jr."}`), &rec))
	assert.Nil(t, rec.MiddleName)
	require.NotNil(t, rec.Suffix)
	assert.Equal(t, "Jr.", *rec.Suffix)
}
