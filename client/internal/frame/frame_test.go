package frame

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sample() []map[string]any {
	return []map[string]any{
		{"race_id": json.Number("5314"), "race_name": "Daytona 500", "winner_driver_id": nil},
		{"race_id": json.Number("5315"), "race_name": "Ambetter Health 400", "track": map[string]any{"name": "Atlanta"}},
	}
}

func TestFromRecords_Layout(t *testing.T) {
	f, err := DefaultBuilder{}.FromRecords(sample())
	require.NoError(t, err)
	require.Equal(t, []string{"race_id", "race_name", "track", "winner_driver_id"}, f.Columns)
	require.Equal(t, 2, f.Len())

	names, ok := f.Column("race_name")
	require.True(t, ok)
	require.Equal(t, []any{"Daytona 500", "Ambetter Health 400"}, names)

	track, _ := f.Column("track")
	require.Nil(t, track[0])
	require.Equal(t, map[string]any{"name": "Atlanta"}, track[1])

	_, ok = f.Column("nope")
	require.False(t, ok)
}

func TestFromRecords_ValuesMatchRecords(t *testing.T) {
	in := sample()
	f, err := DefaultBuilder{}.FromRecords(in)
	require.NoError(t, err)
	for i, rec := range in {
		for k, v := range rec {
			col, ok := f.Column(k)
			require.True(t, ok)
			if diff := cmp.Diff(v, col[i]); diff != "" {
				t.Fatalf("row %d column %s differs:\n%s", i, k, diff)
			}
		}
	}
}

func TestFromRecords_KeepsNullFields(t *testing.T) {
	in := []map[string]any{{"race_id": json.Number("5314"), "winner_driver_id": nil}}
	f, err := DefaultBuilder{}.FromRecords(in)
	require.NoError(t, err)
	require.Equal(t, []string{"race_id", "winner_driver_id"}, f.Columns)
	winner, ok := f.Column("winner_driver_id")
	require.True(t, ok)
	require.Equal(t, []any{nil}, winner)
}

func TestFromRecords_Empty(t *testing.T) {
	f, err := DefaultBuilder{}.FromRecords(nil)
	require.NoError(t, err)
	require.Empty(t, f.Columns)
	require.Zero(t, f.Len())
}

func TestSelect(t *testing.T) {
	f, err := DefaultBuilder{}.FromRecords(sample())
	require.NoError(t, err)
	s, err := f.Select("race_name", "race_id")
	require.NoError(t, err)
	require.Equal(t, []string{"race_name", "race_id"}, s.Columns)
	require.Equal(t, []any{"Daytona 500", json.Number("5314")}, s.Rows[0])

	_, err = f.Select("missing")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	f, err := DefaultBuilder{}.FromRecords(sample())
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, f.Render(&b))
	out := b.String()
	require.Contains(t, strings.ToUpper(out), "RACE_NAME")
	for _, want := range []string{"Daytona 500", "5314", `{"name":"Atlanta"}`} {
		require.True(t, strings.Contains(out, want), "missing %q in\n%s", want, out)
	}
}
