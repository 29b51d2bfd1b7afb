package requests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brettbedarf/webtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestUnmarshal_Fixtures(t *testing.T) {
	t.Parallel()

	jsonRecs, err := Unmarshal(readFixture(t, "mock.json"), webtree.FormatJSON)
	require.NoError(t, err)
	yamlRecs, err := Unmarshal(readFixture(t, "mock.yaml"), webtree.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, jsonRecs, yamlRecs, "json and yaml fixtures describe the same tree")

	require.Len(t, jsonRecs, 1)
	root := jsonRecs[0]
	assert.Equal(t, int64(1), root.ID)
	assert.Equal(t, "Folder 1", root.Name)
	require.Len(t, root.Folders, 2)
	assert.Equal(t, []int64{111, 112}, []int64{root.Folders[0].Files[0].ID, root.Folders[0].Files[1].ID})
	assert.True(t, root.Folders[0].Files[0].Permissions.Delete.Has("user"))
	assert.True(t, root.Folders[1].Files[0].Permissions.Read.Has("guest"))

	// missing permissions decode to empty, non-nil sets
	noPerms := root.Folders[1].Files[1]
	assert.Equal(t, webtree.NewPermissionSet(), noPerms.Permissions)
	assert.Equal(t, webtree.NewPermissionSet(), root.Folders[1].Permissions)
}

func TestUnmarshal_BareArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format webtree.Format
		data   string
	}{
		{"json", webtree.FormatJSON, `  [{"id": 1, "name": "Folder 1", "folders": [], "files": [{"id": 111, "name": "File 1.txt"}]}]`},
		{"yaml", webtree.FormatYAML, "- id: 1\n  name: Folder 1\n  files:\n    - {id: 111, name: File 1.txt}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recs, err := Unmarshal([]byte(tt.data), tt.format)

			require.NoError(t, err)
			require.Len(t, recs, 1)
			require.Len(t, recs[0].Files, 1)
			assert.Equal(t, "File 1.txt", recs[0].Files[0].Name)
		})
	}
}

func TestUnmarshal_Empty(t *testing.T) {
	t.Parallel()

	recs, err := Unmarshal([]byte(`{"folders": []}`), webtree.FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, recs)

	recs, err = Unmarshal([]byte(""), webtree.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestUnmarshal_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  webtree.Format
		data    string
		errPart string
	}{
		{"Malformed json", webtree.FormatJSON, `{"folders": [`, "failed to unmarshal json"},
		{"Malformed yaml", webtree.FormatYAML, "folders: [a: b: c", "failed to unmarshal yaml"},
		{"Missing id", webtree.FormatJSON, `[{"name": "x"}]`, "id"},
		{"Missing name", webtree.FormatJSON, `[{"id": 1}]`, "name"},
		{"Nested missing file id", webtree.FormatJSON, `[{"id": 1, "name": "a", "files": [{"name": "f"}]}]`, "files"},
		{"Unknown format", webtree.Format("xml"), `<x/>`, "unknown document format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Unmarshal([]byte(tt.data), tt.format)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	recs, err := Unmarshal(readFixture(t, "mock.json"), webtree.FormatJSON)
	require.NoError(t, err)

	for _, format := range []webtree.Format{webtree.FormatJSON, webtree.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			data, err := Marshal(recs, format)
			require.NoError(t, err)

			back, err := Unmarshal(data, format)
			require.NoError(t, err)
			assert.Equal(t, recs, back)
		})
	}
}
