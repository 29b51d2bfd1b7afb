package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/brettbedarf/webtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminTree = "🔓 Folder 1/ #1 [x]\n" +
	"├── 🔓 Subfolder 1.1/ #11 [x]\n" +
	"│   ├── 🔓 File 1.txt #111 [x]\n" +
	"│   └── 🔓 File 2.jpg #112 [x]\n" +
	"├── 🔓 Subfolder 1.2/ #12 [x]\n" +
	"│   ├── 🔓 File 3.docx #121 [x]\n" +
	"│   └── 🔓 File 4.pdf #122 [x]\n" +
	"├── 🔓 File 5.txt #101 [x]\n" +
	"└── 🔓 File 6.jpg #102 [x]\n"

// run executes the CLI in-process. Not parallel: logger setup is global.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"-v", "1", "--source", "testdata/mock.json"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTreeCmd(t *testing.T) {
	out, err := run(t, "tree")
	require.NoError(t, err)
	assert.Equal(t, adminTree, out)
}

func TestTreeCmd_Role(t *testing.T) {
	out, err := run(t, "tree", "--role", "user")
	require.NoError(t, err)
	assert.Contains(t, out, "🔓 File 1.txt #111 [x]\n")
	assert.Contains(t, out, "🔒 File 2.jpg #112\n")
	assert.Contains(t, out, "🔒 Subfolder 1.2/ #12\n")
}

func TestTreeCmd_JSONOutput(t *testing.T) {
	out, err := run(t, "tree", "-o", "json")
	require.NoError(t, err)

	var doc struct {
		Folders []struct {
			ID int64 `json:"id"`
		} `json:"folders"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Folders, 1)
	assert.Equal(t, int64(1), doc.Folders[0].ID)
}

func TestSearchCmd(t *testing.T) {
	tests := []struct {
		name  string
		query []string
		want  string
	}{
		{"matches in pre-order", []string{"subfolder"}, "#11\tfolder\tSubfolder 1.1\n#12\tfolder\tSubfolder 1.2\n"},
		{"multi word query", []string{"file", "3"}, "#121\tfile\tFile 3.docx\n"},
		{"no match", []string{"zzz"}, "NOT FOUND\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"search"}, tt.query...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSearchCmd_EmptyQuery(t *testing.T) {
	_, err := run(t, "search", "")
	assert.ErrorIs(t, err, webtree.ErrEmptyQuery)

	// whitespace is searched like any other text
	out, err := run(t, "search", " ")
	require.NoError(t, err)
	assert.Contains(t, out, "#1\tfolder\tFolder 1\n")
	assert.Contains(t, out, "#102\tfile\tFile 6.jpg\n")
}

func TestDeleteCmd(t *testing.T) {
	out, err := run(t, "delete", "11")
	require.NoError(t, err)
	assert.NotContains(t, out, "Subfolder 1.1")
	assert.NotContains(t, out, "File 1.txt")
	assert.Contains(t, out, "Subfolder 1.2")

	_, err = run(t, "delete", "404")
	assert.ErrorIs(t, err, webtree.ErrNotFound)

	_, err = run(t, "delete", "abc")
	assert.Error(t, err)
}

func TestMoveCmd(t *testing.T) {
	out, err := run(t, "move", "111", "12")
	require.NoError(t, err)
	assert.Contains(t, out,
		"├── 🔓 Subfolder 1.2/ #12 [x]\n"+
			"│   ├── 🔓 File 3.docx #121 [x]\n"+
			"│   ├── 🔓 File 4.pdf #122 [x]\n"+
			"│   └── 🔓 File 1.txt #111 [x]\n")
}

func TestMoveCmd_NoChangeAndRejected(t *testing.T) {
	out, err := run(t, "move", "12", "12")
	require.NoError(t, err)
	assert.Equal(t, "no change\n", out)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"missing item", []string{"404", "12"}, webtree.ErrNotFound},
		{"file target", []string{"111", "122"}, webtree.ErrInvalidTarget},
		{"into own subtree", []string{"1", "11"}, webtree.ErrCyclicMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"move"}, tt.args...)...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccessCmd(t *testing.T) {
	out, err := run(t, "access", "11", "--role", "user")
	require.NoError(t, err)
	assert.Equal(t, "Subfolder 1.1 #11 (folder) as user: read=true move=true delete=false\n", out)

	_, err = run(t, "access", "404")
	assert.ErrorIs(t, err, webtree.ErrNotFound)
}

func TestConfigFile(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--config", "testdata/config.yaml", "access", "112"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "File 2.jpg #112 (file) as user: read=false move=false delete=false\n", out.String())
}

func TestSetup_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing config file", []string{"--config", "testdata/nope.yaml", "tree"}},
		{"unknown output", []string{"-o", "xml", "tree"}},
		{"empty role", []string{"--role", "", "tree"}},
		{"missing source file", []string{"--source", "testdata/nope.json", "tree"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd(&bytes.Buffer{})
			cmd.SetArgs(tt.args)
			assert.Error(t, cmd.Execute())
		})
	}
}
