package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByName(t *testing.T) {
	t.Parallel()

	tr := loadSample(t)

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"Files in pre-order then folder files", "File", []int64{111, 112, 121, 122, 101, 102}},
		{"Case insensitive", "fILe", []int64{111, 112, 121, 122, 101, 102}},
		{"Folder matches before its children", "folder", []int64{1, 11, 12}},
		{"Interleaved folders and files", "1", []int64{1, 11, 111, 112, 12, 121, 122, 101, 102}},
		{"Extension", ".jpg", []int64{112, 102}},
		{"No match", "zzz", nil},
		{"Empty query", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tr.FindByName(tt.query)

			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFindByName_ReturnsRecords(t *testing.T) {
	t.Parallel()

	tr := loadSample(t)

	got := tr.FindByName("File")
	names := make([]string, 0, len(got))
	for _, n := range got {
		names = append(names, n.Name())
	}
	assert.Equal(t, []string{"File 1.txt", "File 2.jpg", "File 3.docx", "File 4.pdf", "File 5.txt", "File 6.jpg"}, names)
}

func TestFind_Idempotent(t *testing.T) {
	t.Parallel()

	tr := loadSample(t)
	before := tr.Snapshot()

	first := ids(tr.FindByName("file"))
	second := ids(tr.FindByName("file"))
	n1, ok1 := tr.FindByID(12)
	n2, ok2 := tr.FindByID(12)

	assert.Equal(t, first, second)
	assert.Equal(t, ok1, ok2)
	assert.Same(t, n1, n2)
	assert.Equal(t, before, tr.Snapshot(), "lookups must not mutate the tree")
}

func TestFindByID(t *testing.T) {
	t.Parallel()

	tr := loadSample(t)

	t.Run("Folder", func(t *testing.T) {
		t.Parallel()
		n, ok := tr.FindByID(12)
		require.True(t, ok)
		assert.Equal(t, "Subfolder 1.2", n.Name())
		assert.True(t, n.IsFolder())
	})
	t.Run("File", func(t *testing.T) {
		t.Parallel()
		n, ok := tr.FindByID(102)
		require.True(t, ok)
		assert.Equal(t, "File 6.jpg", n.Name())
		assert.False(t, n.IsFolder())
	})
	t.Run("Absent", func(t *testing.T) {
		t.Parallel()
		n, ok := tr.FindByID(404)
		assert.False(t, ok)
		assert.Nil(t, n)
	})
}

func TestIsDescendant(t *testing.T) {
	t.Parallel()

	tr := loadSample(t)

	assert.True(t, tr.isDescendant(11, 1))
	assert.True(t, tr.isDescendant(111, 1))
	assert.False(t, tr.isDescendant(1, 11))
	assert.False(t, tr.isDescendant(12, 11))
	assert.False(t, tr.isDescendant(1, 1))
	assert.False(t, tr.isDescendant(404, 1))
}
