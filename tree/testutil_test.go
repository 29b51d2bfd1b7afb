package tree

import (
	"testing"

	"github.com/brettbedarf/webtree"
	"github.com/stretchr/testify/require"
)

// folderRec builds a folder record with non-nil empty collections so it compares
// equal to a Snapshot
func folderRec(id int64, name string, folders []webtree.FolderRecord, files []webtree.FileRecord) webtree.FolderRecord {
	if folders == nil {
		folders = []webtree.FolderRecord{}
	}
	if files == nil {
		files = []webtree.FileRecord{}
	}
	return webtree.FolderRecord{
		ID:          id,
		Name:        name,
		Folders:     folders,
		Files:       files,
		Permissions: webtree.NewPermissionSet(),
	}
}

func fileRec(id int64, name string, readers ...webtree.RoleName) webtree.FileRecord {
	perms := webtree.NewPermissionSet()
	perms.Read = webtree.NewRoleSet(readers...)
	return webtree.FileRecord{ID: id, Name: name, Permissions: perms}
}

// sampleRecords is the F1{F11{f111,f112}, F12{f121,f122}, f101, f102} fixture
func sampleRecords() []webtree.FolderRecord {
	return []webtree.FolderRecord{
		folderRec(1, "Folder 1",
			[]webtree.FolderRecord{
				folderRec(11, "Subfolder 1.1", nil, []webtree.FileRecord{
					fileRec(111, "File 1.txt", "user"),
					fileRec(112, "File 2.jpg"),
				}),
				folderRec(12, "Subfolder 1.2", nil, []webtree.FileRecord{
					fileRec(121, "File 3.docx"),
					fileRec(122, "File 4.pdf"),
				}),
			},
			[]webtree.FileRecord{
				fileRec(101, "File 5.txt"),
				fileRec(102, "File 6.jpg"),
			},
		),
	}
}

func loadSample(t *testing.T) *Tree {
	t.Helper()
	tr, err := Load(sampleRecords())
	require.NoError(t, err)
	return tr
}

func ids(nodes []*Node) []int64 {
	out := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID())
	}
	return out
}
