package webtree

// FolderRecord is the nested, document-shaped representation of a folder as
// supplied by a data source and returned by snapshots
type FolderRecord struct {
	ID          int64
	Name        string
	Folders     []FolderRecord
	Files       []FileRecord
	Permissions PermissionSet
}

// FileRecord is the document-shaped representation of a file
type FileRecord struct {
	ID          int64
	Name        string
	Permissions PermissionSet
}
