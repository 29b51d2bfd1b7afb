// Package requests converts tree documents to and from the core record types
package requests

import (
	"bytes"
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/webtree"
)

// Unmarshal decodes a tree document in format. The document is either an
// object with a "folders" list or a bare list of root folders.
func Unmarshal(data []byte, format webtree.Format) ([]webtree.FolderRecord, error) {
	var (
		folders []FolderDTO
		err     error
	)
	switch format {
	case webtree.FormatJSON:
		folders, err = unmarshalJSON(data)
	case webtree.FormatYAML:
		folders, err = unmarshalYAML(data)
	default:
		return nil, fmt.Errorf("unknown document format: %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s document: %w", format, err)
	}

	if err := validation.Validate(folders); err != nil {
		return nil, fmt.Errorf("invalid tree document: %w", err)
	}

	records := make([]webtree.FolderRecord, 0, len(folders))
	for _, f := range folders {
		records = append(records, convertFolderDTO(f))
	}
	return records, nil
}

func unmarshalJSON(data []byte) ([]FolderDTO, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var folders []FolderDTO
		if err := json.Unmarshal(trimmed, &folders); err != nil {
			return nil, err
		}
		return folders, nil
	}
	var doc DocumentDTO
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Folders, nil
}

func unmarshalYAML(data []byte) ([]FolderDTO, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	// empty document
	if len(root.Content) == 0 {
		return nil, nil
	}
	if root.Content[0].Kind == yaml.SequenceNode {
		var folders []FolderDTO
		if err := root.Content[0].Decode(&folders); err != nil {
			return nil, err
		}
		return folders, nil
	}
	var doc DocumentDTO
	if err := root.Content[0].Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Folders, nil
}

// Marshal encodes records as a {"folders": [...]} document in format
func Marshal(records []webtree.FolderRecord, format webtree.Format) ([]byte, error) {
	doc := DocumentDTO{Folders: make([]FolderDTO, 0, len(records))}
	for _, r := range records {
		doc.Folders = append(doc.Folders, convertFolderRecord(r))
	}
	switch format {
	case webtree.FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case webtree.FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unknown document format: %q", format)
	}
}

// Conversion logic with defaults in the unmarshaling layer
func convertFolderDTO(dto FolderDTO) webtree.FolderRecord {
	rec := webtree.FolderRecord{
		ID:          *dto.ID,
		Name:        dto.Name,
		Folders:     make([]webtree.FolderRecord, 0, len(dto.Folders)),
		Files:       make([]webtree.FileRecord, 0, len(dto.Files)),
		Permissions: convertPermissionsDTO(dto.Permissions),
	}
	for _, sub := range dto.Folders {
		rec.Folders = append(rec.Folders, convertFolderDTO(sub))
	}
	for _, f := range dto.Files {
		rec.Files = append(rec.Files, webtree.FileRecord{
			ID:          *f.ID,
			Name:        f.Name,
			Permissions: convertPermissionsDTO(f.Permissions),
		})
	}
	return rec
}

func convertPermissionsDTO(dto *PermissionsDTO) webtree.PermissionSet {
	if dto == nil {
		return webtree.NewPermissionSet()
	}
	return webtree.PermissionSet{
		Read:   toRoleSet(dto.Read),
		Move:   toRoleSet(dto.Move),
		Delete: toRoleSet(dto.Delete),
	}
}

func toRoleSet(roles []string) webtree.RoleSet {
	s := webtree.NewRoleSet()
	for _, r := range roles {
		s[webtree.RoleName(r)] = struct{}{}
	}
	return s
}

func convertFolderRecord(rec webtree.FolderRecord) FolderDTO {
	dto := FolderDTO{
		ID:          &rec.ID,
		Name:        rec.Name,
		Permissions: convertPermissionSet(rec.Permissions),
	}
	for _, sub := range rec.Folders {
		dto.Folders = append(dto.Folders, convertFolderRecord(sub))
	}
	for _, f := range rec.Files {
		dto.Files = append(dto.Files, FileDTO{
			ID:          &f.ID,
			Name:        f.Name,
			Permissions: convertPermissionSet(f.Permissions),
		})
	}
	return dto
}

func convertPermissionSet(p webtree.PermissionSet) *PermissionsDTO {
	return &PermissionsDTO{
		Read:   fromRoleSet(p.Read),
		Move:   fromRoleSet(p.Move),
		Delete: fromRoleSet(p.Delete),
	}
}

func fromRoleSet(s webtree.RoleSet) []string {
	roles := s.Roles()
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
