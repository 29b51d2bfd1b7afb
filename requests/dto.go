package requests

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DocumentDTO is the wire representation of a tree document
type DocumentDTO struct {
	Folders []FolderDTO `json:"folders" yaml:"folders"`
}

// FolderDTO is the wire representation of [webtree.FolderRecord]
type FolderDTO struct {
	ID          *int64          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Folders     []FolderDTO     `json:"folders,omitempty" yaml:"folders,omitempty"`
	Files       []FileDTO       `json:"files,omitempty" yaml:"files,omitempty"`
	Permissions *PermissionsDTO `json:"permissions,omitempty" yaml:"permissions,omitempty"` // Missing = admin only
}

// FileDTO is the wire representation of [webtree.FileRecord]
type FileDTO struct {
	ID          *int64          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Permissions *PermissionsDTO `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// PermissionsDTO lists the roles granted each capability
type PermissionsDTO struct {
	Read   []string `json:"read" yaml:"read"`
	Move   []string `json:"move" yaml:"move"`
	Delete []string `json:"delete" yaml:"delete"`
}

// Validate checks the basic shape of a folder and, recursively, its children
func (d FolderDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.NotNil),
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Folders),
		validation.Field(&d.Files),
	)
}

// Validate checks the basic shape of a file
func (d FileDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.NotNil),
		validation.Field(&d.Name, validation.Required),
	)
}
