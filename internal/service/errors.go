package service

import "errors"

var (
	// ErrRecipeNotFound indicates the requested recipe does not exist
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrImageUpload indicates the media host rejected or failed an upload
	ErrImageUpload = errors.New("image upload failed")

	// ErrImageDelete indicates a remote image could not be deleted
	ErrImageDelete = errors.New("image deletion failed")
)
