package profile

import "errors"

var (
	ErrNotFound      = errors.New("profile not found")
	ErrDuplicateName = errors.New("profile name already exists")
	ErrSealedSecret  = errors.New("sealed secret is corrupt")
)
