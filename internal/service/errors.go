package service

import "errors"

var (
	ErrNotSignedIn     = errors.New("not signed in")
	ErrMalformedToken  = errors.New("stored access token is malformed")
	ErrNoDrafts        = errors.New("no drafts to submit")
	ErrMatchNotFound   = errors.New("match not found")
	ErrNothingToUpdate = errors.New("nothing to update")
)
