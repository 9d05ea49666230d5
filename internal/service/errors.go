package service

import "errors"

var (
	// ErrMissingURL is returned when a bookmark is added without a URL.
	ErrMissingURL = errors.New("bookmark url is required")
	// ErrMissingArchiveContent is returned when an archive is set without raw bytes.
	ErrMissingArchiveContent = errors.New("archive content is required")
	// ErrNoArchive is returned when a bookmark has no archive attached.
	ErrNoArchive = errors.New("bookmark has no archive")
	// ErrNoFavicon is returned when a bookmark has no favicon attached.
	ErrNoFavicon = errors.New("bookmark has no favicon")
)
