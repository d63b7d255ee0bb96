package model

import (
	"fmt"
	"time"
)

// MediaType is a bit flag describing what kind of image a media file is. It
// tracks whether an image is an icon or a banner, and whether it is the
// small variant.
type MediaType int

const (
	// MediaSmall marks the reduced-size variant of an icon or banner
	MediaSmall MediaType = 1 << iota

	// MediaIcon is a square game icon
	MediaIcon

	// MediaBanner is a wide cover image
	MediaBanner
)

const (
	MediaIconSmall   = MediaIcon | MediaSmall
	MediaBannerSmall = MediaBanner | MediaSmall
)

// IsIcon returns true if the type has the icon flag set
func (mt MediaType) IsIcon() bool {
	return mt&MediaIcon != 0
}

// IsBanner returns true if the type has the banner flag set
func (mt MediaType) IsBanner() bool {
	return mt&MediaBanner != 0
}

// Valid reports whether the type is one of the supported combinations.
// An image cannot be both an icon and a banner.
func (mt MediaType) Valid() bool {
	switch mt {
	case MediaIcon, MediaIconSmall, MediaBanner, MediaBannerSmall:
		return true
	}
	return false
}

// String returns a short name for the media type
func (mt MediaType) String() string {
	switch mt {
	case MediaIcon:
		return "icon"
	case MediaIconSmall:
		return "icon-small"
	case MediaBanner:
		return "banner"
	case MediaBannerSmall:
		return "banner-small"
	}
	return fmt.Sprintf("invalid(%d)", int(mt))
}

// Filename returns the cache file name for a game slug. Icons are stored as
// prefixed PNG files so they can double as desktop icons, banners as JPEG.
func (mt MediaType) Filename(slug string) (string, error) {
	if mt.IsBanner() {
		return slug + ".jpg", nil
	}
	if mt.IsIcon() {
		return "playdeck_" + slug + ".png", nil
	}
	return "", fmt.Errorf("invalid media type %s", mt)
}

// MediaJob represents a single media fetch unit handed to the loader
type MediaJob struct {
	ID         string
	Slug       string
	URL        string
	Type       MediaType
	Status     JobStatus
	LastError  string    // last error message if any
	OutputPath string    // path to the cached file
	StartedAt  time.Time // when the fetch started
	FinishedAt time.Time // when the fetch finished
}
