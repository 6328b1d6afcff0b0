package domain

import (
	"time"
)

// MediaType is the category a submission's file belongs to. The media host
// uses it to pick image or video handling on its side.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

func (m MediaType) Valid() bool {
	return m == MediaTypeImage || m == MediaTypeVideo
}

// Submission is one user-contributed media item plus its metadata. MediaURL
// is only ever set after the media host confirmed the upload. Records are
// immutable once stored.
type Submission struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	MediaURL  string    `bson:"mediaUrl" json:"mediaUrl"`
	MediaType MediaType `bson:"mediaType" json:"mediaType"`
	Caption   string    `bson:"caption,omitempty" json:"caption"`
	DateAdded time.Time `bson:"dateAdded" json:"dateAdded"`
}
