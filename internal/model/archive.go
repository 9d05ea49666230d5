package model

import "gorm.io/gorm"

// Archive holds the stored page content of one bookmark. Bytes and
// Formatted are compressed with the codec named in Compression. PlainText
// is the extracted text used by content search; nil means the archive is
// not searchable by content.
type Archive struct {
	gorm.Model
	ID          string `gorm:"primaryKey;uuid;not null"`
	OwnerID     string `gorm:"uuid;not null;index"`
	BookmarkID  string `gorm:"uuid;not null;index"`
	Bytes       []byte `gorm:"not null"`
	PlainText   *string
	Formatted   []byte
	Mime        string
	Compression string
}

// ByteCount returns the stored size of the archive across all renderings.
func (a *Archive) ByteCount() int64 {
	sum := int64(len(a.Bytes)) + int64(len(a.Formatted))
	if a.PlainText != nil {
		sum += int64(len(*a.PlainText))
	}
	return sum
}
