package domain

import "time"

// MediaType is the concrete variant of a Media item.
type MediaType string

const (
	MediaTypeGame  MediaType = "GAME"
	MediaTypeMovie MediaType = "MOVIE"
)

// Media holds the fields shared by every variant. Variants embed it; the id
// comes from the media_keys allocator so it is unique across variants.
type Media struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title       string    `json:"title" gorm:"size:200;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	ReleaseDate time.Time `json:"releaseDate"`
	MediaURL    string    `json:"mediaUrl" gorm:"size:500"`
	ImageURL    string    `json:"imageUrl" gorm:"size:500"`
	CreatorID   string    `json:"creatorId" gorm:"size:128;not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Computed at read time from likes and reviews.
	LikeCount   int64 `json:"likeCount" gorm:"->;-:migration"`
	ReviewCount int64 `json:"reviewCount" gorm:"->;-:migration"`
}

// MediaItem is implemented by every Media variant.
type MediaItem interface {
	GetID() uint
	GetTitle() string
	GetMediaType() MediaType
	GetCreatorID() string
	Base() *Media
}

func (m *Media) GetID() uint          { return m.ID }
func (m *Media) GetTitle() string     { return m.Title }
func (m *Media) GetCreatorID() string { return m.CreatorID }
func (m *Media) Base() *Media         { return m }

// MediaKey allocates ids shared by all Media variants.
type MediaKey struct {
	ID        uint      `gorm:"primaryKey"`
	MediaType MediaType `gorm:"size:16;not null"`
	CreatedAt time.Time
}
