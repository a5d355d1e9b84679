package domain

import "time"

// Developer is a game studio.
type Developer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Genre classifies games.
type Genre struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Platform is a system a game runs on.
type Platform struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *Developer) GetID() uint      { return e.ID }
func (e *Developer) GetName() string  { return e.Name }
func (e *Developer) SetName(n string) { e.Name = n }
func (e *Genre) GetID() uint          { return e.ID }
func (e *Genre) GetName() string      { return e.Name }
func (e *Genre) SetName(n string)     { e.Name = n }
func (e *Platform) GetID() uint       { return e.ID }
func (e *Platform) GetName() string   { return e.Name }
func (e *Platform) SetName(n string)  { e.Name = n }

// Game is a Media variant.
type Game struct {
	Media `gorm:"embedded"`

	DeveloperID uint       `json:"developerId" gorm:"not null;index"`
	Developer   *Developer `json:"developer,omitempty" gorm:"foreignKey:DeveloperID;constraint:OnDelete:RESTRICT"`
	Genres      []Genre    `json:"genres" gorm:"many2many:game_genres"`
	Platforms   []Platform `json:"platforms" gorm:"many2many:game_platforms"`
	Price       float64    `json:"price" gorm:"not null;check:price >= 0 AND price <= 1000"`
}

func (g *Game) GetMediaType() MediaType { return MediaTypeGame }

// PlatformNames returns the names of the game's platforms.
func (g *Game) PlatformNames() []string {
	names := make([]string, len(g.Platforms))
	for i, p := range g.Platforms {
		names[i] = p.Name
	}
	return names
}

// GenreNames returns the names of the game's genres.
func (g *Game) GenreNames() []string {
	names := make([]string, len(g.Genres))
	for i, genre := range g.Genres {
		names[i] = genre.Name
	}
	return names
}

// Movie is a Media variant.
type Movie struct {
	Media `gorm:"embedded"`

	Duration  int             `json:"duration" gorm:"not null;check:duration >= 1 AND duration <= 1440"`
	CrewRoles []MovieCrewRole `json:"crewRoles" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

func (m *Movie) GetMediaType() MediaType { return MediaTypeMovie }

// MovieCrew is a person who works on movies. Entries are owned by their creator.
type MovieCrew struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"fullName" gorm:"size:150;not null"`
	BirthDate time.Time `json:"birthDate" gorm:"not null"`
	CreatorID string    `json:"creatorId" gorm:"size:128;not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName pins the crew table name.
func (MovieCrew) TableName() string {
	return "movie_crew"
}

// MovieCrewRole links a crew member to a movie. Position keeps the caller's order.
type MovieCrewRole struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	MovieID       uint         `json:"-" gorm:"not null;index"`
	CrewID        uint         `json:"crewId" gorm:"not null;index"`
	Crew          *MovieCrew   `json:"crew,omitempty" gorm:"foreignKey:CrewID;constraint:OnDelete:RESTRICT"`
	Role          CrewRoleType `json:"role" gorm:"size:32;not null"`
	CharacterName string       `json:"characterName,omitempty" gorm:"size:100"`
	Position      int          `json:"position" gorm:"not null"`
}

// User is a catalog user. The id is the identity subject of the principal.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:128"`
	UserName  string    `json:"userName" gorm:"size:50"`
	JoinDate  time.Time `json:"joinDate" gorm:"not null"`
	Active    bool      `json:"active" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Deactivate performs the logical delete.
func (u *User) Deactivate() {
	u.UserName = ""
	u.Active = false
}

// Like marks a media item as liked by a user.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"size:128;not null;index"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	MediaID   uint      `json:"mediaId" gorm:"not null;index"`
	MediaKey  *MediaKey `json:"-" gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review is a scored, written opinion on a media item.
type Review struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"userId" gorm:"size:128;not null;index"`
	User          *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	MediaID       uint      `json:"mediaId" gorm:"not null;index"`
	MediaKey      *MediaKey `json:"-" gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE"`
	Score         int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 10"`
	WrittenReview string    `json:"writtenReview" gorm:"size:2000"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
