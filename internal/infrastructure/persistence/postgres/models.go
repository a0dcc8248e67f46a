package postgres

import "time"

// unixOrZero preserva o zero value para os hooks autoCreateTime e
// autoUpdateTime do GORM preencherem timestamps de registros novos
func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Username  string `gorm:"type:varchar(150);uniqueIndex;uniqueIndex:idx_users_username_email;not null"`
	Email     string `gorm:"type:varchar(254);uniqueIndex;uniqueIndex:idx_users_username_email;not null"`
	Role      string `gorm:"type:varchar(50);not null;index"`
	Bio       string `gorm:"type:text"`
	Superuser bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"type:varchar(256);not null;index"`
	Slug      string `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// GenreModel é o model GORM para gêneros
type GenreModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"type:varchar(256);not null;index"`
	Slug      string `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (GenreModel) TableName() string {
	return "genres"
}

// TitleModel é o model GORM para obras.
// CategoryID é nullable: apagar a categoria desassocia as obras
// (set null), não as remove.
type TitleModel struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(256);not null;index"`
	Year        int            `gorm:"not null;index"`
	Description string         `gorm:"type:text"`
	CategoryID  *string        `gorm:"type:uuid;index"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Genres      []GenreModel   `gorm:"many2many:title_genres;constraint:OnDelete:CASCADE"`
	CreatedAt   int64          `gorm:"autoCreateTime"`
	UpdatedAt   int64          `gorm:"autoUpdateTime"`
}

func (TitleModel) TableName() string {
	return "titles"
}

// ReviewModel é o model GORM para reviews.
// O índice único (title_id, author_id) é a garantia autoritativa de
// que cada autor avalia cada obra no máximo uma vez; o pre-check do
// serviço pode correr contra escritas concorrentes.
type ReviewModel struct {
	ID        string      `gorm:"type:uuid;primaryKey"`
	TitleID   string      `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_title_author"`
	Title     *TitleModel `gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE"`
	AuthorID  string      `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_title_author;index"`
	Author    *UserModel  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text      string      `gorm:"type:text;not null"`
	Score     int         `gorm:"not null;check:score >= 1 AND score <= 10"`
	CreatedAt int64       `gorm:"autoCreateTime;index"`
	UpdatedAt int64       `gorm:"autoUpdateTime"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

// CommentModel é o model GORM para comentários de reviews
type CommentModel struct {
	ID        string       `gorm:"type:uuid;primaryKey"`
	ReviewID  string       `gorm:"type:uuid;not null;index"`
	Review    *ReviewModel `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	AuthorID  string       `gorm:"type:uuid;not null;index"`
	Author    *UserModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text      string       `gorm:"type:text;not null"`
	CreatedAt int64        `gorm:"autoCreateTime;index"`
	UpdatedAt int64        `gorm:"autoUpdateTime"`
}

func (CommentModel) TableName() string {
	return "comments"
}
