package entities

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"` // never serialized
}

type Book struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Title         string  `gorm:"size:512" json:"title"`
	Author        string  `gorm:"size:256" json:"author"`
	Price         float64 `json:"price"`
	PublishedYear int     `json:"published_year"`
	Description   string  `gorm:"type:text" json:"description"`
}
