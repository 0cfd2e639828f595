package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is a set of strings persisted as a JSON array in a text column.
type StringList []string

// Value serializes the list for storage.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes the list from storage.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", src)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(l))
}

// Contains reports whether the list contains the given value.
func (l StringList) Contains(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}

// Article is a blog article. Drafts (Published == false) are visible
// only to authenticated viewers.
type Article struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	Title    string `gorm:"not null" json:"title"`
	Subtitle string `json:"subtitle"`
	Category string `gorm:"index" json:"category"`
	Tags     StringList `gorm:"type:text" json:"tags"`
	// Date is the human-readable display date shown on article pages.
	Date     string `json:"date"`
	ReadTime string `json:"read_time"`
	// Author is the display name; AuthorID is the weak owner link.
	Author           string `gorm:"default:Journal" json:"author"`
	AuthorID         *uint  `gorm:"index" json:"author_id,omitempty"`
	AuthorUser       *User  `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author_user,omitempty"`
	HeroImage        string `json:"hero_image"`
	HeroImageCaption string `json:"hero_image_caption"`
	Content          string `gorm:"type:text;not null" json:"content"`
	Published        bool   `gorm:"not null;default:false;index" json:"published"`
	SEOTitle         string `json:"seo_title"`
	SEODescription   string `json:"seo_description"`
	SEOKeywords      string `json:"seo_keywords"`
	CanonicalURL     string `json:"canonical_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// OwnedBy reports whether the article's owner link points at the given user.
func (a *Article) OwnedBy(userID uint) bool {
	return a.AuthorID != nil && *a.AuthorID == userID
}
