// Package seed provides helpers to create demo data for the blog database.
// These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"journal/internal/content"
	"journal/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var seedCategories = []string{
	"Mindfulness", "Creativity", "Travel", "Slow Living", "Books",
}

var seedTags = []string{
	"calm", "writing", "habits", "nature", "reading",
	"reflection", "design", "food", "mornings", "craft",
}

// CreateUser persists a user with the given role and a hashed password.
func (f *Factory) CreateUser(name, email, password string, role models.UserRole) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildArticle constructs a realistic article without persisting it.
func (f *Factory) BuildArticle(author *models.User, overrides ...func(*models.Article)) *models.Article {
	title := titleCase(strings.TrimSuffix(gofakeit.Sentence(4+f.rand.Intn(4)), "."))
	body := f.articleBody()

	createdAt := time.Now().Add(-time.Duration(f.rand.Intn(180*24)) * time.Hour)
	article := &models.Article{
		Slug:      content.GenerateSlug(title),
		Title:     title,
		Subtitle:  strings.TrimSuffix(gofakeit.Sentence(8+f.rand.Intn(6)), "."),
		Category:  seedCategories[f.rand.Intn(len(seedCategories))],
		Tags:      f.pickTags(),
		Date:      createdAt.Format("January 2, 2006"),
		ReadTime:  content.CalculateReadTime(body),
		Content:   body,
		HeroImage: fmt.Sprintf("https://picsum.photos/seed/%s/1200/700", gofakeit.UUID()),
		Published: f.rand.Intn(4) != 0, // roughly a quarter stay drafts
		CreatedAt: createdAt,
	}
	if author != nil {
		article.AuthorID = &author.ID
		article.Author = author.Name
	}

	for _, override := range overrides {
		override(article)
	}
	return article
}

// CreateArticle builds and persists an article.
func (f *Factory) CreateArticle(author *models.User, overrides ...func(*models.Article)) (*models.Article, error) {
	article := f.BuildArticle(author, overrides...)
	if err := f.db.Create(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

func (f *Factory) articleBody() string {
	var b strings.Builder
	paragraphs := 4 + f.rand.Intn(5)
	for i := 0; i < paragraphs; i++ {
		if i > 0 && f.rand.Intn(3) == 0 {
			b.WriteString("<h2>" + strings.TrimSuffix(gofakeit.Sentence(3+f.rand.Intn(3)), ".") + "</h2>\n")
		}
		b.WriteString("<p>" + gofakeit.Paragraph(1, 4, 12, " ") + "</p>\n")
	}
	return b.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (f *Factory) pickTags() models.StringList {
	count := 1 + f.rand.Intn(3)
	picked := make(models.StringList, 0, count)
	for _, i := range f.rand.Perm(len(seedTags))[:count] {
		picked = append(picked, seedTags[i])
	}
	return picked
}
