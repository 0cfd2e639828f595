package seed

import (
	"fmt"
	"log"
	"time"

	"journal/internal/content"
	"journal/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with demo content.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all rows from every seeded table.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []interface{}{
		&models.Media{}, &models.Article{}, &models.SiteSettings{}, &models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return nil
}

// Run seeds an admin account, default site settings, the showcase articles,
// and a spread of generated ones.
func (s *Seeder) Run(articleCount int) error {
	admin, err := s.factory.CreateUser("Admin", "admin@journal.local", "ChangeMe-Admin1!", models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Printf("Created admin user %s (password: ChangeMe-Admin1!)", admin.Email)

	editor, err := s.factory.CreateUser("Editor", "editor@journal.local", "ChangeMe-Editor1!", models.RoleEditor)
	if err != nil {
		return fmt.Errorf("failed to create editor user: %w", err)
	}

	settings := models.DefaultSiteSettings()
	if err := s.db.Create(settings).Error; err != nil {
		return fmt.Errorf("failed to create site settings: %w", err)
	}

	if err := s.showcaseArticles(admin); err != nil {
		return err
	}

	authors := []*models.User{admin, editor}
	for i := 0; i < articleCount; i++ {
		author := authors[i%len(authors)]
		if _, err := s.factory.CreateArticle(author); err != nil {
			return fmt.Errorf("failed to create article %d: %w", i, err)
		}
	}
	log.Printf("Seeded %d generated articles", articleCount)
	return nil
}

// showcaseArticles creates the hand-written demo posts the frontend ships
// with.
func (s *Seeder) showcaseArticles(author *models.User) error {
	showcase := []struct {
		title    string
		subtitle string
		category string
		tags     models.StringList
		body     string
	}{
		{
			title:    "Finding Peace In Chaos",
			subtitle: "On stillness, attention, and the art of staying put",
			category: "Mindfulness",
			tags:     models.StringList{"calm", "reflection"},
			body: "<p>There is a particular kind of quiet that only arrives after you stop looking for it. " +
				"It does not come when summoned and it rarely announces itself.</p>\n" +
				"<h2>The practice</h2>\n" +
				"<p>Start small. Sit with the noise instead of against it. The chaos does not need " +
				"to resolve for you to find your footing inside it.</p>",
		},
		{
			title:    "A Slower Kind Of Morning",
			subtitle: "What changed when I stopped reaching for my phone",
			category: "Slow Living",
			tags:     models.StringList{"mornings", "habits"},
			body: "<p>The first hour of the day sets the grain of the rest. For years I gave that hour " +
				"away without noticing.</p>\n" +
				"<p>Now it belongs to coffee, a notebook, and an open window. Nothing profound happens. " +
				"That turns out to be the point.</p>",
		},
		{
			title:    "Notes From The Shelf",
			subtitle: "Three books that rearranged my thinking this year",
			category: "Books",
			tags:     models.StringList{"reading", "reflection"},
			body: "<p>Some books inform. A rarer kind rearranges the furniture, so that every thought " +
				"afterwards has to walk a different route through the room.</p>",
		},
	}

	for _, a := range showcase {
		article := &models.Article{
			Slug:      content.GenerateSlug(a.title),
			Title:     a.title,
			Subtitle:  a.subtitle,
			Category:  a.category,
			Tags:      a.tags,
			ReadTime:  content.CalculateReadTime(a.body),
			Content:   a.body,
			Published: true,
			AuthorID:  &author.ID,
			Author:    author.Name,
		}
		article.Date = time.Now().Format("January 2, 2006")
		if err := s.db.Create(article).Error; err != nil {
			return fmt.Errorf("failed to create showcase article %q: %w", a.title, err)
		}
	}
	log.Printf("Seeded %d showcase articles", len(showcase))
	return nil
}
