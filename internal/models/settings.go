package models

import "time"

// SiteSettingsID is the fixed primary key of the settings singleton row.
const SiteSettingsID = "default"

// SiteSettings is the single persisted record holding site-wide editable copy.
// Exactly one row exists; reads lazily create it with defaults.
type SiteSettings struct {
	ID              string `gorm:"primaryKey;size:32" json:"id"`
	SiteName        string `json:"site_name"`
	SiteTagline     string `json:"site_tagline"`
	SiteDescription string `gorm:"type:text" json:"site_description"`

	SocialTwitter   string `json:"social_twitter"`
	SocialGithub    string `json:"social_github"`
	SocialLinkedin  string `json:"social_linkedin"`
	SocialInstagram string `json:"social_instagram"`
	FooterText      string `json:"footer_text"`

	HeroTitle       string `json:"hero_title"`
	HeroTitleAccent string `json:"hero_title_accent"`
	HeroDescription string `gorm:"type:text" json:"hero_description"`
	HeroImage       string `json:"hero_image"`
	HeroCtaText     string `json:"hero_cta_text"`
	HeroCtaLink     string `json:"hero_cta_link"`

	AboutHeroTitle       string `json:"about_hero_title"`
	AboutHeroSubtitle    string `json:"about_hero_subtitle"`
	AboutIntroTitle      string `json:"about_intro_title"`
	AboutIntroParagraph1 string `gorm:"type:text" json:"about_intro_paragraph1"`
	AboutIntroParagraph2 string `gorm:"type:text" json:"about_intro_paragraph2"`
	AboutIntroParagraph3 string `gorm:"type:text" json:"about_intro_paragraph3"`
	AboutEmail           string `json:"about_email"`
	AboutImage           string `json:"about_image"`

	ValuesSectionTitle string `json:"values_section_title"`
	Value1Title        string `json:"value1_title"`
	Value1Description  string `gorm:"type:text" json:"value1_description"`
	Value2Title        string `json:"value2_title"`
	Value2Description  string `gorm:"type:text" json:"value2_description"`
	Value3Title        string `json:"value3_title"`
	Value3Description  string `gorm:"type:text" json:"value3_description"`

	NewsletterTitle       string `json:"newsletter_title"`
	NewsletterDescription string `gorm:"type:text" json:"newsletter_description"`
	NewsletterImage       string `json:"newsletter_image"`
	ShowNewsletter        bool   `gorm:"not null;default:true" json:"show_newsletter"`

	AllowRegistration bool `gorm:"not null;default:true" json:"allow_registration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSiteSettings returns the fully-defaulted singleton row used when the
// settings table is empty.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:                   SiteSettingsID,
		SiteName:             "Journal",
		SiteTagline:          "A personal blog about life, thoughts, and creativity.",
		SiteDescription:      "Welcome to my personal blog where I share my thoughts, experiences, and creative endeavors.",
		FooterText:           "© 2025 Journal. All rights reserved.",
		HeroTitle:            "Thoughts,",
		HeroTitleAccent:      "stories & ideas",
		HeroDescription:      "A space for reflection, creativity, and the quiet moments that shape who we become. Welcome to my corner of the internet.",
		HeroImage:            "https://images.unsplash.com/photo-1516414447565-b14be0adf13e?w=800&q=80",
		HeroCtaText:          "Learn more about me →",
		HeroCtaLink:          "/about",
		AboutHeroTitle:       "Hello, I'm",
		AboutHeroSubtitle:    "a storyteller",
		AboutIntroTitle:      "A little about me",
		AboutIntroParagraph1: "I believe in the power of words to inspire, heal, and connect us. My writing explores the intersection of mindfulness, creativity, and everyday life, finding meaning in the mundane and beauty in the ordinary.",
		AboutIntroParagraph2: "When I'm not writing, you'll find me wandering through bookshops, experimenting in the kitchen, or getting lost in nature. I'm passionate about slow living, intentional design, and the art of doing nothing.",
		AboutIntroParagraph3: "This blog is my attempt to share what I'm learning along the way: imperfect thoughts, honest reflections, and the occasional moment of clarity. Thank you for being here.",
		AboutEmail:           "hello@journal.com",
		AboutImage:           "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=600&q=80",
		ValuesSectionTitle:   "What I believe in",
		Value1Title:          "Intentionality",
		Value1Description:    "Every choice we make shapes our life. I believe in making those choices with purpose and awareness.",
		Value2Title:          "Simplicity",
		Value2Description:    "In a world of excess, simplicity is a radical act. Less noise, more signal. Less clutter, more clarity.",
		Value3Title:          "Connection",
		Value3Description:    "We're all walking each other home. I believe in building bridges through stories and shared experiences.",
		NewsletterTitle:      "Stay in touch",
		NewsletterDescription: "Subscribe to receive occasional updates, new posts, and thoughts delivered straight to your inbox.",
		NewsletterImage:      "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=800&q=80",
		ShowNewsletter:       true,
		AllowRegistration:    true,
	}
}
