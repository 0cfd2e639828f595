package service

import (
	"context"

	"journal/internal/authz"
	"journal/internal/cache"
	"journal/internal/models"
	"journal/internal/repository"
)

type SettingsService struct {
	settingsRepo repository.SettingsRepository
	roleOf       func(ctx context.Context, userID uint) (models.UserRole, error)
}

// UpdateSettingsInput is a partial update. Nil pointers leave fields alone,
// so clearing a text field means sending an explicit empty string.
type UpdateSettingsInput struct {
	UserID uint

	SiteName        *string `json:"site_name"`
	SiteTagline     *string `json:"site_tagline"`
	SiteDescription *string `json:"site_description"`

	SocialTwitter   *string `json:"social_twitter"`
	SocialGithub    *string `json:"social_github"`
	SocialLinkedin  *string `json:"social_linkedin"`
	SocialInstagram *string `json:"social_instagram"`
	FooterText      *string `json:"footer_text"`

	HeroTitle       *string `json:"hero_title"`
	HeroTitleAccent *string `json:"hero_title_accent"`
	HeroDescription *string `json:"hero_description"`
	HeroImage       *string `json:"hero_image"`
	HeroCtaText     *string `json:"hero_cta_text"`
	HeroCtaLink     *string `json:"hero_cta_link"`

	AboutHeroTitle       *string `json:"about_hero_title"`
	AboutHeroSubtitle    *string `json:"about_hero_subtitle"`
	AboutIntroTitle      *string `json:"about_intro_title"`
	AboutIntroParagraph1 *string `json:"about_intro_paragraph1"`
	AboutIntroParagraph2 *string `json:"about_intro_paragraph2"`
	AboutIntroParagraph3 *string `json:"about_intro_paragraph3"`
	AboutEmail           *string `json:"about_email"`
	AboutImage           *string `json:"about_image"`

	ValuesSectionTitle *string `json:"values_section_title"`
	Value1Title        *string `json:"value1_title"`
	Value1Description  *string `json:"value1_description"`
	Value2Title        *string `json:"value2_title"`
	Value2Description  *string `json:"value2_description"`
	Value3Title        *string `json:"value3_title"`
	Value3Description  *string `json:"value3_description"`

	NewsletterTitle       *string `json:"newsletter_title"`
	NewsletterDescription *string `json:"newsletter_description"`
	NewsletterImage       *string `json:"newsletter_image"`
	ShowNewsletter        *bool   `json:"show_newsletter"`

	AllowRegistration *bool `json:"allow_registration"`
}

func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	roleOf func(ctx context.Context, userID uint) (models.UserRole, error),
) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, roleOf: roleOf}
}

// Get serves the settings singleton through the cache.
func (s *SettingsService) Get(ctx context.Context) (*models.SiteSettings, error) {
	var cached models.SiteSettings
	if found, _ := cache.GetJSON(ctx, cache.SettingsKey, &cached); found {
		return &cached, nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, cache.SettingsKey, settings, cache.SettingsTTL)
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, in UpdateSettingsInput) (*models.SiteSettings, error) {
	role, err := s.roleOf(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !authz.CanManageSettings(role) {
		return nil, models.NewForbiddenError("You cannot change site settings")
	}

	fields := settingsFields(in)
	settings, err := s.settingsRepo.Update(ctx, fields)
	if err != nil {
		return nil, err
	}

	cache.InvalidateSettings(ctx)
	return settings, nil
}

// settingsFields maps the provided pointers onto column names.
func settingsFields(in UpdateSettingsInput) map[string]interface{} {
	fields := make(map[string]interface{})
	setStr := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setBool := func(col string, v *bool) {
		if v != nil {
			fields[col] = *v
		}
	}

	setStr("site_name", in.SiteName)
	setStr("site_tagline", in.SiteTagline)
	setStr("site_description", in.SiteDescription)
	setStr("social_twitter", in.SocialTwitter)
	setStr("social_github", in.SocialGithub)
	setStr("social_linkedin", in.SocialLinkedin)
	setStr("social_instagram", in.SocialInstagram)
	setStr("footer_text", in.FooterText)
	setStr("hero_title", in.HeroTitle)
	setStr("hero_title_accent", in.HeroTitleAccent)
	setStr("hero_description", in.HeroDescription)
	setStr("hero_image", in.HeroImage)
	setStr("hero_cta_text", in.HeroCtaText)
	setStr("hero_cta_link", in.HeroCtaLink)
	setStr("about_hero_title", in.AboutHeroTitle)
	setStr("about_hero_subtitle", in.AboutHeroSubtitle)
	setStr("about_intro_title", in.AboutIntroTitle)
	setStr("about_intro_paragraph1", in.AboutIntroParagraph1)
	setStr("about_intro_paragraph2", in.AboutIntroParagraph2)
	setStr("about_intro_paragraph3", in.AboutIntroParagraph3)
	setStr("about_email", in.AboutEmail)
	setStr("about_image", in.AboutImage)
	setStr("values_section_title", in.ValuesSectionTitle)
	setStr("value1_title", in.Value1Title)
	setStr("value1_description", in.Value1Description)
	setStr("value2_title", in.Value2Title)
	setStr("value2_description", in.Value2Description)
	setStr("value3_title", in.Value3Title)
	setStr("value3_description", in.Value3Description)
	setStr("newsletter_title", in.NewsletterTitle)
	setStr("newsletter_description", in.NewsletterDescription)
	setStr("newsletter_image", in.NewsletterImage)
	setBool("show_newsletter", in.ShowNewsletter)
	setBool("allow_registration", in.AllowRegistration)

	return fields
}
