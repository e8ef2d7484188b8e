package database

import (
	"github.com/hritik2004-cse/portfolio-backend/models"
	"github.com/rs/zerolog/log"
)

// Seed populates the four footer collections with the initial data set. It is
// a no-op when social links already exist, so running it repeatedly is safe.
func (d Database) Seed() error {
	count, err := d.socialLinkRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Msg("Footer data already exists, skipping seed")
		return nil
	}

	for _, link := range seedSocialLinks() {
		if err := d.socialLinkRepo.Add(link); err != nil {
			return err
		}
	}

	if err := d.contactInfoRepo.Add(seedContactInfo()); err != nil {
		return err
	}

	for _, link := range seedQuickLinks() {
		if err := d.quickLinkRepo.Add(link); err != nil {
			return err
		}
	}

	for _, tech := range seedTechnologies() {
		if err := d.technologyRepo.Add(tech); err != nil {
			return err
		}
	}

	log.Info().Msg("Footer data seeded")
	return nil
}

func seedSocialLinks() []*models.SocialLink {
	return []*models.SocialLink{
		{
			ID: "github", Name: "GitHub",
			URL:      "https://github.com/hritik2004-cse",
			IconName: "FaGithub", Color: "#24292e",
			Category: "development", Priority: 1, IsActive: true,
			Description: "My code repositories and open source projects",
		},
		{
			ID: "linkedin", Name: "LinkedIn",
			URL:      "https://www.linkedin.com/in/hritik-sharma-oct04/",
			IconName: "FaLinkedin", Color: "#0077B5",
			Category: "professional", Priority: 2, IsActive: true,
			Description: "Professional network and career updates",
		},
		{
			ID: "email", Name: "Email",
			URL:      "mailto:hritiksharma08725@gmail.com",
			IconName: "FaEnvelope", Color: "#EA4335",
			Category: "contact", Priority: 3, IsActive: true,
			Description: "Get in touch via email",
		},
		{
			ID: "youtube", Name: "YouTube",
			URL:      "https://www.youtube.com/@Hritik_is_coding",
			IconName: "FaYoutube", Color: "#FF0000",
			Category: "content", Priority: 4, IsActive: true,
			Description: "My coding tutorials and tech content",
		},
		{
			ID: "twitter", Name: "Twitter",
			URL:      "https://x.com/Shar7176Hritik",
			IconName: "FaTwitter", Color: "#1DA1F2",
			Category: "social", Priority: 5, IsActive: true,
			Description: "Tech tweets and industry insights",
		},
		{
			ID: "instagram", Name: "Instagram",
			URL:      "https://www.instagram.com/hritik_sharma_2004/",
			IconName: "FaInstagram", Color: "#E4405F",
			Category: "social", Priority: 6, IsActive: false,
			Description: "Personal updates and lifestyle content",
		},
		{
			ID: "discord", Name: "Discord",
			URL:      "https://discord.gg/hritiksharma5272",
			IconName: "SiDiscord", Color: "#5865F2",
			Category: "community", Priority: 6, IsActive: true,
			Description: "Join our coding community server",
		},
		{
			ID: "telegram", Name: "Telegram",
			URL:      "https://t.me/hritiksharma08725",
			IconName: "SiTelegram", Color: "#0088CC",
			Category: "messaging", Priority: 7, IsActive: false,
			Description: "Direct messaging and updates",
		},
	}
}

func seedContactInfo() *models.ContactInfo {
	return &models.ContactInfo{
		Name:     "Hritik Sharma",
		Title:    "Full Stack Developer",
		Location: "Aligarh, Uttar Pradesh",
		Email:    "hritiksharma08725@gmail.com",
		Phone:    "+91-XXXXXXXXXX",
		Bio: "Full Stack Developer passionate about creating innovative web solutions. " +
			"Specialized in React, Node.js, and modern web technologies.",
		Website:  "https://hritiksharma.dev",
		IsActive: true,
	}
}

func seedQuickLinks() []*models.QuickLink {
	return []*models.QuickLink{
		{ID: "projects", Name: "Projects", URL: "#projects", Priority: 1, IsActive: true},
		{ID: "about", Name: "About Me", URL: "#about", Priority: 2, IsActive: true},
		{ID: "skills", Name: "Skills", URL: "#skills", Priority: 3, IsActive: true},
		{ID: "contact", Name: "Contact", URL: "#contact", Priority: 4, IsActive: true},
	}
}

func seedTechnologies() []*models.Technology {
	return []*models.Technology{
		{Name: "React", Color: "#61DAFB", Priority: 1, Category: "frontend", IsActive: true},
		{Name: "Node.js", Color: "#339933", Priority: 2, Category: "backend", IsActive: true},
		{Name: "MongoDB", Color: "#47A248", Priority: 3, Category: "database", IsActive: true},
		{Name: "Tailwind", Color: "#06B6D4", Priority: 4, Category: "frontend", IsActive: true},
		{Name: "Vite", Color: "#646CFF", Priority: 5, Category: "tools", IsActive: true},
		{Name: "JavaScript", Color: "#F7DF1E", Priority: 6, Category: "frontend", IsActive: true},
	}
}
