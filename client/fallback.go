package client

import "github.com/hritik2004-cse/portfolio-backend/models"

// FallbackFooterData returns the static data set bundled with the front end,
// the same records the server seeds from. Only the entries shown publicly are
// included, already sorted by priority.
func FallbackFooterData() *FooterData {
	return &FooterData{
		SocialLinks: []*models.SocialLink{
			{ID: "github", Name: "GitHub", URL: "https://github.com/hritik2004-cse", IconName: "FaGithub", Color: "#24292e", Category: "development", Priority: 1, IsActive: true},
			{ID: "linkedin", Name: "LinkedIn", URL: "https://www.linkedin.com/in/hritik-sharma-oct04/", IconName: "FaLinkedin", Color: "#0077B5", Category: "professional", Priority: 2, IsActive: true},
			{ID: "email", Name: "Email", URL: "mailto:hritiksharma08725@gmail.com", IconName: "FaEnvelope", Color: "#EA4335", Category: "contact", Priority: 3, IsActive: true},
			{ID: "youtube", Name: "YouTube", URL: "https://www.youtube.com/@Hritik_is_coding", IconName: "FaYoutube", Color: "#FF0000", Category: "content", Priority: 4, IsActive: true},
			{ID: "twitter", Name: "Twitter", URL: "https://x.com/Shar7176Hritik", IconName: "FaTwitter", Color: "#1DA1F2", Category: "social", Priority: 5, IsActive: true},
			{ID: "discord", Name: "Discord", URL: "https://discord.gg/hritiksharma5272", IconName: "SiDiscord", Color: "#5865F2", Category: "community", Priority: 6, IsActive: true},
		},
		ContactInfo: &models.ContactInfo{
			Name:     "Hritik Sharma",
			Title:    "Full Stack Developer",
			Location: "Aligarh, Uttar Pradesh",
			Email:    "hritiksharma08725@gmail.com",
			Phone:    "+919548474709",
			Bio:      "Full Stack Developer passionate about creating innovative web solutions. Specialized in React, Node.js, and modern web technologies.",
			Website:  "https://hritiksharma.dev",
			IsActive: true,
		},
		QuickLinks: []*models.QuickLink{
			{ID: "projects", Name: "Projects", URL: "#projects", Priority: 1, IsActive: true},
			{ID: "about", Name: "About Me", URL: "#about", Priority: 2, IsActive: true},
			{ID: "skills", Name: "Skills", URL: "#skills", Priority: 3, IsActive: true},
			{ID: "contact", Name: "Contact", URL: "#contact", Priority: 4, IsActive: true},
		},
		Technologies: []*models.Technology{
			{Name: "React", Color: "#61DAFB", Category: "frontend", Priority: 1, IsActive: true},
			{Name: "Node.js", Color: "#339933", Category: "backend", Priority: 2, IsActive: true},
			{Name: "MongoDB", Color: "#47A248", Category: "database", Priority: 3, IsActive: true},
			{Name: "Tailwind", Color: "#06B6D4", Category: "frontend", Priority: 4, IsActive: true},
			{Name: "Vite", Color: "#646CFF", Category: "tools", Priority: 5, IsActive: true},
			{Name: "JavaScript", Color: "#F7DF1E", Category: "frontend", Priority: 6, IsActive: true},
		},
	}
}
