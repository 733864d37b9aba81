package content

// Accent selects the highlight color a card is drawn with.
type Accent string

const (
	AccentPrimary   Accent = "primary"
	AccentSecondary Accent = "secondary"
)

// Icon names a glyph from the site's icon set.
type Icon string

const (
	IconCode      Icon = "code"
	IconDatabase  Icon = "database"
	IconWrench    Icon = "wrench"
	IconSparkles  Icon = "sparkles"
	IconTrophy    Icon = "trophy"
	IconStar      Icon = "star"
	IconAward     Icon = "award"
	IconTarget    Icon = "target"
	IconRocket    Icon = "rocket"
	IconZap       Icon = "zap"
	IconBriefcase Icon = "briefcase"
	IconMail      Icon = "mail"
	IconMapPin    Icon = "map-pin"
	IconPhone     Icon = "phone"
	IconGitHub    Icon = "github"
	IconLinkedIn  Icon = "linkedin"
	IconPalette   Icon = "palette"
)

// Profile is the copy shown in the hero, about and footer sections.
type Profile struct {
	Name     string   `yaml:"name" json:"name"`
	Headline string   `yaml:"headline" json:"headline"`
	Tagline  string   `yaml:"tagline" json:"tagline"`
	About    []string `yaml:"about" json:"about"`
	Location string   `yaml:"location" json:"location"`
	Email    string   `yaml:"email" json:"email"`
}

// Project is a portfolio entry rendered as a card.
type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	DemoURL      string   `yaml:"demo_url,omitempty" json:"demo_url,omitempty"`
	SourceURL    string   `yaml:"source_url,omitempty" json:"source_url,omitempty"`
}

// HasDemo reports whether the project links to a running demo.
func (p Project) HasDemo() bool { return p.DemoURL != "" }

// HasSource reports whether the project links to its repository.
func (p Project) HasSource() bool { return p.SourceURL != "" }

// SkillCategory groups related skills under one heading.
type SkillCategory struct {
	Title  string   `yaml:"title" json:"title"`
	Icon   Icon     `yaml:"icon" json:"icon"`
	Skills []string `yaml:"skills" json:"skills"`
	Accent Accent   `yaml:"accent" json:"accent"`
}

// Achievement is a milestone or award.
type Achievement struct {
	Icon        Icon   `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Year        string `yaml:"year" json:"year"`
	Accent      Accent `yaml:"accent" json:"accent"`
}

// Experience is one entry on the timeline.
type Experience struct {
	Role         string   `yaml:"role" json:"role"`
	Company      string   `yaml:"company" json:"company"`
	Duration     string   `yaml:"duration" json:"duration"`
	Achievements []string `yaml:"achievements" json:"achievements"`
}

// SocialLink points at an external profile.
type SocialLink struct {
	Label string `yaml:"label" json:"label"`
	Icon  Icon   `yaml:"icon" json:"icon"`
	URL   string `yaml:"url" json:"url"`
}

// ContactInfo is a clickable card next to the contact form.
type ContactInfo struct {
	Label  string `yaml:"label" json:"label"`
	Value  string `yaml:"value" json:"value"`
	URL    string `yaml:"url,omitempty" json:"url,omitempty"`
	Icon   Icon   `yaml:"icon" json:"icon"`
	Accent Accent `yaml:"accent" json:"accent"`
}

// Site is everything the page renders.
type Site struct {
	Profile      Profile         `yaml:"profile" json:"profile"`
	Projects     []Project       `yaml:"projects" json:"projects"`
	Skills       []SkillCategory `yaml:"skills" json:"skills"`
	Achievements []Achievement   `yaml:"achievements" json:"achievements"`
	Experience   []Experience    `yaml:"experience" json:"experience"`
	Socials      []SocialLink    `yaml:"socials" json:"socials"`
	ContactInfo  []ContactInfo   `yaml:"contact_info" json:"contact_info"`
}
