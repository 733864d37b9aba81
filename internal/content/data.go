package content

const gmailCompose = "https://mail.google.com/mail/?view=cm&fs=1&to=debapriyadey03srp@gmail.com&body=I%20want%20to%20connect!"

var (
	AboutMe = []string{
		`I'm a motivated and detail-oriented **full-stack developer** with hands-on experience in building
modern, dynamic web applications. With a strong foundation in HTML, CSS, JavaScript, SCSS, and the
MERN stack, I enjoy transforming ideas into clean, functional, and visually appealing digital experiences.
I'm passionate about writing efficient, maintainable code and approaching every project with creativity and precision.`,
		`My goal is to blend aesthetic appeal with solid technical foundations, building products that are
both delightful to use and easy to maintain.`,
	}

	defaultProjects = []Project{
		{
			Title:        "Mutual Funds MERN Stack Web Application",
			Description:  "A comprehensive mutual funds investment platform built with the MERN stack (MongoDB, Express.js, React, Node.js) and Tailwind CSS.",
			Technologies: []string{"React", "Node.js", "MongoDB", "Tailwind CSS", "Express.js"},
			DemoURL:      "https://mutual-fund-web-app.netlify.app/",
			SourceURL:    "https://github.com/Itsme-Debapriya/mutual-funds-app",
		},
		{
			Title:        "E-Commerece-Book_Store_Web_app",
			Description:  "A full-stack web application for browsing, buying, and managing books. Built to demonstrate clean architecture, responsive design, and seamless user experiences for both customers and admins.",
			Technologies: []string{"React", "Node.js", "Express.js", "MongoDB", "Tailwind CSS"},
			SourceURL:    "https://github.com/Itsme-Debapriya/E-Commerece-Book_Store_Web_app",
		},
		{
			Title: "Edu Verse (E-learning Website)",
			Description: `Our Educational Website would provide all the education related stuffs: Notes, Sample Papers,
Online Video Lectures and courses to crack competitive exams like JEE-Main, JEE-Advanced, GATE, etc.
Students can clear their doubts by sending their questions to our website. We have added Quizzes for
Students who are willing to solve problems on different topics. We have also added Interview questions
for students who are preparing for placements.`,
			Technologies: []string{"HTML", "CSS", "JavaScript"},
			DemoURL:      "https://itsme-debapriya.github.io/Eduverse-main/",
			SourceURL:    "https://github.com/Itsme-Debapriya/Eduverse-main",
		},
		{
			Title:        "Responsive Landing Page",
			Description:  "A sleek and modern responsive landing page built with HTML, CSS, and JavaScript. Designed for fast performance, cross-device compatibility, and clean UI/UX, perfect for product showcases, startups, or portfolios.",
			Technologies: []string{"HTML", "CSS", "JavaScript"},
			DemoURL:      "https://itsme-debapriya.github.io/Responsive_Landing_Page/",
			SourceURL:    "https://github.com/Itsme-Debapriya/Responsive_Landing_Page",
		},
		{
			Title:        "Theatre ticket booking",
			Description:  "A responsive, interactive web application for selecting and booking theater seats by section with real-time price calculation, theme customization, and persistent user preferences.",
			Technologies: []string{"HTML", "CSS", "JavaScript"},
			DemoURL:      "https://itsme-debapriya.github.io/Theatre_ticket_booking/",
			SourceURL:    "https://github.com/Itsme-Debapriya/Theatre_ticket_booking",
		},
		{
			Title:        "Customer feedback analysis website",
			Description:  "Customer Feedback Analysis is a web-based application designed to collect, analyze, and visualize customer feedback efficiently. The system uses *Natural Language Processing* techniques to perform sentiment analysis on customer comments and automatically classifies them as Positive, Negative, or Neutral.",
			Technologies: []string{"Python", "Dockerfile", "CSS"},
			SourceURL:    "https://github.com/Itsme-Debapriya/customer_feedback_analysis_web",
		},
	}

	defaultSkills = []SkillCategory{
		{
			Title:  "Frontend",
			Icon:   IconCode,
			Skills: []string{"React.js", "Next.js", "HTML", "CSS", "JavaScript", "Tailwind CSS"},
			Accent: AccentPrimary,
		},
		{
			Title:  "Backend",
			Icon:   IconDatabase,
			Skills: []string{"Node.js", "Python", "Express.js", "MongoDB", "Render", "SQLite"},
			Accent: AccentSecondary,
		},
		{
			Title:  "Tools & Platforms",
			Icon:   IconWrench,
			Skills: []string{"Git", "GitHub", "Docker", "Vercel", "VSCode", "Postman"},
			Accent: AccentPrimary,
		},
	}

	defaultAchievements = []Achievement{
		{
			Icon:        IconTrophy,
			Title:       "TECH QUIZ WINNER",
			Description: "Participated in the Tech Quiz competition at REFRESHKO (Tech Fest), testing knowledge across cutting-edge technologies and current trends. Enhanced quick-thinking and problem-solving skills under competitive conditions.",
			Year:        "2025",
			Accent:      AccentPrimary,
		},
		{
			Icon:        IconStar,
			Title:       "SIH Internal Hackathon 2025",
			Description: "Participated in the SIH Internal Hackathon, collaborating with a team to build innovative solutions under tight deadlines. Gained hands-on experience in problem-solving, rapid prototyping, and teamwork.",
			Year:        "2025",
			Accent:      AccentPrimary,
		},
	}

	defaultExperience = []Experience{
		{
			Role:     "IBM Internship Emerging Technologies (AI & Cloud)",
			Company:  "Edunet Foundation (IBM).",
			Duration: "July 2024 - August 2024",
			Achievements: []string{
				"4-week Internship, leveraging SkillsBuild & IBM Cloud Platform in Emerging Technologies (AI & Cloud)",
				"IBM Cloud (Watson Studio) + Data Analytics",
				"Model Building (Algorithm Explanation) Auto AI + Assignment",
				"NLP/GenAI/LLM mode",
			},
		},
		{
			Role:     "Data Visualisation (CERTIFICATION)",
			Company:  "Forage (TATA)",
			Duration: "December 2024",
			Achievements: []string{
				"Data Visualisation: Transforming Data into Actionable Insights",
				"Exploring data visualization techniques to present complex data in an understandable format.",
				"Hands-on experience with tools and libraries for effective data visualization.",
			},
		},
		{
			Role:     "Generative AI (CERTIFICATION)",
			Company:  "GUVI",
			Duration: "September 2024",
			Achievements: []string{
				"Generative AI: Building Intelligent Systems with Advanced Algorithms",
				"Exploring the capabilities of Generative AI in creating innovative solutions.",
				"Hands-on experience with AI models and their applications in real-world scenarios.",
			},
		},
		{
			Role:     "Introduction to Git and GitHub (CERTIFICATION)",
			Company:  "COURSERA",
			Duration: "January 2024 - November 2024",
			Achievements: []string{
				"Introduction to Git and GitHub: Mastering Version Control for Collaborative Development",
				"Learning the fundamentals of Git and GitHub for effective version control.",
				"Hands-on experience with branching, merging, and collaboration in software projects.",
			},
		},
	}

	defaultSocials = []SocialLink{
		{Label: "GitHub", Icon: IconGitHub, URL: "https://github.com/Itsme-Debapriya"},
		{Label: "LinkedIn", Icon: IconLinkedIn, URL: "https://www.linkedin.com/in/debapriya-dey-4012a62b5/"},
		{Label: "Email", Icon: IconMail, URL: gmailCompose},
	}

	defaultContactInfo = []ContactInfo{
		{Label: "Email", Value: "debapriyadey03srp@gmail.com", URL: gmailCompose, Icon: IconMail, Accent: AccentPrimary},
		{Label: "Location", Value: "SERAMPORE, HOOGHLY, WEST BENGAL", URL: "https://maps.app.goo.gl/m2qZa5u2LGG864VR9", Icon: IconMapPin, Accent: AccentPrimary},
	}
)

// Default returns the compiled-in site content. Each call returns a fresh
// copy so callers may modify it.
func Default() Site {
	return Site{
		Profile: Profile{
			Name:     "DEBAPRIYA DEY",
			Headline: "I develop modern, scalable web systems.",
			Tagline:  "Full-stack developer crafting beautiful, functional web applications",
			About:    append([]string(nil), AboutMe...),
			Location: "SERAMPORE, HOOGHLY, WEST BENGAL",
			Email:    "debapriyadey03srp@gmail.com",
		},
		Projects:     cloneProjects(defaultProjects),
		Skills:       cloneSkills(defaultSkills),
		Achievements: append([]Achievement(nil), defaultAchievements...),
		Experience:   cloneExperience(defaultExperience),
		Socials:      append([]SocialLink(nil), defaultSocials...),
		ContactInfo:  append([]ContactInfo(nil), defaultContactInfo...),
	}
}

func cloneProjects(in []Project) []Project {
	out := make([]Project, len(in))
	for i, p := range in {
		p.Technologies = append([]string(nil), p.Technologies...)
		out[i] = p
	}
	return out
}

func cloneSkills(in []SkillCategory) []SkillCategory {
	out := make([]SkillCategory, len(in))
	for i, c := range in {
		c.Skills = append([]string(nil), c.Skills...)
		out[i] = c
	}
	return out
}

func cloneExperience(in []Experience) []Experience {
	out := make([]Experience, len(in))
	for i, e := range in {
		e.Achievements = append([]string(nil), e.Achievements...)
		out[i] = e
	}
	return out
}
