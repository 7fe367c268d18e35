package portfolio

import "time"

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month) *time.Time {
	d := date(year, month)
	return &d
}

// Default returns the built-in content. Each call returns a fresh copy.
func Default() *Portfolio {
	return &Portfolio{
		Personal: PersonalInfo{
			Name:      "Serhii Puzikov",
			Title:     "Senior Software Engineer, Architect",
			Bio:       "Experienced Software Engineer with over 7 years of expertise in software design, development, and infrastructure management. Proficient in building scalable software solutions with a strong focus on microservices, DDD, and TDD principles. Experienced in DevOps practices including Docker, Kubernetes, CI/CD pipelines, and server management. Currently working as an Architect at Hedlyner, leading technical decisions and system design.",
			Location:  "Prague, Czech Republic",
			Email:     "puzikov.dev@gmail.com",
			Phone:     "+420 607 358 243",
			Avatar:    "/images/avatar.jpg",
			ResumeURL: "/static/Serhii-Puzikov-Resume.pdf",
			SocialLinks: []SocialLink{
				{ID: "github", Platform: "GitHub", URL: "https://github.com/seriyyah", Icon: "Github"},
				{ID: "linkedin", Platform: "LinkedIn", URL: "https://www.linkedin.com/in/serhii-puzikov-93b362208/", Icon: "Linkedin"},
				{ID: "email", Platform: "Email", URL: "mailto:puzikov.dev@gmail.com", Icon: "Mail"},
			},
		},
		Roles: []string{
			"Software Engineer",
			"Software Architect",
			"DevOps Engineer",
			"Backend Specialist",
			"Microservices Expert",
			"Team Lead",
			"Senior Developer",
		},
		Navigation: []NavigationItem{
			{ID: "home", Label: "Home", Href: "#home"},
			{ID: "about", Label: "About", Href: "#about"},
			{ID: "skills", Label: "Skills", Href: "#skills"},
			{ID: "experience", Label: "Experience", Href: "#experience"},
			{ID: "projects", Label: "Projects", Href: "#projects"},
			{ID: "contact", Label: "Contact", Href: "#contact"},
		},
		Skills: []Skill{
			{ID: "python", Name: "Python", Level: 50, Category: Backend, Icon: "🐍"},
			{ID: "php", Name: "PHP", Level: 95, Category: Backend, Icon: "🐘"},
			{ID: "laravel", Name: "Laravel", Level: 95, Category: Backend, Icon: "⚡"},
			{ID: "django", Name: "Django", Level: 55, Category: Backend, Icon: "🎸"},

			{ID: "javascript", Name: "JavaScript", Level: 85, Category: Frontend, Icon: "⚡"},
			{ID: "typescript", Name: "TypeScript", Level: 80, Category: Frontend, Icon: "📘"},
			{ID: "vue", Name: "Vue.js", Level: 80, Category: Frontend, Icon: "💚"},
			{ID: "html", Name: "HTML", Level: 90, Category: Frontend, Icon: "📄"},
			{ID: "css", Name: "CSS", Level: 55, Category: Frontend, Icon: "🎨"},
			{ID: "jquery", Name: "jQuery", Level: 85, Category: Frontend, Icon: "💙"},

			{ID: "mysql", Name: "MySQL", Level: 90, Category: Database, Icon: "🐬"},
			{ID: "postgresql", Name: "PostgreSQL", Level: 85, Category: Database, Icon: "🐘"},
			{ID: "mongodb", Name: "MongoDB", Level: 80, Category: Database, Icon: "🍃"},

			{ID: "docker", Name: "Docker", Level: 90, Category: DevOps, Icon: "🐳"},
			{ID: "kubernetes", Name: "Kubernetes", Level: 85, Category: DevOps, Icon: "⚓"},
			{ID: "helm", Name: "Helm Charts", Level: 80, Category: DevOps, Icon: "⛵"},
			{ID: "aws", Name: "AWS", Level: 85, Category: DevOps, Icon: "☁️"},
			{ID: "azure", Name: "Azure DevOps", Level: 80, Category: DevOps, Icon: "🔷"},
			{ID: "elasticsearch", Name: "ElasticSearch", Level: 75, Category: DevOps, Icon: "🔍"},
			{ID: "linux", Name: "Linux", Level: 90, Category: DevOps, Icon: "🐧"},
			{ID: "cicd", Name: "CI/CD Pipelines", Level: 85, Category: DevOps, Icon: "🔄"},
			{ID: "monitoring", Name: "Server Monitoring", Level: 80, Category: DevOps, Icon: "📊"},

			{ID: "git", Name: "Git", Level: 90, Category: Tools, Icon: "📝"},
			{ID: "jira", Name: "Jira", Level: 85, Category: Tools, Icon: "📋"},
			{ID: "agile", Name: "Agile/SCRUM", Level: 90, Category: Tools, Icon: "🏃"},
			{ID: "rest", Name: "REST APIs", Level: 95, Category: Tools, Icon: "🔌"},
		},
		Experience: []WorkExperience{
			{
				ID:           "hedlyner",
				Company:      "Hedlyner",
				Position:     "Software Architect",
				StartDate:    date(2024, time.January),
				Description:  "Leading architectural decisions and system design for startup projects. Evolved from part-time Senior Backend Developer (2022) to Team Lead (2023) to Architect (2024). Designing scalable microservices architecture and establishing best development practices.",
				Technologies: []string{"Python", "PHP", "Laravel", "Microservices", "DDD", "TDD", "Docker", "AWS"},
				Achievements: []string{
					"Designed and implemented microservices architecture for multiple projects",
					"Led technical team and established development best practices",
					"Evolved from part-time developer to architect role within 2 years",
					"Implemented Domain-Driven Design principles across all projects",
				},
				Location:   "Remote",
				CompanyURL: "https://hedlyner.com",
			},
			{
				ID:           "defend-insurance",
				Company:      "Defend Insurance",
				Position:     "Software Development Lead",
				StartDate:    date(2025, time.May),
				EndDate:      datePtr(2025, time.September),
				Description:  "Spearheaded software development efforts, designed microservices architecture and applied best development practices. Managed Azure DevOps ecosystem and modernized application components.",
				Technologies: []string{"PHP", "Laravel", "Azure DevOps", "Microservices", "TDD"},
				Achievements: []string{
					"Designed and implemented microservices architecture",
					"Managed and maintained Azure DevOps ecosystem",
					"Integrated comprehensive test coverage",
					"Refactored legacy code for improved scalability",
					"Modernized outdated application components",
				},
				Location: "Remote",
			},
			{
				ID:           "confitech",
				Company:      "Confitech GmbH",
				Position:     "Software Engineer",
				StartDate:    date(2022, time.March),
				EndDate:      datePtr(2025, time.May),
				Description:  "Led back-end development for building scalable, efficient systems. Developed microservices architecture and implemented best practices following SOLID principles.",
				Technologies: []string{"PHP", "Laravel", "Python", "MySQL", "PostgreSQL", "Docker", "Microservices"},
				Achievements: []string{
					"Led back-end development for scalable systems",
					"Implemented microservices architecture",
					"Applied SOLID principles and clean code practices",
					"Collaborated remotely with cross-functional teams",
					"Delivered high-quality software solutions",
				},
				Location: "Remote",
			},
			{
				ID:           "metrabit",
				Company:      "MetraBit",
				Position:     "PHP Developer",
				StartDate:    date(2021, time.May),
				EndDate:      datePtr(2022, time.February),
				Description:  "Contributed to back-end development using PHP and Laravel. Collaborated with front-end developers and implemented REST API architecture.",
				Technologies: []string{"PHP", "Laravel", "MySQL", "REST APIs", "AWS EC2", "Unit Testing"},
				Achievements: []string{
					"Developed back-end features using PHP and Laravel",
					"Integrated user-facing elements with server-side logic",
					"Implemented comprehensive unit testing",
					"Worked with REST API architecture and contract-based approach",
					"Managed AWS EC2 instances",
				},
				Location: "Remote",
			},
			{
				ID:           "aweb-2",
				Company:      "aweb",
				Position:     "Back-end/Full-Stack Developer",
				StartDate:    date(2020, time.January),
				EndDate:      datePtr(2021, time.May),
				Description:  "Developed custom web applications and optimized database performance. Maintained existing applications with new features and bug fixes.",
				Technologies: []string{"PHP", "MySQL", "HTML", "Database Optimization"},
				Achievements: []string{
					"Developed custom web applications using PHP and MySQL",
					"Optimized database queries for improved performance",
					"Maintained and enhanced existing applications",
					"Added new features and resolved critical bugs",
				},
				Location: "Remote",
			},
			{
				ID:           "aweb-1",
				Company:      "aweb",
				Position:     "Back-end/Full-Stack Developer",
				StartDate:    date(2019, time.April),
				EndDate:      datePtr(2020, time.January),
				Description:  "Created and maintained websites using PHP/Python frameworks. Implemented third-party API integrations and worked with MVC architecture.",
				Technologies: []string{"PHP", "Python", "MVC", "OOP", "Third-party APIs"},
				Achievements: []string{
					"Built websites using PHP/Python frameworks",
					"Integrated payment gateways and third-party services",
					"Implemented MVC architecture patterns",
					"Applied Object-Oriented Programming principles",
				},
				Location: "Remote",
			},
		},
		Projects: []Project{
			{
				ID:              "microservices-architecture",
				Title:           "Enterprise Microservices Platform",
				Description:     "Designed and implemented a comprehensive microservices architecture for a startup ecosystem, enabling scalable and maintainable software solutions.",
				LongDescription: "Led the architectural design of a complex microservices platform that supports multiple business domains. Implemented Domain-Driven Design principles, event sourcing, and CQRS patterns. The system handles high-throughput operations with robust error handling and monitoring.",
				Technologies:    []string{"PHP", "Laravel", "Python", "Docker", "AWS", "Microservices", "DDD", "Event Sourcing"},
				Featured:        true,
				StartDate:       date(2024, time.January),
				Status:          InProgress,
				DemoURL:         "https://hedlyner.com",
			},
			{
				ID:              "insurance-platform",
				Title:           "Insurance Management System",
				Description:     "Modernized legacy insurance platform with microservices architecture and comprehensive testing coverage.",
				LongDescription: "Refactored and modernized a legacy insurance management system, implementing modern development practices, comprehensive testing, and improved scalability through microservices architecture.",
				Technologies:    []string{"PHP", "Laravel", "Azure DevOps", "Unit Testing", "Microservices"},
				Featured:        true,
				StartDate:       date(2025, time.May),
				EndDate:         datePtr(2025, time.September),
				Status:          Completed,
			},
			{
				ID:              "api-integration-platform",
				Title:           "Third-Party API Integration Platform",
				Description:     "Built a robust platform for integrating multiple third-party APIs including payment gateways and external services.",
				LongDescription: "Developed a comprehensive platform that seamlessly integrates various third-party APIs, providing a unified interface for payment processing, data synchronization, and external service communication.",
				Technologies:    []string{"PHP", "Laravel", "REST APIs", "Payment Gateways", "OAuth"},
				StartDate:       date(2021, time.January),
				EndDate:         datePtr(2022, time.January),
				Status:          Completed,
			},
		},
	}
}
