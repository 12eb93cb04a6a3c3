package repository

import "github.com/okian/alumnihub/internal/domain/model"

// builtinDataset returns a freshly allocated copy of the bundled site content.
func builtinDataset() *model.Dataset {
	return &model.Dataset{
		Home:      builtinHome(),
		Alumni:    builtinAlumni(),
		Jobs:      builtinJobs(),
		Events:    builtinEvents(),
		Campaigns: builtinCampaigns(),
		Impact:    builtinImpact(),
		Analytics: builtinAnalytics(),
	}
}

func builtinHome() model.Home {
	return model.Home{
		Stats: []model.HeroStat{
			{Label: "Active Alumni", Value: "5,000+"},
			{Label: "Events This Year", Value: "120+"},
			{Label: "Donations Raised", Value: "$2.5M+"},
			{Label: "Job Placements", Value: "850+"},
		},
		Features: []model.Feature{
			{Title: "Alumni Directory", Description: "Find and connect with alumni by industry, batch and company.", Link: "/api/alumni"},
			{Title: "Career Opportunities", Description: "Browse openings shared by alumni and partner companies.", Link: "/api/jobs"},
			{Title: "Events & Webinars", Description: "Join webinars, workshops and reunions hosted by the community.", Link: "/api/events"},
			{Title: "Give Back", Description: "Support scholarships, labs and programs through active campaigns.", Link: "/api/campaigns"},
			{Title: "Mentorship Program", Description: "Get matched with experienced alumni for career guidance.", Link: "/api/alumni"},
			{Title: "Impact Analytics", Description: "Track donations, participation and mentorship across the network.", Link: "/api/analytics"},
		},
	}
}

func builtinAlumni() []model.AlumniProfile {
	return []model.AlumniProfile{
		{
			ID: 1, Name: "Sarah Johnson",
			Avatar:  "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
			Company: "Microsoft", Position: "Senior Software Engineer", Location: "Seattle, WA",
			Batch: "2018", Industry: "Technology",
			Skills:   []string{"React", "Azure", "Machine Learning"},
			LinkedIn: "https://linkedin.com/in/sarahjohnson", Email: "sarah.johnson@example.com",
		},
		{
			ID: 2, Name: "David Chen",
			Avatar:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			Company: "Google", Position: "Product Manager", Location: "Mountain View, CA",
			Batch: "2016", Industry: "Technology",
			Skills:   []string{"Product Strategy", "Analytics", "AI/ML"},
			LinkedIn: "https://linkedin.com/in/davidchen", Email: "david.chen@example.com",
		},
		{
			ID: 3, Name: "Emily Rodriguez",
			Avatar:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			Company: "Goldman Sachs", Position: "Investment Analyst", Location: "New York, NY",
			Batch: "2019", Industry: "Finance",
			Skills:   []string{"Financial Modeling", "Risk Analysis", "Python"},
			LinkedIn: "https://linkedin.com/in/emilyrodriguez", Email: "emily.rodriguez@example.com",
		},
		{
			ID: 4, Name: "Michael Kim",
			Avatar:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Company: "Tesla", Position: "Data Scientist", Location: "Austin, TX",
			Batch: "2017", Industry: "Automotive",
			Skills:   []string{"Machine Learning", "Python", "TensorFlow"},
			LinkedIn: "https://linkedin.com/in/michaelkim", Email: "michael.kim@example.com",
		},
		{
			ID: 5, Name: "Lisa Wang",
			Avatar:  "https://images.unsplash.com/photo-1517841905240-472988babdf9?w=150&h=150&fit=crop&crop=face",
			Company: "McKinsey & Company", Position: "Management Consultant", Location: "Chicago, IL",
			Batch: "2015", Industry: "Consulting",
			Skills:   []string{"Strategy", "Operations", "Digital Transformation"},
			LinkedIn: "https://linkedin.com/in/lisawang", Email: "lisa.wang@example.com",
		},
		{
			ID: 6, Name: "James Wilson",
			Avatar:  "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
			Company: "Accenture", Position: "Technology Lead", Location: "Dallas, TX",
			Batch: "2014", Industry: "Consulting",
			Skills:   []string{"Cloud Computing", "DevOps", "Agile"},
			LinkedIn: "https://linkedin.com/in/jameswilson", Email: "james.wilson@example.com",
		},
	}
}

func builtinJobs() []model.JobPosting {
	return []model.JobPosting{
		{
			ID: 1, Title: "Senior Software Engineer", Company: "Microsoft", Location: "Seattle, WA",
			Type: "Full-time", Experience: "5-7 years", Salary: "$150,000 - $200,000", Posted: "2 days ago",
			Domain:      "Technology",
			Skills:      []string{"React", "Node.js", "Azure", "TypeScript"},
			Description: "Join our team to build next-generation cloud applications using cutting-edge technologies.",
			Remote:      true,
			CompanyLogo: "https://images.unsplash.com/photo-1633409361618-c73427e4e206?w=80&h=80&fit=crop",
		},
		{
			ID: 2, Title: "Data Scientist", Company: "Netflix", Location: "Los Gatos, CA",
			Type: "Full-time", Experience: "3-5 years", Salary: "$130,000 - $180,000", Posted: "1 day ago",
			Domain:      "Data Science",
			Skills:      []string{"Python", "Machine Learning", "SQL", "TensorFlow"},
			Description: "Help us personalize content recommendations for millions of users worldwide.",
			Remote:      false,
			CompanyLogo: "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=80&h=80&fit=crop",
		},
		{
			ID: 3, Title: "Product Manager", Company: "Stripe", Location: "San Francisco, CA",
			Type: "Full-time", Experience: "4-6 years", Salary: "$140,000 - $190,000", Posted: "3 days ago",
			Domain:      "Product",
			Skills:      []string{"Product Strategy", "Analytics", "API Design", "Fintech"},
			Description: "Lead product development for our payment infrastructure serving millions of businesses.",
			Remote:      true,
			CompanyLogo: "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=80&h=80&fit=crop",
		},
		{
			ID: 4, Title: "AI/ML Research Scientist", Company: "OpenAI", Location: "San Francisco, CA",
			Type: "Full-time", Experience: "PhD + 2 years", Salary: "$200,000 - $300,000", Posted: "5 days ago",
			Domain:      "AI/ML",
			Skills:      []string{"Deep Learning", "PyTorch", "NLP", "Computer Vision"},
			Description: "Research and develop breakthrough AI technologies that benefit humanity.",
			Remote:      false,
			CompanyLogo: "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=80&h=80&fit=crop",
		},
		{
			ID: 5, Title: "DevOps Engineer", Company: "Docker", Location: "Remote",
			Type: "Full-time", Experience: "3-5 years", Salary: "$120,000 - $160,000", Posted: "1 week ago",
			Domain:      "DevOps",
			Skills:      []string{"Kubernetes", "Docker", "AWS", "Terraform"},
			Description: "Build and maintain infrastructure for containerized applications at scale.",
			Remote:      true,
			CompanyLogo: "https://images.unsplash.com/photo-1618401479427-c8ef9465fbe1?w=80&h=80&fit=crop",
		},
		{
			ID: 6, Title: "UX Designer", Company: "Figma", Location: "New York, NY",
			Type: "Full-time", Experience: "2-4 years", Salary: "$100,000 - $140,000", Posted: "4 days ago",
			Domain:      "Design",
			Skills:      []string{"Figma", "Design Systems", "User Research", "Prototyping"},
			Description: "Design intuitive interfaces that empower teams to create amazing products.",
			Remote:      true,
			CompanyLogo: "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=80&h=80&fit=crop",
		},
	}
}

func builtinEvents() []model.Event {
	return []model.Event{
		{
			ID: 1, Title: "AI & Machine Learning in Modern Business", Type: "webinar",
			Date: "2024-12-15", Time: "2:00 PM EST", Duration: "90 minutes", Location: "Virtual",
			Speaker:     "Dr. Sarah Chen, AI Research Director at Google",
			Description: "Explore how AI and ML are transforming industries and learn practical applications for your business.",
			Attendees:   245, MaxAttendees: 500, Price: "Free", Category: "Technology", Status: model.EventUpcoming,
			Image: "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=400&h=200&fit=crop",
		},
		{
			ID: 2, Title: "Annual Alumni Reunion 2024", Type: "event",
			Date: "2024-12-20", Time: "6:00 PM EST", Duration: "4 hours", Location: "University Campus Center",
			Speaker:     "Multiple Alumni Speakers",
			Description: "Join us for an evening of networking, memories, and celebrating our community's achievements.",
			Attendees:   156, MaxAttendees: 300, Price: "$45", Category: "Networking", Status: model.EventUpcoming,
			Image: "https://images.unsplash.com/photo-1511578314322-379afb476865?w=400&h=200&fit=crop",
		},
		{
			ID: 3, Title: "Data Science Career Panel", Type: "webinar",
			Date: "2024-12-10", Time: "7:00 PM EST", Duration: "2 hours", Location: "Virtual",
			Speaker:     "Senior Data Scientists from Netflix, Spotify, Uber",
			Description: "Learn about career paths in data science, required skills, and tips for landing your dream job.",
			Attendees:   189, MaxAttendees: 400, Price: "Free", Category: "Career", Status: model.EventUpcoming,
			Image: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400&h=200&fit=crop",
		},
		{
			ID: 4, Title: "Entrepreneurship Workshop", Type: "workshop",
			Date: "2024-11-28", Time: "10:00 AM EST", Duration: "6 hours", Location: "Innovation Hub, Downtown",
			Speaker:     "Mark Rodriguez, Founder of TechStart Inc.",
			Description: "Hands-on workshop covering business plan development, funding strategies, and startup essentials.",
			Attendees:   45, MaxAttendees: 50, Price: "$75", Category: "Business", Status: model.EventCompleted,
			Image: "https://images.unsplash.com/photo-1556761175-b413da4baf72?w=400&h=200&fit=crop",
		},
		{
			ID: 5, Title: "Cloud Computing & DevOps Seminar", Type: "seminar",
			Date: "2024-12-18", Time: "3:00 PM EST", Duration: "3 hours", Location: "Virtual",
			Speaker:     "AWS Solutions Architects & DevOps Engineers",
			Description: "Deep dive into cloud architecture, containerization, and modern DevOps practices.",
			Attendees:   178, MaxAttendees: 350, Price: "$25", Category: "Technology", Status: model.EventUpcoming,
			Image: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=400&h=200&fit=crop",
		},
	}
}

func builtinCampaigns() []model.Campaign {
	return []model.Campaign{
		{
			ID: 1, Title: "Scholarship Fund for Underprivileged Students",
			Description: "Help provide quality education to students who cannot afford tuition fees. Your contribution directly impacts a student's future.",
			Category:    "Education", Goal: 500000, Raised: 347500, Donors: 156, DaysLeft: 45,
			Image:    "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=400&h=200&fit=crop",
			Featured: true,
		},
		{
			ID: 2, Title: "New Science Laboratory Equipment",
			Description: "Modernize our science labs with cutting-edge equipment to enhance hands-on learning experiences for current students.",
			Category:    "Infrastructure", Goal: 250000, Raised: 189000, Donors: 89, DaysLeft: 28,
			Image: "https://images.unsplash.com/photo-1532094349884-543bc11b234d?w=400&h=200&fit=crop",
		},
		{
			ID: 3, Title: "Alumni Mentorship Program Expansion",
			Description: "Expand our mentorship program to connect more students with industry professionals for career guidance.",
			Category:    "Programs", Goal: 75000, Raised: 42300, Donors: 67, DaysLeft: 62,
			Image: "https://images.unsplash.com/photo-1600880292203-757bb62b4baf?w=400&h=200&fit=crop",
		},
		{
			ID: 4, Title: "Campus Library Digital Transformation",
			Description: "Transform our library into a modern digital learning hub with e-books, online resources, and collaborative spaces.",
			Category:    "Technology", Goal: 150000, Raised: 95000, Donors: 134, DaysLeft: 38,
			Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=200&fit=crop",
			Featured: true,
		},
	}
}

func builtinImpact() []model.ImpactStat {
	return []model.ImpactStat{
		{Title: "Students Supported", Value: "1,247", Description: "Scholarships awarded this year"},
		{Title: "Projects Completed", Value: "23", Description: "Infrastructure improvements"},
		{Title: "Active Donors", Value: "3,456", Description: "Alumni contributing regularly"},
		{Title: "Total Raised", Value: "$2.8M", Description: "This academic year"},
	}
}

func builtinAnalytics() model.Analytics {
	return model.Analytics{
		KeyMetrics: []model.KeyMetric{
			{Title: "Total Alumni", Value: "5,247", Change: "+12%"},
			{Title: "Active Donors", Value: "1,234", Change: "+8%"},
			{Title: "Events This Year", Value: "127", Change: "+25%"},
			{Title: "Job Placements", Value: "456", Change: "+18%"},
		},
		Donations: []model.DonationPoint{
			{Month: "Jan", Amount: 45000, Donors: 89},
			{Month: "Feb", Amount: 52000, Donors: 103},
			{Month: "Mar", Amount: 38000, Donors: 76},
			{Month: "Apr", Amount: 67000, Donors: 134},
			{Month: "May", Amount: 84000, Donors: 168},
			{Month: "Jun", Amount: 73000, Donors: 145},
		},
		Participation: []model.ParticipationPoint{
			{Name: "Webinars", Participants: 450, Events: 12},
			{Name: "Workshops", Participants: 280, Events: 8},
			{Name: "Networking", Participants: 320, Events: 6},
			{Name: "Reunions", Participants: 180, Events: 3},
			{Name: "Career Fairs", Participants: 220, Events: 4},
		},
		Mentorship: []model.MentorshipPoint{
			{Month: "Jan", Sessions: 45, Matches: 12},
			{Month: "Feb", Sessions: 52, Matches: 15},
			{Month: "Mar", Sessions: 67, Matches: 18},
			{Month: "Apr", Sessions: 84, Matches: 23},
			{Month: "May", Sessions: 91, Matches: 27},
			{Month: "Jun", Sessions: 98, Matches: 31},
		},
		Domains: []model.DomainShare{
			{Name: "Technology", Value: 385, Color: "hsl(214, 84%, 56%)"},
			{Name: "Finance", Value: 186, Color: "hsl(160, 84%, 39%)"},
			{Name: "Healthcare", Value: 142, Color: "hsl(262, 83%, 58%)"},
			{Name: "Education", Value: 98, Color: "hsl(48, 96%, 53%)"},
			{Name: "Consulting", Value: 156, Color: "hsl(142, 76%, 36%)"},
			{Name: "Startup", Value: 73, Color: "hsl(38, 92%, 50%)"},
		},
	}
}
