package domain

// CareerProfile is one entry of the static career catalog. The catalog is
// read-only: loaded once at process start and never mutated.
type CareerProfile struct {
	Name          string   `json:"name"`
	Tags          []string `json:"tags"`
	Description   string   `json:"description"`
	Salary        string   `json:"salary"`
	Qualification string   `json:"qualification"`
	Icon          string   `json:"icon"`
}

// QuizQuestion pairs a yes/no prompt with the tag a "Yes" answer feeds.
type QuizQuestion struct {
	Prompt string `json:"prompt"`
	Tag    string `json:"tag"`
}

// CareerMatch is one ranked row of a quiz prediction.
type CareerMatch struct {
	Career     CareerProfile `json:"career"`
	MatchCount int           `json:"match_count"`
	SearchURL  string        `json:"search_url"`
	VideoURL   string        `json:"video_url"`
}

type CareerUsecase interface {
	Questions() []QuizQuestion
	ChecklistItems() []string
	SuggestedSteps() []string
	// CareerByName looks up a catalog entry; found is false for unknown names.
	CareerByName(name string) (CareerProfile, bool)
	// Predict scores the answer counts (tag -> number of "Yes" answers that
	// produced that tag) against the catalog and returns the top 5 matches,
	// sorted by match count descending. Ties keep catalog declaration order.
	// Pure function: identical answers yield identical ordered output.
	Predict(answers map[string]int) []CareerMatch
}

// Questions is the fixed question bank; slice order defines display order.
// A tag is the subject of at most one question, but the scorer sums per-tag
// counts so the bank can grow multiple questions per tag without changes.
var Questions = []QuizQuestion{
	{"Do you enjoy solving technical problems?", "technical"},
	{"Do you enjoy analyzing data and numbers?", "analytical"},
	{"Are you interested in designing visual content?", "creative"},
	{"Do you enjoy helping people and giving advice?", "social"},
	{"Are you interested in working with software and computers?", "software"},
	{"Do you enjoy teaching or mentoring others?", "teaching"},
	{"Are you good at understanding human behavior and emotions?", "psychology"},
	{"Do you like working with machines or infrastructure?", "engineering"},
	{"Would you enjoy a job that involves travel and storytelling?", "travel"},
	{"Do you like understanding how the human body works?", "science"},
	{"Do you like performing on stage or screen?", "performance"},
	{"Do you enjoy cooking and experimenting with food?", "cooking"},
	{"Are you interested in fashion and trends?", "fashion"},
	{"Do you have strong writing or editing skills?", "writing"},
	{"Are you a good planner or organizer?", "planning"},
	{"Do you like sports and physical activity?", "sports"},
	{"Are you interested in law and justice?", "law"},
	{"Do you prefer freelancing or remote work flexibility?", "freelance"},
}

// ChecklistItems are the fixed progress milestones shown once a goal is set.
var ChecklistItems = []string{
	"Completed course",
	"Built a project",
	"Updated resume",
	"Mock interview",
}

// SuggestedSteps is the static guidance text shown alongside a goal career.
var SuggestedSteps = []string{
	"Learn required skills",
	"Do mini projects",
	"Earn certifications",
	"Apply for internships",
	"Track your learning",
}

// Careers is the static catalog. Declaration order matters: it is the
// tie-break order for equal match counts.
var Careers = []CareerProfile{
	{
		Name:          "Software Engineer",
		Tags:          []string{"technical", "software", "analytical"},
		Description:   "Designs and develops software applications and systems.",
		Salary:        "₹8-30 LPA",
		Qualification: "B.Tech in Computer Science or related field",
		Icon:          "💻",
	},
	{
		Name:          "Data Scientist",
		Tags:          []string{"analytical", "software"},
		Description:   "Analyzes large sets of data to find patterns and insights.",
		Salary:        "₹10-35 LPA",
		Qualification: "B.Sc/M.Sc in Data Science, Statistics or related field",
		Icon:          "📊",
	},
	{
		Name:          "Graphic Designer",
		Tags:          []string{"creative"},
		Description:   "Creates visual content for branding, ads, and websites.",
		Salary:        "₹3-10 LPA",
		Qualification: "Bachelor’s in Design, Fine Arts or related field",
		Icon:          "🎨",
	},
	{
		Name:          "Teacher",
		Tags:          []string{"teaching", "social"},
		Description:   "Educates students and helps them learn subjects effectively.",
		Salary:        "₹2-8 LPA",
		Qualification: "B.Ed + subject-specific degree",
		Icon:          "👩‍🏫",
	},
	{
		Name:          "Doctor",
		Tags:          []string{"science", "social", "teaching"},
		Description:   "Diagnoses and treats illnesses, promotes health and wellness.",
		Salary:        "₹6-25 LPA",
		Qualification: "MBBS, MD/MS",
		Icon:          "🩺",
	},
	{
		Name:          "Psychologist",
		Tags:          []string{"psychology", "teaching"},
		Description:   "Studies mental processes and supports mental health.",
		Salary:        "₹4-15 LPA",
		Qualification: "M.A/M.Sc in Psychology + license",
		Icon:          "🧠",
	},
	{
		Name:          "Engineer",
		Tags:          []string{"technical", "engineering"},
		Description:   "Designs, builds, and maintains machines, structures or systems.",
		Salary:        "₹4-15 LPA",
		Qualification: "B.Tech in Mechanical/Civil/Electrical, etc.",
		Icon:          "🛠️",
	},
	{
		Name:          "Travel Blogger",
		Tags:          []string{"creative", "travel"},
		Description:   "Travels to new places and shares stories, photos, and tips.",
		Salary:        "₹1-10 LPA (varies)",
		Qualification: "No fixed degree; skills in writing, photography, social media",
		Icon:          "🌍",
	},
	{
		Name:          "Actor",
		Tags:          []string{"performance", "creative"},
		Description:   "Performs in plays, films, or shows to entertain and inspire.",
		Salary:        "₹3-50 LPA",
		Qualification: "Training in Drama/Theatre, Portfolio",
		Icon:          "🎭",
	},
	{
		Name:          "Artist",
		Tags:          []string{"creative"},
		Description:   "Creates artwork in various mediums like painting, digital art, or sculpture.",
		Salary:        "₹2-20 LPA",
		Qualification: "BFA or equivalent experience",
		Icon:          "🖌️",
	},
	{
		Name:          "Athlete",
		Tags:          []string{"sports", "performance"},
		Description:   "Competes in sports and maintains peak physical condition.",
		Salary:        "₹1-50 LPA",
		Qualification: "Training, Sports Academy, National Trials",
		Icon:          "🏃",
	},
	{
		Name:          "Author",
		Tags:          []string{"writing", "creative"},
		Description:   "Writes books, novels, articles, or content for various media.",
		Salary:        "₹2-15 LPA",
		Qualification: "No fixed degree; Literature or Journalism preferred",
		Icon:          "✍️",
	},
	{
		Name:          "Lawyer",
		Tags:          []string{"law", "analytical", "social"},
		Description:   "Represents clients in legal matters and interprets laws.",
		Salary:        "₹4-20 LPA",
		Qualification: "LLB + Bar Council Registration",
		Icon:          "⚖️",
	},
	{
		Name:          "Editor",
		Tags:          []string{"writing", "analytical"},
		Description:   "Reviews and edits content for clarity, grammar, and style.",
		Salary:        "₹3-12 LPA",
		Qualification: "Degree in English, Journalism, or Communication",
		Icon:          "📝",
	},
	{
		Name:          "Pharmacist",
		Tags:          []string{"science", "analytical"},
		Description:   "Prepares and dispenses medication, advises on drug use.",
		Salary:        "₹3-10 LPA",
		Qualification: "B.Pharm / M.Pharm + License",
		Icon:          "💊",
	},
	{
		Name:          "Chef",
		Tags:          []string{"cooking", "creative"},
		Description:   "Prepares food and manages kitchen operations.",
		Salary:        "₹2-15 LPA",
		Qualification: "Hotel Management or Culinary Arts Diploma",
		Icon:          "👨‍🍳",
	},
	{
		Name:          "Event Planner",
		Tags:          []string{"planning", "creative", "social"},
		Description:   "Plans and coordinates events like weddings, parties, and conferences.",
		Salary:        "₹3-10 LPA",
		Qualification: "Bachelor’s in Event Management or PR",
		Icon:          "🎉",
	},
	{
		Name:          "Fashion Designer",
		Tags:          []string{"fashion", "creative"},
		Description:   "Designs clothing, accessories, and fashion collections.",
		Salary:        "₹3-20 LPA",
		Qualification: "Bachelor’s in Fashion Design",
		Icon:          "👗",
	},
	{
		Name:          "Electrician",
		Tags:          []string{"technical", "engineering"},
		Description:   "Installs and repairs electrical systems in buildings and homes.",
		Salary:        "₹1.5-8 LPA",
		Qualification: "ITI/Diploma in Electrical",
		Icon:          "🔌",
	},
	{
		Name:          "Nurse",
		Tags:          []string{"science", "social"},
		Description:   "Provides medical care, support, and compassion to patients.",
		Salary:        "₹2-8 LPA",
		Qualification: "GNM / B.Sc Nursing + Registration",
		Icon:          "👩‍⚕️",
	},
	{
		Name:          "Freelancer",
		Tags:          []string{"freelance", "creative", "technical"},
		Description:   "Self-employed worker offering skills like writing, coding, or design.",
		Salary:        "Varies widely",
		Qualification: "No fixed degree; Skill-based",
		Icon:          "🌐",
	},
}

// DefaultCareerIcon is used for careers without a dedicated icon.
const DefaultCareerIcon = "💼"
