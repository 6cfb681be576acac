package taxonomy

import (
	"regexp"
	"strings"
)

// CategoryNames lists taxonomy categories in a fixed order so extraction
// output is deterministic.
var CategoryNames = []string{
	"Programming",
	"Web Development",
	"Data & Analytics",
	"Cloud & DevOps",
	"Design & UX",
	"Soft Skills",
	"Tools & Platforms",
	"Methodologies",
}

// Categories maps each category to its canonical skill names.
var Categories = map[string][]string{
	"Programming": {
		"Python", "JavaScript", "Java", "C++", "C#", "Ruby", "PHP", "Go", "Rust", "Swift", "Kotlin",
		"TypeScript", "Scala", "R", "MATLAB", "Perl", "Shell", "Bash", "PowerShell",
	},
	"Web Development": {
		"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Django", "Flask", "Express.js",
		"Laravel", "Spring", "ASP.NET", "Ruby on Rails", "jQuery", "Bootstrap", "Tailwind CSS",
		"Sass", "Less", "Webpack", "Babel", "npm", "yarn",
	},
	"Data & Analytics": {
		"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Cassandra",
		"Excel", "Tableau", "Power BI", "Looker", "Data Analysis", "Data Visualization",
		"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Scikit-learn",
		"Pandas", "NumPy", "Matplotlib", "Seaborn", "Jupyter", "Apache Spark", "Hadoop",
	},
	"Cloud & DevOps": {
		"AWS", "Azure", "Google Cloud", "GCP", "Docker", "Kubernetes", "Jenkins", "GitLab CI",
		"GitHub Actions", "Terraform", "Ansible", "Chef", "Puppet", "Linux", "Ubuntu",
		"CentOS", "Red Hat", "CI/CD", "Microservices", "Serverless", "Lambda",
	},
	"Design & UX": {
		"Figma", "Adobe Photoshop", "Adobe Illustrator", "Sketch", "InVision", "UI/UX",
		"Wireframing", "Prototyping", "User Research", "Design Systems", "Responsive Design",
		"Accessibility", "WCAG", "Adobe XD", "Framer",
	},
	"Soft Skills": {
		"Communication", "Leadership", "Project Management", "Problem Solving", "Teamwork",
		"Collaboration", "Time Management", "Critical Thinking", "Creativity", "Adaptability",
		"Customer Service", "Presentation Skills", "Negotiation", "Mentoring",
	},
	"Tools & Platforms": {
		"Git", "GitHub", "GitLab", "Bitbucket", "Jira", "Confluence", "Slack", "Microsoft Teams",
		"VS Code", "IntelliJ", "Eclipse", "Sublime Text", "Vim", "Emacs", "Postman",
		"Swagger", "Figma", "Notion", "Trello", "Asana", "Monday.com",
	},
	"Methodologies": {
		"Agile", "Scrum", "Kanban", "Waterfall", "DevOps", "Lean", "Six Sigma",
		"Design Thinking", "User-Centered Design", "Test-Driven Development", "BDD",
	},
}

// ExperienceTier maps a set of context keywords to a proficiency level.
// Tiers are checked in order; the first keyword hit wins.
type ExperienceTier struct {
	Name     string
	Level    string
	Keywords []string
}

var ExperienceTiers = []ExperienceTier{
	{
		Name:     "entry",
		Level:    "basic",
		Keywords: []string{"entry level", "junior", "0-1 years", "1-2 years", "recent graduate", "new grad"},
	},
	{
		Name:     "mid",
		Level:    "intermediate",
		Keywords: []string{"mid level", "intermediate", "2-3 years", "3-5 years", "experienced"},
	},
	{
		Name:     "senior",
		Level:    "advanced",
		Keywords: []string{"senior", "lead", "5+ years", "7+ years", "10+ years", "expert", "principal"},
	},
}

// CriticalKeywords mark a requirement as critical when found near the skill.
var CriticalKeywords = []string{"required", "must have", "essential", "mandatory", "necessary"}

// PreferredKeywords mark a requirement as preferred.
var PreferredKeywords = []string{"preferred", "nice to have", "bonus", "plus", "advantage"}

var (
	// AllSkills is every canonical skill name, flattened in category order.
	AllSkills []string

	categoryOf map[string]string
	patterns   map[string]*regexp.Regexp
)

func init() {
	categoryOf = make(map[string]string)
	patterns = make(map[string]*regexp.Regexp)
	for _, category := range CategoryNames {
		for _, skill := range Categories[category] {
			if _, seen := categoryOf[skill]; seen {
				// Figma appears under two categories; first one wins.
				continue
			}
			AllSkills = append(AllSkills, skill)
			categoryOf[skill] = category
			patterns[skill] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
		}
	}
}

// CategoryOf returns the category of a canonical skill name, or "Other" when
// the skill is not in the taxonomy.
func CategoryOf(skill string) string {
	if category, ok := categoryOf[skill]; ok {
		return category
	}
	return "Other"
}

// Pattern returns the compiled word-boundary matcher for a canonical skill.
// Word boundaries keep "Go" from matching inside "Google".
func Pattern(skill string) *regexp.Regexp {
	return patterns[skill]
}
