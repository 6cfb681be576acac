package taxonomy

import "fmt"

// Course is a structured learning course entry.
type Course struct {
	Title      string
	URL        string
	Duration   string
	Instructor string
}

// Video is a free video tutorial entry.
type Video struct {
	Title    string
	URL      string
	Channel  string
	Duration string
}

// TaskTemplate is a canned learning task for a (skill, level) pair.
type TaskTemplate struct {
	Title          string
	Description    string
	EstimatedHours int
	Timeline       string
	Priority       string
}

// Docs maps skills to their official documentation.
var Docs = map[string]string{
	"Python":     "https://docs.python.org/3/",
	"React":      "https://react.dev/",
	"Django":     "https://docs.djangoproject.com/",
	"AWS":        "https://docs.aws.amazon.com/",
	"Docker":     "https://docs.docker.com/",
	"Kubernetes": "https://kubernetes.io/docs/",
	"Git":        "https://git-scm.com/doc",
	"JavaScript": "https://developer.mozilla.org/en-US/docs/Web/JavaScript",
	"SQL":        "https://www.w3schools.com/sql/",
}

// Courses maps (skill, level) to a LinkedIn Learning course.
var Courses = map[string]map[string]Course{
	"Python": {
		"beginner": {
			Title:      "Python Essential Training",
			URL:        "https://www.linkedin.com/learning/python-essential-training-2",
			Duration:   "4h 30m",
			Instructor: "Bill Weinman",
		},
		"intermediate": {
			Title:      "Advanced Python",
			URL:        "https://www.linkedin.com/learning/advanced-python",
			Duration:   "3h 45m",
			Instructor: "Joe Marini",
		},
		"advanced": {
			Title:      "Python Design Patterns",
			URL:        "https://www.linkedin.com/learning/python-design-patterns",
			Duration:   "2h 15m",
			Instructor: "Jungwoo Ryoo",
		},
	},
	"JavaScript": {
		"beginner": {
			Title:      "JavaScript Essential Training",
			URL:        "https://www.linkedin.com/learning/javascript-essential-training-3",
			Duration:   "5h 15m",
			Instructor: "Morten Rand-Hendriksen",
		},
		"intermediate": {
			Title:      "JavaScript: Advanced Concepts",
			URL:        "https://www.linkedin.com/learning/javascript-advanced-concepts",
			Duration:   "4h 20m",
			Instructor: "Sasha Vodnik",
		},
	},
	"React": {
		"beginner": {
			Title:      "React.js Essential Training",
			URL:        "https://www.linkedin.com/learning/react-js-essential-training",
			Duration:   "4h 45m",
			Instructor: "Eve Porcello",
		},
		"intermediate": {
			Title:      "React: Advanced Patterns",
			URL:        "https://www.linkedin.com/learning/react-advanced-patterns",
			Duration:   "3h 30m",
			Instructor: "Shaun Wassell",
		},
	},
	"Django": {
		"beginner": {
			Title:      "Django Essential Training",
			URL:        "https://www.linkedin.com/learning/django-essential-training",
			Duration:   "4h 10m",
			Instructor: "Justin Mitchel",
		},
		"intermediate": {
			Title:      "Django: Advanced Concepts",
			URL:        "https://www.linkedin.com/learning/django-advanced-concepts",
			Duration:   "3h 55m",
			Instructor: "Justin Mitchel",
		},
	},
	"AWS": {
		"beginner": {
			Title:      "AWS Essential Training for Developers",
			URL:        "https://www.linkedin.com/learning/aws-essential-training-for-developers",
			Duration:   "5h 30m",
			Instructor: "Jeremy Villeneuve",
		},
		"intermediate": {
			Title:      "AWS for Developers: Deploying Applications",
			URL:        "https://www.linkedin.com/learning/aws-for-developers-deploying-applications",
			Duration:   "4h 15m",
			Instructor: "Jeremy Villeneuve",
		},
	},
	"Docker": {
		"beginner": {
			Title:      "Docker Essential Training",
			URL:        "https://www.linkedin.com/learning/docker-essential-training",
			Duration:   "3h 45m",
			Instructor: "James Williams",
		},
		"intermediate": {
			Title:      "Docker: Advanced Concepts",
			URL:        "https://www.linkedin.com/learning/docker-advanced-concepts",
			Duration:   "3h 20m",
			Instructor: "James Williams",
		},
	},
	"Kubernetes": {
		"beginner": {
			Title:      "Kubernetes Essential Training",
			URL:        "https://www.linkedin.com/learning/kubernetes-essential-training",
			Duration:   "4h 25m",
			Instructor: "James Williams",
		},
	},
	"Git": {
		"beginner": {
			Title:      "Git Essential Training",
			URL:        "https://www.linkedin.com/learning/git-essential-training-the-basics",
			Duration:   "3h 15m",
			Instructor: "Kevin Skoglund",
		},
		"intermediate": {
			Title:      "Git: Advanced Techniques",
			URL:        "https://www.linkedin.com/learning/git-advanced-techniques",
			Duration:   "2h 45m",
			Instructor: "Kevin Skoglund",
		},
	},
	"SQL": {
		"beginner": {
			Title:      "SQL Essential Training",
			URL:        "https://www.linkedin.com/learning/sql-essential-training-2",
			Duration:   "4h 20m",
			Instructor: "Bill Weinman",
		},
		"intermediate": {
			Title:      "SQL: Advanced Querying",
			URL:        "https://www.linkedin.com/learning/sql-advanced-querying",
			Duration:   "3h 30m",
			Instructor: "Bill Weinman",
		},
	},
	"Machine Learning": {
		"beginner": {
			Title:      "Machine Learning with Python",
			URL:        "https://www.linkedin.com/learning/machine-learning-with-python",
			Duration:   "5h 45m",
			Instructor: "Frederic Ngen",
		},
	},
}

// Videos maps (skill, level) to a YouTube tutorial.
var Videos = map[string]map[string]Video{
	"Python": {
		"beginner": {
			Title:    "Python for Beginners - Full Course",
			URL:      "https://www.youtube.com/watch?v=_uQrJ0TkZlc",
			Channel:  "Programming with Mosh",
			Duration: "6h 14m",
		},
		"intermediate": {
			Title:    "Python Intermediate Tutorial",
			URL:      "https://www.youtube.com/watch?v=HGOBQPFzWKo",
			Channel:  "Corey Schafer",
			Duration: "4h 30m",
		},
	},
	"React": {
		"beginner": {
			Title:    "React Tutorial for Beginners",
			URL:      "https://www.youtube.com/watch?v=Ke90Tje7VS0",
			Channel:  "Programming with Mosh",
			Duration: "5h 20m",
		},
	},
	"AWS": {
		"beginner": {
			Title:    "AWS Tutorial for Beginners",
			URL:      "https://www.youtube.com/watch?v=ulprqHHWlng",
			Channel:  "Simplilearn",
			Duration: "4h 15m",
		},
	},
}

// TaskTemplates maps (skill, level) to a canned learning task.
var TaskTemplates = map[string]map[string]TaskTemplate{
	"Python": {
		"beginner": {
			Title:          "Complete Python Fundamentals Course",
			Description:    "Learn Python basics including syntax, data structures, and control flow",
			EstimatedHours: 20,
			Timeline:       "Week 1-2",
			Priority:       "high",
		},
		"intermediate": {
			Title:          "Build 2-3 Python Projects for Portfolio",
			Description:    "Create practical projects to demonstrate Python skills",
			EstimatedHours: 30,
			Timeline:       "Week 2-4",
			Priority:       "high",
		},
		"advanced": {
			Title:          "Master Advanced Python Concepts",
			Description:    "Learn decorators, generators, context managers, and design patterns",
			EstimatedHours: 25,
			Timeline:       "Week 3-5",
			Priority:       "medium",
		},
	},
	"React": {
		"beginner": {
			Title:          "Complete React Basics Tutorial",
			Description:    "Learn React fundamentals including components, state, and props",
			EstimatedHours: 25,
			Timeline:       "Week 1-3",
			Priority:       "high",
		},
		"intermediate": {
			Title:          "Build Full-Stack React Application",
			Description:    "Create a complete web application with React frontend and API backend",
			EstimatedHours: 35,
			Timeline:       "Week 3-6",
			Priority:       "high",
		},
	},
	"AWS": {
		"beginner": {
			Title:          "Get AWS Cloud Practitioner Certification",
			Description:    "Study and pass the AWS Cloud Practitioner exam",
			EstimatedHours: 15,
			Timeline:       "Week 1-2",
			Priority:       "high",
		},
		"intermediate": {
			Title:          "Deploy Application Using AWS Services",
			Description:    "Deploy a real application using EC2, S3, and other AWS services",
			EstimatedHours: 20,
			Timeline:       "Week 2-4",
			Priority:       "high",
		},
	},
	"Docker": {
		"beginner": {
			Title:          "Learn Docker Fundamentals",
			Description:    "Understand containers, images, and basic Docker commands",
			EstimatedHours: 15,
			Timeline:       "Week 1-2",
			Priority:       "medium",
		},
		"intermediate": {
			Title:          "Containerize Your Applications",
			Description:    "Dockerize existing applications and create multi-container setups",
			EstimatedHours: 20,
			Timeline:       "Week 2-4",
			Priority:       "medium",
		},
	},
	"Kubernetes": {
		"beginner": {
			Title:          "Learn Kubernetes Basics",
			Description:    "Understand pods, services, deployments, and basic kubectl commands",
			EstimatedHours: 20,
			Timeline:       "Week 2-4",
			Priority:       "medium",
		},
	},
	"Git": {
		"beginner": {
			Title:          "Master Git Fundamentals",
			Description:    "Learn version control, branching, merging, and collaboration",
			EstimatedHours: 10,
			Timeline:       "Week 1",
			Priority:       "medium",
		},
		"intermediate": {
			Title:          "Advanced Git Workflows",
			Description:    "Learn Git hooks, rebasing, and advanced collaboration techniques",
			EstimatedHours: 15,
			Timeline:       "Week 1-2",
			Priority:       "low",
		},
	},
}

// DocURL returns the official documentation URL for a skill, if one exists.
func DocURL(skill string) (string, bool) {
	url, ok := Docs[skill]
	return url, ok
}

// CourseFor returns the course catalog entry for a (skill, level) pair.
func CourseFor(skill, level string) (Course, bool) {
	course, ok := Courses[skill][level]
	return course, ok
}

// VideoFor returns the video catalog entry for a (skill, level) pair.
func VideoFor(skill, level string) (Video, bool) {
	video, ok := Videos[skill][level]
	return video, ok
}

// TemplateFor returns the task template for a (skill, level) pair.
func TemplateFor(skill, level string) (TaskTemplate, bool) {
	tmpl, ok := TaskTemplates[skill][level]
	return tmpl, ok
}

// Validate checks the shape of the static tables. A broken template is a
// data error and should abort startup rather than produce half-built plans.
func Validate() error {
	for skill, levels := range TaskTemplates {
		for level, tmpl := range levels {
			if tmpl.Title == "" {
				return fmt.Errorf("task template %s/%s: missing title", skill, level)
			}
			if tmpl.EstimatedHours <= 0 {
				return fmt.Errorf("task template %s/%s: estimated hours must be positive, got %d", skill, level, tmpl.EstimatedHours)
			}
			if tmpl.Timeline == "" {
				return fmt.Errorf("task template %s/%s: missing timeline", skill, level)
			}
		}
	}
	for skill, levels := range Courses {
		for level, course := range levels {
			if course.Title == "" || course.URL == "" {
				return fmt.Errorf("course catalog %s/%s: missing title or url", skill, level)
			}
		}
	}
	for skill, levels := range Videos {
		for level, video := range levels {
			if video.Title == "" || video.URL == "" {
				return fmt.Errorf("video catalog %s/%s: missing title or url", skill, level)
			}
		}
	}
	return nil
}
