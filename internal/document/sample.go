package document

import "github.com/jonathan/resume-builder/internal/types"

// Sample returns the fixed demo dataset offered by "load sample".
func Sample() types.ResumeDocument {
	return types.ResumeDocument{
		Personal: types.Personal{
			Name:     "John Smith",
			Email:    "john.smith@email.com",
			Phone:    "(555) 123-4567",
			Address:  "New York, NY",
			LinkedIn: "linkedin.com/in/johnsmith",
			Website:  "johnsmith.dev",
		},
		Summary: "Experienced web developer with 5+ years creating modern, responsive applications. Passionate about clean code and user experience.",
		Experience: []types.Experience{
			{
				Title:       "Senior Web Developer",
				Company:     "Tech Corp",
				Location:    "New York, NY",
				StartDate:   "2020-01",
				EndDate:     types.PresentSentinel,
				Description: "Led development of 10+ web applications using modern frameworks. Improved site performance by 40% and mentored junior developers.",
			},
		},
		Education: []types.Education{
			{
				Degree:    "Bachelor of Science in Computer Science",
				School:    "University of Technology",
				Location:  "New York, NY",
				StartDate: "2016-09",
				EndDate:   "2020-05",
			},
		},
		Skills: []string{"JavaScript", "React", "Node.js", "Python", "SQL", "Git"},
		Projects: []types.Project{
			{
				Name:         "E-commerce Platform",
				Description:  "Built full-stack e-commerce solution with payment integration",
				Technologies: "React, Node.js, MongoDB",
			},
		},
		Certifications: []types.Certification{
			{
				Name:   "AWS Certified Developer",
				Issuer: "Amazon Web Services",
				Date:   "2023-06",
			},
		},
	}
}
