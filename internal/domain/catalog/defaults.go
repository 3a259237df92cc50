package catalog

func DefaultMarketData() MarketData {
	return MarketData{
		RequiredSkills: []string{
			"Python", "JavaScript", "Machine Learning", "Data Analysis",
			"SQL", "Cloud Computing", "Agile Methodologies", "DevOps",
			"Artificial Intelligence", "Blockchain", "Communication",
			"Critical Thinking", "Problem Solving", "Teamwork",
		},
		CareerPaths: CareerPaths{
			{
				Name:           "Data Scientist",
				RequiredSkills: []string{"Python", "Machine Learning", "Data Analysis", "SQL"},
				SalaryRange:    "$80,000 - $150,000",
				GrowthRate:     "High",
				Education:      "Bachelor's or Master's in Computer Science, Statistics, or related field",
			},
			{
				Name:           "Web Developer",
				RequiredSkills: []string{"JavaScript", "HTML/CSS", "React", "Node.js"},
				SalaryRange:    "$70,000 - $120,000",
				GrowthRate:     "Medium",
				Education:      "Bachelor's in Computer Science or self-taught with portfolio",
			},
			{
				Name:           "AI Engineer",
				RequiredSkills: []string{"Python", "Machine Learning", "Artificial Intelligence", "Deep Learning"},
				SalaryRange:    "$90,000 - $160,000",
				GrowthRate:     "Very High",
				Education:      "Master's or PhD in Computer Science or related field",
			},
		},
	}
}

func DefaultResources() Resources {
	return Resources{
		"Python": {
			{Title: "Python for Beginners", URL: "https://www.python.org/about/gettingstarted/", Type: "tutorial"},
			{Title: "Advanced Python Programming", URL: "https://realpython.com/", Type: "course"},
		},
		"JavaScript": {
			{Title: "JavaScript Fundamentals", URL: "https://javascript.info/", Type: "tutorial"},
			{Title: "Modern JavaScript", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript", Type: "documentation"},
		},
		"Machine Learning": {
			{Title: "Intro to ML", URL: "https://www.coursera.org/learn/machine-learning", Type: "course"},
			{Title: "TensorFlow Basics", URL: "https://www.tensorflow.org/learn", Type: "tutorial"},
		},
		"Data Analysis": {
			{Title: "Data Analysis with Python", URL: "https://pandas.pydata.org/docs/getting_started/index.html", Type: "tutorial"},
			{Title: "SQL for Data Analysis", URL: "https://mode.com/sql-tutorial/", Type: "tutorial"},
		},
	}
}

func Default() Catalog {
	return Catalog{Market: DefaultMarketData(), Resources: DefaultResources()}
}
