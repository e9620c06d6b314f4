package skills

var defaultAliases = map[string]string{
	"golang":                "go",
	"go lang":               "go",
	"js":                    "javascript",
	"ecmascript":            "javascript",
	"es6":                   "javascript",
	"ts":                    "typescript",
	"k8s":                   "kubernetes",
	"react.js":              "react",
	"reactjs":               "react",
	"react js":              "react",
	"vue.js":                "vue",
	"vuejs":                 "vue",
	"nodejs":                "node.js",
	"node":                  "node.js",
	"next.js":               "nextjs",
	"angularjs":             "angular",
	"postgres":              "postgresql",
	"psql":                  "postgresql",
	"mongo":                 "mongodb",
	"amazon web services":   "aws",
	"google cloud":          "gcp",
	"google cloud platform": "gcp",
	"ms azure":              "azure",
	"microsoft azure":       "azure",
	"py":                    "python",
	"python3":               "python",
	"c sharp":               "c#",
	"cpp":                   "c++",
	"dotnet":                ".net",
	"ml":                    "machine learning",
	"ai":                    "artificial intelligence",
	"nlp":                   "natural language processing",
	"cicd":                  "ci/cd",
	"tf":                    "terraform",
	"gh actions":            "github actions",
	"rest":                  "rest apis",
	"restful":               "rest apis",
	"restful apis":          "rest apis",
	"rest api":              "rest apis",
	"sklearn":               "scikit-learn",
	"scikit learn":          "scikit-learn",
	"html5":                 "html",
	"css3":                  "css",
	"tailwindcss":           "tailwind",
	"gql":                   "graphql",
	"elastic":               "elasticsearch",
	"dynamo":                "dynamodb",
	"rabbit":                "rabbitmq",
}

var defaultVocabulary = []string{
	"go", "python", "java", "javascript", "typescript", "ruby", "php", "rust", "scala",
	"kotlin", "swift", "c", "c++", "c#", ".net", "r", "sql", "bash", "perl", "elixir",
	"react", "vue", "angular", "svelte", "nextjs", "node.js", "express", "django",
	"flask", "fastapi", "spring", "rails", "laravel", "html", "css", "sass", "tailwind",
	"redux", "graphql", "rest apis", "grpc", "webpack", "jest", "cypress",
	"postgresql", "mysql", "sqlite", "mongodb", "redis", "elasticsearch", "dynamodb",
	"cassandra", "kafka", "rabbitmq", "snowflake", "bigquery", "spark", "hadoop", "airflow",
	"dbt", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
	"machine learning", "deep learning", "artificial intelligence",
	"natural language processing", "data analysis", "statistics", "tableau", "power bi",
	"aws", "gcp", "azure", "docker", "kubernetes", "terraform", "ansible", "helm",
	"jenkins", "github actions", "ci/cd", "linux", "git", "prometheus", "grafana",
	"microservices", "distributed systems", "system design", "agile", "scrum", "jira",
	"figma", "excel", "communication", "leadership", "project management",
}

// DefaultAliases returns a fresh copy of the built-in alias table.
func DefaultAliases() map[string]string {
	out := make(map[string]string, len(defaultAliases))
	for k, v := range defaultAliases {
		out[k] = v
	}
	return out
}

// DefaultVocabulary returns a fresh set of the built-in canonical skills.
func DefaultVocabulary() map[string]bool {
	out := make(map[string]bool, len(defaultVocabulary))
	for _, s := range defaultVocabulary {
		out[s] = true
	}
	return out
}
