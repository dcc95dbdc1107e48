package skills

// Entry is one canonical skill with the category it belongs to and the
// spelling variants that map back to it.
type Entry struct {
	Name     string
	Category string
	Variants []string
}

type Vocabulary struct {
	entries []Entry
}

// categories and canonical skill names mirror the analysis service's
// skills database so local matching and upstream results agree.
var categorized = []struct {
	category string
	skills   []string
}{
	{"programming_languages", []string{
		"python", "javascript", "typescript", "java", "c++", "c#", "ruby", "go",
		"rust", "kotlin", "swift", "php", "r", "matlab", "scala", "perl", "bash",
		"powershell", "sql", "objective-c", "dart", "julia", "haskell", "elixir",
	}},
	{"frontend", []string{
		"react", "angular", "vue.js", "svelte", "next.js", "nuxt.js", "gatsby",
		"html", "css", "sass", "less", "tailwind css", "bootstrap", "material ui",
		"jquery", "webpack", "babel", "redux", "graphql",
	}},
	{"backend", []string{
		"node.js", "express", "django", "flask", "fastapi", "spring boot", "rails",
		"asp.net", "laravel", "gin", "echo", "fiber", "nestjs",
		"grpc", "rest api", "microservices", "serverless",
	}},
	{"databases", []string{
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
		"oracle", "sql server", "sqlite", "dynamodb", "firebase", "neo4j",
		"influxdb", "clickhouse", "mariadb", "memcached", "etcd",
	}},
	{"cloud_devops", []string{
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
		"jenkins", "gitlab ci", "github actions", "circleci", "prometheus",
		"grafana", "nginx", "apache", "load balancing", "cloudflare", "heroku",
		"vercel", "netlify",
	}},
	{"data_science_ml", []string{
		"machine learning", "deep learning", "tensorflow", "pytorch", "keras",
		"scikit-learn", "pandas", "numpy", "matplotlib", "jupyter", "spark",
		"hadoop", "airflow", "computer vision", "nlp", "opencv", "spacy", "nltk",
		"transformers", "langchain",
	}},
	{"mobile", []string{
		"react native", "flutter", "ionic", "xamarin", "swiftui",
		"android studio", "xcode", "expo", "android", "ios",
	}},
	{"testing_qa", []string{
		"jest", "mocha", "cypress", "selenium", "playwright", "puppeteer",
		"junit", "pytest", "testng", "jasmine", "postman", "jmeter", "cucumber",
	}},
	{"security", []string{
		"oauth", "jwt", "ssl/tls", "encryption", "penetration testing", "owasp",
		"wireshark", "cryptography", "firewall", "vpn",
	}},
	{"soft_skills", []string{
		"agile", "scrum", "kanban", "leadership", "communication", "teamwork",
		"problem solving", "project management", "jira", "confluence",
	}},
}

var variants = map[string][]string{
	"react":            {"reactjs", "react.js", "react js"},
	"vue.js":           {"vue", "vuejs", "vue js"},
	"angular":          {"angularjs", "angular.js", "angular js"},
	"node.js":          {"nodejs", "node js"},
	"express":          {"expressjs", "express.js", "express js"},
	"mongodb":          {"mongo db", "mongo-db"},
	"postgresql":       {"postgres", "pgsql"},
	"rest api":         {"restapi", "rest-api", "restful api"},
	"javascript":       {"ecmascript", "es6", "es2015"},
	"c++":              {"cpp", "cplusplus", "c plus plus"},
	"c#":               {"csharp", "c sharp", ".net"},
	"machine learning": {"machine-learning"},
	"deep learning":    {"deep-learning"},
	"aws":              {"amazon web services"},
	"gcp":              {"google cloud platform", "google cloud"},
	"azure":            {"microsoft azure"},
	"docker":           {"containerization"},
	"kubernetes":       {"k8s", "kube"},
	"html":             {"html5"},
	"css":              {"css3"},
	"sass":             {"scss"},
	"mysql":            {"my sql"},
	"oracle":           {"oracle db", "oracle database"},
	"elasticsearch":    {"elastic search"},
	"grpc":             {"g rpc"},
	"terraform":        {"tf"},
	"jenkins":          {"jenkins ci"},
}

var defaultVocabulary = buildDefault()

func buildDefault() *Vocabulary {
	v := &Vocabulary{}
	for _, group := range categorized {
		for _, name := range group.skills {
			v.entries = append(v.entries, Entry{
				Name:     name,
				Category: group.category,
				Variants: variants[name],
			})
		}
	}
	return v
}

// Default returns the shared skill vocabulary. It is immutable.
func Default() *Vocabulary {
	return defaultVocabulary
}

func (v *Vocabulary) Entries() []Entry {
	return v.entries
}

func (v *Vocabulary) Names() []string {
	names := make([]string, 0, len(v.entries))
	for _, e := range v.entries {
		names = append(names, e.Name)
	}
	return names
}

func (v *Vocabulary) Category(skill string) string {
	for _, e := range v.entries {
		if e.Name == skill {
			return e.Category
		}
	}
	return ""
}

func (v *Vocabulary) Categories() []string {
	seen := map[string]bool{}
	var categories []string
	for _, e := range v.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	return categories
}
