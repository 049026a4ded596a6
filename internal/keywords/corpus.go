// Static vocabulary for job detection
// Two sets: domain terms (IT vocabulary) and job-signal terms (hiring vocabulary)

package keywords

import (
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Corpus holds the two immutable phrase sets. Build one with Default() at
// startup and pass it into the classifier/extractor - never mutate it.
type Corpus struct {
	domainTerms    []string
	domainTermSet  mapset.Set[string]
	jobSignalTerms []string
}

// domain terms: technologies, frameworks, roles, platforms
var domainTerms = []string{
	//programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "php",
	"ruby", "go", "golang", "rust", "swift", "kotlin", "scala", "perl",
	"r programming", "matlab", "sql", "html", "css", "dart", "elixir",

	//frameworks & libraries
	"react", "angular", "vue", "svelte", "django", "flask", "fastapi",
	"spring", "node.js", "express", "laravel", "rails", "asp.net",
	"next.js", "nuxt", "jquery", "bootstrap", "tailwind",

	//mobile
	"android", "ios", "flutter", "react native", "xamarin", "ionic",
	"mobile app", "mobile development",

	//web
	"frontend", "front-end", "backend", "back-end", "fullstack",
	"full-stack", "web developer", "web development", "ui/ux",
	"responsive design", "progressive web app", "pwa",

	//devops & cloud
	"devops", "aws", "azure", "gcp", "google cloud", "kubernetes",
	"docker", "jenkins", "gitlab", "github actions", "ci/cd",
	"terraform", "ansible", "puppet", "chef", "cloudformation",
	"microservices", "serverless", "lambda",

	//databases
	"database", "mysql", "postgresql", "mongodb", "redis",
	"elasticsearch", "cassandra", "dynamodb", "oracle", "mariadb",
	"nosql", "sql server", "sqlite", "firestore", "bigquery",

	//data science & ai
	"data scientist", "data analyst", "data engineer", "machine learning",
	"ml engineer", "ai", "artificial intelligence", "deep learning",
	"neural network", "tensorflow", "pytorch", "scikit-learn",
	"data mining", "big data", "hadoop", "spark", "kafka",
	"data visualization", "tableau", "power bi", "looker",

	//software engineering
	"software engineer", "software developer", "programmer",
	"developer", "engineer", "coder", "technical lead", "tech lead",
	"architect", "solutions architect", "system architect",

	//qa & testing
	"qa engineer", "quality assurance", "tester", "test engineer",
	"automation testing", "selenium", "cypress", "jest", "mocha",
	"unit testing", "integration testing", "performance testing",

	//security
	"cybersecurity", "security engineer", "infosec", "penetration testing",
	"ethical hacking", "security analyst", "soc analyst", "ciso",
	"vulnerability assessment", "network security",

	//networking & systems
	"network engineer", "system administrator", "sysadmin", "linux admin",
	"windows admin", "network administrator", "it support", "helpdesk",
	"infrastructure", "server", "networking",

	//project management & agile
	"scrum master", "product owner", "project manager", "agile",
	"scrum", "kanban", "jira", "product manager", "technical pm",

	//design
	"ui designer", "ux designer", "product designer", "graphic designer",
	"web designer", "figma", "sketch", "adobe xd", "photoshop",

	//blockchain & emerging tech
	"blockchain", "web3", "cryptocurrency", "solidity", "ethereum",
	"smart contract", "defi", "nft",

	//erp & business systems
	"sap", "salesforce", "erp", "crm", "dynamics 365",
	"workday", "servicenow",

	//general it terms
	"it", "information technology", "tech", "technology", "software",
	"hardware", "computer", "coding", "programming", "development",
	"digital", "api", "rest api", "graphql", "microservice",
	"version control", "git", "code review", "debugging",

	//job titles
	"cto", "cio", "vp engineering", "engineering manager",
	"team lead", "senior developer", "junior developer",
	"intern developer", "graduate developer",
}

// job-signal terms: hiring/employment vocabulary
var jobSignalTerms = []string{
	//direct job terms
	"hiring", "vacancy", "vacancies", "position", "opening", "opportunity",
	"job", "role", "career", "recruitment", "recruiting", "recruit",

	//application terms
	"apply", "application", "resume", "cv", "curriculum vitae",
	"cover letter", "portfolio", "send cv", "submit resume",

	//urgency & status
	"urgent", "urgently", "immediately", "asap", "now hiring",
	"we are hiring", "looking for", "seeking", "required",
	"wanted", "need", "join our team", "join us",

	//employment type
	"full-time", "full time", "fulltime", "part-time", "part time",
	"parttime", "contract", "freelance", "remote", "onsite",
	"on-site", "hybrid", "work from home", "wfh", "permanent",
	"temporary", "internship", "intern",

	//compensation
	"salary", "compensation", "package", "benefits", "pay",
	"rate", "per hour", "per month", "annual", "ksh", "usd",
	"competitive salary", "attractive package",

	//experience
	"experience", "years", "yrs", "senior", "junior", "entry level",
	"mid-level", "expert", "fresher", "graduate",

	//location
	"nairobi", "mombasa", "kisumu", "location", "based in",
	"office", "workplace",
}

// Default builds the corpus from the built-in term lists.
func Default() *Corpus {
	return New(domainTerms, jobSignalTerms)
}

// New builds a corpus from explicit term lists. Terms are lowered and
// duplicates dropped, keeping first-occurrence order for domain terms.
func New(domain, jobSignal []string) *Corpus {
	c := &Corpus{
		domainTermSet: mapset.NewSet[string](),
	}
	for _, term := range domain {
		term = strings.ToLower(term)
		if c.domainTermSet.Add(term) {
			c.domainTerms = append(c.domainTerms, term)
		}
	}
	signalSeen := mapset.NewSet[string]()
	for _, term := range jobSignal {
		term = strings.ToLower(term)
		if signalSeen.Add(term) {
			c.jobSignalTerms = append(c.jobSignalTerms, term)
		}
	}
	return c
}

// DomainTerms returns the domain terms in corpus order.
func (c *Corpus) DomainTerms() []string {
	return c.domainTerms
}

// JobSignalTerms returns the job-signal terms in corpus order.
func (c *Corpus) JobSignalTerms() []string {
	return c.jobSignalTerms
}

// IsDomainTerm reports whether term is in the domain set.
func (c *Corpus) IsDomainTerm(term string) bool {
	return c.domainTermSet.Contains(strings.ToLower(term))
}

// HasDomainTerm reports whether any domain term is a substring of text.
// Text must already be normalized with Normalize.
func (c *Corpus) HasDomainTerm(text string) bool {
	for _, term := range c.domainTerms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// HasJobSignalTerm reports whether any job-signal term is a substring of text.
func (c *Corpus) HasJobSignalTerm(text string) bool {
	for _, term := range c.jobSignalTerms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// Normalize lowercases text and strips diacritics so OCR output with odd
// accents still matches the plain-ascii term lists.
func Normalize(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}
