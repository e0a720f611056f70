package matcher

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// technicalKeywords is the curated vocabulary used to rank skills ahead of
// plain frequent words. Multi-word entries are matched by substring, single
// words by token.
var technicalKeywords = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust",
	"php", "swift", "kotlin", "scala", "r", "matlab",

	// Web technologies
	"react", "angular", "vue", "nextjs", "next.js", "nodejs", "node.js", "express",
	"django", "flask", "fastapi", "spring", "asp.net", "html", "css", "sass",
	"tailwind", "bootstrap", "webpack", "vite",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
	"dynamodb", "oracle", "sqlite", "nosql", "firebase",

	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab", "github",
	"terraform", "ansible", "ci/cd", "devops", "linux", "unix",

	// Data science & ML
	"machine learning", "deep learning", "nlp", "computer vision", "data science",
	"tensorflow", "pytorch", "scikit-learn", "keras", "pandas", "numpy",
	"matplotlib", "seaborn", "jupyter", "spark", "hadoop", "ai", "artificial intelligence",

	// Mobile
	"android", "ios", "react native", "flutter", "xamarin",

	// Other technologies
	"rest api", "graphql", "microservices", "api", "git", "agile", "scrum",
	"jira", "testing", "unit testing", "selenium", "jest", "pytest",

	// Soft skills
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"project management", "collaboration",
}

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a about above after again against all am an and any are as at be because been " +
			"before being below between both but by can did do does doing down during each " +
			"few for from further had has have having he her here hers herself him himself " +
			"his how i if in into is it its itself just me more most my myself no nor not " +
			"now of off on once only or other our ours ourselves out over own same she " +
			"should so some such than that the their theirs them themselves then there " +
			"these they this those through to too under until up very was we were what " +
			"when where which while who whom why will with you your yours yourself yourselves") {
		stopWords[w] = struct{}{}
	}
}

// tokenize lowercases the text and splits it on separators while keeping the
// characters that appear inside skill names (c++, c#, node.js, ci/cd).
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return false
		case r == '+' || r == '#' || r == '.' || r == '/':
			return false
		}
		return true
	})
}

func isStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// ExtractKeywords returns up to topN keywords from text. Known technical
// keywords come first, followed by the remaining tokens ordered by frequency.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)
	// rawSet keeps every token so short skills (c#, ai) still match the
	// technical vocabulary; freq only counts the filtered tokens.
	rawSet := map[string]struct{}{}
	freq := map[string]int{}
	for _, t := range tokenize(text) {
		t = strings.Trim(t, "./")
		if t == "" {
			continue
		}
		rawSet[t] = struct{}{}
		if utf8.RuneCountInString(t) <= 2 || isStopWord(t) {
			continue
		}
		freq[t]++
	}

	technical := []string{}
	technicalSet := map[string]struct{}{}
	for _, kw := range technicalKeywords {
		found := false
		if strings.ContainsAny(kw, " ") {
			found = strings.Contains(lower, kw)
		} else {
			_, found = rawSet[kw]
		}
		if found {
			technical = append(technical, kw)
			technicalSet[kw] = struct{}{}
		}
	}

	frequent := make([]string, 0, len(freq))
	for w := range freq {
		if _, ok := technicalSet[w]; ok {
			continue
		}
		frequent = append(frequent, w)
	}
	sort.Slice(frequent, func(i, j int) bool {
		if freq[frequent[i]] != freq[frequent[j]] {
			return freq[frequent[i]] > freq[frequent[j]]
		}
		return frequent[i] < frequent[j]
	})

	keywords := append(technical, frequent...)
	if len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

// MatchKeywords compares two keyword lists case-insensitively and returns the
// keywords present in both and the job keywords absent from the resume, each
// sorted alphabetically.
func MatchKeywords(resumeKeywords, jobKeywords []string) (matched, missing []string) {
	resumeSet := map[string]struct{}{}
	for _, kw := range resumeKeywords {
		resumeSet[strings.ToLower(strings.TrimSpace(kw))] = struct{}{}
	}

	seen := map[string]struct{}{}
	for _, kw := range jobKeywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := resumeSet[k]; ok {
			matched = append(matched, k)
		} else {
			missing = append(missing, k)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// KeywordScore is the fraction of job keywords covered by the resume,
// capped at 1.0. An empty job keyword list scores 0.
func KeywordScore(resumeKeywords, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return 0.0
	}
	matched, _ := MatchKeywords(resumeKeywords, jobKeywords)
	score := float64(len(matched)) / float64(len(jobKeywords))
	if score > 1.0 {
		score = 1.0
	}
	return score
}
