package dto

type SimilarityRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

type SimilarityResult struct {
	SimilarityScore float64  `json:"similarity_score"`
	KeywordScore    float64  `json:"keyword_score"`
	Category        string   `json:"category"`
	Confidence      string   `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	ResumeKeywords  []string `json:"resume_keywords"`
	JobKeywords     []string `json:"job_keywords"`
}

type BatchSimilarityRequest struct {
	Resumes        []string `json:"resumes"`
	JobDescription string   `json:"job_description"`
}

type BatchSimilarityResult struct {
	Index           int     `json:"index"`
	SimilarityScore float64 `json:"similarity_score"`
}

type BatchSimilarityData struct {
	Results        []BatchSimilarityResult `json:"results"`
	TotalProcessed int                     `json:"total_processed"`
}

type ExtractionResult struct {
	Text        string `json:"text"`
	WordCount   int    `json:"word_count"`
	CharCount   int    `json:"char_count"`
	ExtractedAt string `json:"extracted_at"`
}

type CreateJobRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type JobSearchRequest struct {
	ResumeText string `json:"resume_text"`
	TopK       int    `json:"top_k"`
}
