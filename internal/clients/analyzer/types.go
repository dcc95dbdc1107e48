package analyzer

import "encoding/json"

// Recommendation is the per-skill learning guidance the analysis service
// attaches to missing skills.
type Recommendation struct {
	Courses       []string `json:"courses"`
	Difficulty    string   `json:"difficulty"`
	TimeEstimate  string   `json:"time_estimate"`
	RelatedSkills []string `json:"related_skills,omitempty"`
}

// AnalysisResult is the normalized skill gap analysis. The service has
// shipped two generations of field names (matched_skills vs matched);
// both decode into this one schema.
type AnalysisResult struct {
	MatchedSkills     []string                  `json:"matched_skills"`
	MissingSkills     []string                  `json:"missing_skills"`
	AdditionalSkills  []string                  `json:"additional_skills"`
	MatchPercentage   float64                   `json:"match_percentage"`
	TotalJobSkills    int                       `json:"total_job_skills"`
	TotalResumeSkills int                       `json:"total_resume_skills"`
	Recommendations   map[string]Recommendation `json:"recommendations,omitempty"`
}

type analysisResultWire struct {
	MatchedSkills    []string `json:"matched_skills"`
	MissingSkills    []string `json:"missing_skills"`
	AdditionalSkills []string `json:"additional_skills"`

	// legacy field names
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
	Additional []string `json:"additional"`

	MatchPercentage   float64                   `json:"match_percentage"`
	TotalJobSkills    int                       `json:"total_job_skills"`
	TotalResumeSkills int                       `json:"total_resume_skills"`
	Recommendations   map[string]Recommendation `json:"recommendations"`
}

func (r *AnalysisResult) UnmarshalJSON(b []byte) error {
	var wire analysisResultWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	r.MatchedSkills = firstNonNil(wire.MatchedSkills, wire.Matched)
	r.MissingSkills = firstNonNil(wire.MissingSkills, wire.Missing)
	r.AdditionalSkills = firstNonNil(wire.AdditionalSkills, wire.Additional)
	r.MatchPercentage = wire.MatchPercentage
	r.TotalJobSkills = wire.TotalJobSkills
	r.TotalResumeSkills = wire.TotalResumeSkills
	r.Recommendations = wire.Recommendations
	return nil
}

func firstNonNil(preferred, fallback []string) []string {
	if preferred != nil {
		return preferred
	}
	if fallback != nil {
		return fallback
	}
	return []string{}
}

// Extraction is the response of the skill extraction endpoint.
type Extraction struct {
	TotalSkills int      `json:"total_skills"`
	Skills      []string `json:"skills"`
}

// LearningPathItem is one step of a generated learning path.
type LearningPathItem struct {
	Skill         string   `json:"skill"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	EstimatedTime string   `json:"estimated_time"`
	Resources     []string `json:"resources"`
	RelatedSkills []string `json:"related_skills"`
	Priority      string   `json:"priority"`
}

type LearningPath struct {
	TotalSkills        int                `json:"total_skills"`
	EstimatedTotalTime string             `json:"estimated_total_time"`
	TimeAvailable      string             `json:"time_available"`
	CurrentLevel       string             `json:"current_level"`
	Path               []LearningPathItem `json:"learning_path"`
	Recommendation     string             `json:"recommendation"`
}

type Health struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	ModelsLoaded bool   `json:"models_loaded"`
	Timestamp    string `json:"timestamp"`
}
