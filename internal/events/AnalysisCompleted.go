package events

var AnalysisCompletedTopic = "AnalysisCompletedEvent"

type AnalysisCompleted struct {
	UserID          uint
	MatchPercentage float64
	MatchedSkills   int
	MissingSkills   int
	FromCache       bool
}
