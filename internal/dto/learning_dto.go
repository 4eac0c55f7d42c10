package dto

type LearningRequest struct {
	ProjectIdea string `json:"projectIdea"`
}

type LearningRecommendation struct {
	Title   string `json:"title"`
	Channel string `json:"channel"`
	VideoId string `json:"videoId"`
}

type RecommendationsEnvelope struct {
	Recommendations []LearningRecommendation `json:"recommendations"`
}
