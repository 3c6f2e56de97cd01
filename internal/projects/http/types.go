package http

type createReq struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	Status           string `json:"status"`
	TimeCommitment   string `json:"timeCommitment"`
	Duration         string `json:"duration"`
	Location         string `json:"location"`
	ImageURL         string `json:"imageUrl"`
	VolunteersNeeded int    `json:"volunteersNeeded"`
}
