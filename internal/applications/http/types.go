package http

type submitReq struct {
	ProjectID      int64  `json:"projectId"`
	VolunteerName  string `json:"volunteerName"`
	VolunteerEmail string `json:"volunteerEmail"`
	VolunteerPhone string `json:"volunteerPhone"`
	Motivation     string `json:"motivation"`
}

type decideReq struct {
	Status string `json:"status"`
}
