package dto

import "time"

type JobResponseDTO struct {
	ID                uint       `json:"id"`
	CompanyID         uint       `json:"company_id"`
	ExamID            *uint      `json:"exam_id,omitempty"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	PlaceOfAssignment string     `json:"place_of_assignment,omitempty"`
	ManpowerNeeded    *int       `json:"manpower_needed,omitempty"`
	Skills            []string   `json:"skills"`
	PostedDate        *time.Time `json:"posted_date,omitempty"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	MatchPercentage   *int       `json:"match_percentage,omitempty"`
}

type CompanyResponseDTO struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Address         string     `json:"address,omitempty"`
	LogoURL         *string    `json:"logo_url,omitempty"`
	JobCount        int        `json:"job_count"`
	TotalManpower   int        `json:"total_manpower"`
	LatestPosting   *time.Time `json:"latest_posting,omitempty"`
	LocationMatches int        `json:"location_matches"`
}
