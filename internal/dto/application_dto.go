package dto

import "time"

type IDUploadDTO struct {
	Path string `json:"path" binding:"required"`
}

type ApplicationProgressDTO struct {
	ApplicationID uint       `json:"application_id"`
	JobID         uint       `json:"job_id"`
	ResumeViewed  bool       `json:"resume_viewed"`
	ExamCompleted bool       `json:"exam_completed"`
	IDUploaded    bool       `json:"id_uploaded"`
	ReadyToSubmit bool       `json:"ready_to_submit"`
	Status        string     `json:"status"`
	ExamAttemptID *uint      `json:"exam_attempt_id,omitempty"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
}
