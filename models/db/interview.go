package dbmodels

import (
	"hr-pipeline-backend/models"
	"time"
)

type Interview struct {
	BaseModel
	ApplicationID    string       `gorm:"type:varchar(36);index"`
	Application      *Application `gorm:"foreignKey:ApplicationID"`
	Title            string       `gorm:"type:varchar(255)"`
	Round            int
	ScheduledAt      time.Time
	DurationMinutes  int
	Location         string
	MeetingLink      string
	Notes            string
	Status           models.InterviewStatus `gorm:"type:varchar(50)"`
	CancelReason     string
	RescheduleReason string
	CreatedBy        string `gorm:"type:varchar(36)"`
	CompletedAt      *time.Time
	Assignments      []InterviewerAssignment `gorm:"foreignKey:InterviewID"`
}

func (i Interview) InterviewerIDs() []string {
	result := make([]string, 0, len(i.Assignments))
	for _, assignment := range i.Assignments {
		result = append(result, assignment.InterviewerID)
	}
	return result
}

type InterviewerAssignment struct {
	BaseModel
	InterviewID    string `gorm:"type:varchar(36);uniqueIndex:idx_assignment_interview_interviewer"`
	InterviewerID  string `gorm:"type:varchar(36);uniqueIndex:idx_assignment_interview_interviewer;index"`
	Feedback       string
	Rating         *int
	Recommendation models.Recommendation `gorm:"type:varchar(50)"`
	Attended       *bool
	CompletedAt    *time.Time
}

func (a InterviewerAssignment) IsCompleted() bool {
	return a.CompletedAt != nil
}
