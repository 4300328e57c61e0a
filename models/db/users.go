package dbmodels

import (
	"fmt"
	"hr-pipeline-backend/models"
)

type User struct {
	BaseModel
	Email        string              `gorm:"type:varchar(255);index"`
	FirstName    string              `gorm:"type:varchar(150)"`
	LastName     string              `gorm:"type:varchar(150)"`
	Capabilities models.Capabilities `gorm:"type:text"`
	IsActive     bool
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

// Department плоский справочник подразделений с руководителем
type Department struct {
	BaseModel
	Name      string `gorm:"type:varchar(255)"`
	ManagerID string `gorm:"type:varchar(36);index"`
}
