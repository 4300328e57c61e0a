package models

import (
	"database/sql/driver"
	"encoding/json"
	"slices"

	"github.com/pkg/errors"
)

type Capability string

const (
	CapabilityApplicant   Capability = "applicant"
	CapabilityRecruiter   Capability = "recruiter"
	CapabilityInterviewer Capability = "interviewer"
	CapabilityManager     Capability = "manager"
	CapabilityAdmin       Capability = "admin"
)

var capabilityHumanName = map[Capability]string{
	CapabilityApplicant:   "Кандидат",
	CapabilityRecruiter:   "Рекрутер",
	CapabilityInterviewer: "Интервьюер",
	CapabilityManager:     "Руководитель",
	CapabilityAdmin:       "Администратор",
}

func (c Capability) ToHuman() string {
	if human, exist := capabilityHumanName[c]; exist {
		return human
	}
	return string(c)
}

func (c Capability) Validate() error {
	if _, exist := capabilityHumanName[c]; !exist {
		return errors.Errorf("неизвестная роль: %v", c)
	}
	return nil
}

const SystemUser = "Система"

// Capabilities хранится в БД как json-массив
type Capabilities []Capability

func (c Capabilities) Has(capability Capability) bool {
	return slices.Contains(c, capability)
}

func (c Capabilities) HasAny(list ...Capability) bool {
	for _, capability := range list {
		if c.Has(capability) {
			return true
		}
	}
	return false
}

// CanManagePipeline рекрутер или администратор
func (c Capabilities) CanManagePipeline() bool {
	return c.HasAny(CapabilityRecruiter, CapabilityAdmin)
}

// CanOrganizeInterview может назначать/переносить/отменять собеседования
func (c Capabilities) CanOrganizeInterview() bool {
	return c.HasAny(CapabilityRecruiter, CapabilityManager, CapabilityAdmin)
}

// CanInterview может быть назначен интервьюером
func (c Capabilities) CanInterview() bool {
	return c.HasAny(CapabilityInterviewer, CapabilityManager, CapabilityAdmin)
}

func (c Capabilities) IsStaff() bool {
	return c.HasAny(CapabilityRecruiter, CapabilityInterviewer, CapabilityManager, CapabilityAdmin)
}

func (c Capabilities) Value() (driver.Value, error) {
	if c == nil {
		c = Capabilities{}
	}
	valueString, err := json.Marshal(c)
	return string(valueString), err
}

func (c *Capabilities) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = Capabilities{}
		return nil
	}
	return errors.Errorf("неподдерживаемый тип значения для Capabilities: %T", value)
}

func ParseCapabilities(values []string) Capabilities {
	result := make(Capabilities, 0, len(values))
	for _, value := range values {
		capability := Capability(value)
		if capability.Validate() == nil {
			result = append(result, capability)
		}
	}
	return result
}
