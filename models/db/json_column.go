package dbmodels

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jsonDBDataType jsonb для postgres, для остальных диалектов - text
func jsonDBDataType(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

func scanJSON(value interface{}, out interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, out)
	case string:
		return json.Unmarshal([]byte(v), out)
	case nil:
		return nil
	}
	return errors.Errorf("неподдерживаемый тип значения json-поля: %T", value)
}
