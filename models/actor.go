package models

// Actor инициатор операции: идентификатор и набор возможностей из токена,
// Origin - сетевой адрес запроса для журнала аудита
type Actor struct {
	ID           string
	Capabilities Capabilities
	Origin       string
}

func (a Actor) Has(capability Capability) bool {
	return a.Capabilities.Has(capability)
}
