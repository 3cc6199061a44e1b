package model

// ModelName is the closed set of model names accepted by the catalog routes.
type ModelName string

const (
	ModelTelecentro ModelName = "telecentro"
	ModelMovistar   ModelName = "movistar"
	ModelClaro      ModelName = "claro"
	ModelFibertel   ModelName = "fibertel"
)

// ModelNames returns every ModelName in declaration order.
func ModelNames() []ModelName {
	return []ModelName{ModelTelecentro, ModelMovistar, ModelClaro, ModelFibertel}
}

// IsValid reports whether m is one of the declared model names.
func (m ModelName) IsValid() bool {
	switch m {
	case ModelTelecentro, ModelMovistar, ModelClaro, ModelFibertel:
		return true
	}
	return false
}
