package catalog

import "tutorial-api/internal/model"

type GetOutput struct {
	Name model.ModelName
}

type ListOutput struct {
	Names []model.ModelName
}
