package http

import (
	"tutorial-api/internal/catalog"
)

type getReq struct {
	ModelName string `uri:"model_name" binding:"required,modelname"`
}

type getResp struct {
	ModelName string `json:"model_name" example:"movistar"`
}

func newGetResp(out catalog.GetOutput) getResp {
	return getResp{ModelName: string(out.Name)}
}

type listResp struct {
	ModelNames []string `json:"model_names" example:"telecentro,movistar,claro,fibertel"`
}

func newListResp(out catalog.ListOutput) listResp {
	names := make([]string, len(out.Names))
	for i, n := range out.Names {
		names[i] = string(n)
	}
	return listResp{ModelNames: names}
}
