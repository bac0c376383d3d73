package model

type CreateRegionRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CreateRegionResponse struct {
	ID string `json:"id"`
}

type GetRegionRequest struct {
	Code string `json:"code" form:"code"`
}

type GetRegionResponse struct {
	Region    Region     `json:"region"`
	Provinces []Province `json:"provinces"`
}

type SetRegionStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SetRegionStatusResponse struct{}

type CreateProvinceRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	RegionID string `json:"region_id"`
}

type CreateProvinceResponse struct {
	ID string `json:"id"`
}

type SetProvinceStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SetProvinceStatusResponse struct{}
