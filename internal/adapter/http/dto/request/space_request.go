package request

type LocationRequest struct {
	Section  string `json:"section"`
	Level    int    `json:"level"`
	Position string `json:"position"`
}

type CreateSpaceRequest struct {
	Code     string          `json:"code" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Location LocationRequest `json:"location"`
}

type SpaceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
