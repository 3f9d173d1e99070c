package dto

type LogEffortRequest struct {
	UserID  uint  `json:"userId"`
	Minutes int64 `json:"minutes"`
}

type ChangeStatusRequest struct {
	UserID uint   `json:"userId"`
	Status string `json:"status"`
}

type HourEntryRequest struct {
	UserID      uint   `json:"userId"`
	Minutes     int64  `json:"minutes"`
	Description string `json:"description"`
}
