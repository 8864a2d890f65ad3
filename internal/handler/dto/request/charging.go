package request

type ChargeUpdateRequest struct {
	ChargerID               int64   `json:"charger_id" binding:"required"`
	CurrentSoc              float64 `json:"current_soc" binding:"required,gte=0,lte=100"`
	CumulativePriceOfCharge float64 `json:"cumulative_price_of_charge" binding:"gte=0"`
	CumulativePower         float64 `json:"cumulative_power" binding:"gte=0"`
}

type FinishChargingRequest struct {
	ChargerID int64 `json:"charger_id" binding:"required"`
}

type StartChargingRequest struct {
	ChargerID    int64   `json:"charger_id" binding:"required"`
	StartSoc     float64 `json:"start_soc" binding:"gte=0,lt=100"`
	TargetSoc    float64 `json:"target_soc" binding:"required,gt=0,lte=100,gtfield=StartSoc"`
	RateOfCharge float64 `json:"rate_of_charge" binding:"required,gt=0"`
}

type StopChargingRequest struct {
	ChargerID int64 `json:"charger_id" binding:"required"`
}
