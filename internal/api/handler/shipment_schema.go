package handler

// --- Request / Response types ---

// createShipmentRequest carries the six required creation fields. Status is
// deliberately not accepted: new shipments always start out pending.
type createShipmentRequest struct {
	Name     string `json:"name"     validate:"required"`
	ID       string `json:"id"       validate:"required"`
	Supply   string `json:"supply"   validate:"required"`
	InitLoc  string `json:"initLoc"  validate:"required"`
	FinalLoc string `json:"finalLoc" validate:"required"`
	Date     string `json:"date"     validate:"required"`
}

// updateShipmentRequest carries any subset of the mutable fields. Fields
// absent from the payload decode to the empty string and keep their stored
// value — which also means a field cannot be cleared to "" via an update.
// The id is never part of a patch.
type updateShipmentRequest struct {
	Name     string `json:"name"`
	Supply   string `json:"supply"`
	InitLoc  string `json:"initLoc"`
	FinalLoc string `json:"finalLoc"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// messageResponse is the success envelope for operations with no payload.
type messageResponse struct {
	Message string `json:"message"`
}
