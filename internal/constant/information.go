package constant

type InformationStatus string

const (
	InformationStatusPending   InformationStatus = "pending"
	InformationStatusCompleted InformationStatus = "completed"
)
