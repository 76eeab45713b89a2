package entity

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

var AllStatuses = []OrderStatus{
	StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Label is the status text shown to customers.
var statusLabels = map[OrderStatus]string{
	StatusPending:   "En attente",
	StatusConfirmed: "Confirmée",
	StatusPreparing: "En préparation",
	StatusReady:     "Prête",
	StatusDelivered: "Livrée",
}

func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// StatusFlow is the allowed transition graph. A nil graph permits any valid
// status to move to any other, which is what the dashboard uses by default so
// staff can override mistakes.
type StatusFlow map[OrderStatus][]OrderStatus

// LinearFlow only moves forward through the delivery pipeline.
func LinearFlow() StatusFlow {
	return StatusFlow{
		StatusPending:   {StatusConfirmed},
		StatusConfirmed: {StatusPreparing},
		StatusPreparing: {StatusReady},
		StatusReady:     {StatusDelivered},
		StatusDelivered: {},
	}
}

func (f StatusFlow) Allows(from, to OrderStatus) bool {
	if f == nil {
		return to.Valid()
	}
	for _, next := range f[from] {
		if next == to {
			return true
		}
	}
	return false
}
