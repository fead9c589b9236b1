package orderControllers

import "github.com/Wiss1219/kotobcom-bookstore-msaken/models"

// ProgressStep is one stage of the tracking timeline.
type ProgressStep struct {
	ID        models.OrderStatus `json:"id"`
	Label     string             `json:"label"`
	LabelAR   string             `json:"label_ar"`
	Completed bool               `json:"completed"`
	Current   bool               `json:"current"`
}

var stepLabels = map[models.OrderStatus][2]string{
	models.OrderStatusPending:   {"Order Received", "تم استلام الطلب"},
	models.OrderStatusConfirmed: {"Order Confirmed", "تم تأكيد الطلب"},
	models.OrderStatusShipped:   {"Shipped", "تم الشحن"},
	models.OrderStatusDelivered: {"Delivered", "تم التسليم"},
}

// StatusSteps maps an order's status onto the four fixed steps: stages at or
// before the current status are completed, the matching one is current.
func StatusSteps(status models.OrderStatus) []ProgressStep {
	current := models.StatusIndex(status)
	steps := make([]ProgressStep, len(models.StatusSequence))
	for i, st := range models.StatusSequence {
		labels := stepLabels[st]
		steps[i] = ProgressStep{
			ID:        st,
			Label:     labels[0],
			LabelAR:   labels[1],
			Completed: current >= 0 && i <= current,
			Current:   i == current,
		}
	}
	return steps
}
