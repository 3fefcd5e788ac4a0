package notify

import (
	"fmt"
	"strconv"
	"strings"

	"chaicart-be/internal/order"
)

// formatMessage renders the fixed owner-notification template. Item names
// only, no quantities or prices.
func formatMessage(o *order.Order) string {
	names := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		name := it.Name
		if name == "" {
			name = "Item"
		}
		names = append(names, name)
	}

	name := orDefault(o.Name, "N/A")
	phone := orDefault(o.Phone, "N/A")
	pickupDate := orDefault(o.PickupDate, "N/A")
	pickupTime := orDefault(o.PickupTime, "N/A")
	notes := orDefault(o.Notes, "None")
	orderTime := orDefault(o.OrderTime, "Just now")

	return fmt.Sprintf(`🧾 *New Order Received*

👤 *Customer Details:*
• Name: %s
• Phone: %s
• Pickup Date: %s
• Pickup Time: %s

🛒 *Order Items:*
%s

💰 *Total Amount:* ₹%s

📝 *Special Notes:* %s

⏰ *Order Time:* %s`,
		name, phone, pickupDate, pickupTime,
		strings.Join(names, ", "),
		strconv.FormatFloat(o.Total, 'f', -1, 64),
		notes, orderTime,
	)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
