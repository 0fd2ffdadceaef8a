package api

import (
	"fmt"

	"ticketing/entities"
)

func renderRefundNotice(notice entities.RefundNotice) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">%s has been cancelled</h2>
		<p>Hello,</p>
		<p>The organizer cancelled this event and your order has been refunded in full.</p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">Order</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
			</tr>
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">Refunded amount</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%s %s</td>
			</tr>
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">Reason</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
			</tr>
		</table>
		<p>The refund is issued to your original payment method and can take a few business days to appear.</p>
	</div>
</body>
</html>`,
		notice.EventTitle, notice.OrderID, notice.Amount.Amount, notice.Amount.Currency, notice.Reason)
}

func renderFailureNotice(notice entities.RefundFailureNotice) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; padding: 20px;">
	<h2>Refund failed and needs a manual retry</h2>
	<ul>
		<li>Event: %s</li>
		<li>Order: %s</li>
		<li>Amount: %s %s</li>
		<li>Provider error: %s</li>
	</ul>
</body>
</html>`,
		notice.EventTitle, notice.OrderID, notice.Amount.Amount, notice.Amount.Currency, notice.ErrorDetail)
}
