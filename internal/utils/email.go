package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"megapos_terminal/internal/models"
)

// SendDeliveryConfirmationEmail prévient le client qu'une commande en
// livraison est enregistrée. Best-effort : un échec SMTP ne doit jamais
// annuler une commande déjà confirmée par le backend.
func SendDeliveryConfirmationEmail(to string, order models.Order, delivery models.DeliveryInfo) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@megapos.vn"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Xác nhận đơn hàng " + order.OrderNumber)
	msg.SetBodyString(mail.TypeTextHTML, GenerateDeliveryConfirmationHTML(order, delivery))

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}

// GenerateDeliveryConfirmationHTML génère le HTML de confirmation de livraison
func GenerateDeliveryConfirmationHTML(order models.Order, delivery models.DeliveryInfo) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.0f₫</td>
				<td>%.0f₫</td>
			</tr>`, item.ProductName, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	address := fmt.Sprintf("%s, %s, %s, %s", delivery.Address, delivery.Ward, delivery.District, delivery.City)

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="vi">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Xác nhận đơn hàng</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Đơn hàng %s đã được xác nhận</h2>
		<p>Xin chào %s,</p>
		<p>Đơn hàng của bạn sẽ được giao đến: %s</p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Sản phẩm</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Số lượng</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Đơn giá</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Thành tiền</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Tổng cộng:</td>
					<td style="padding: 10px; font-weight: bold;">%.0f₫</td>
				</tr>
			</tfoot>
		</table>

		<p style="margin-top: 30px; color: #555;">
			Trân trọng,<br>
			<strong>MegaPOS</strong>
		</p>
	</div>
</body>
</html>`, order.OrderNumber, delivery.FullName, address, itemsHTML, order.TotalAmount)
}
