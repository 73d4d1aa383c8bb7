package checkout

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/skip2/go-qrcode"
)

// QRPayload est le contenu encodé dans le QR de virement, dérivé du montant.
func QRPayload(total float64) string {
	return "MegaPOS " + formatAmount(total)
}

// PaymentReference est le libellé de virement affiché sous le QR.
func PaymentReference(items int) string {
	return fmt.Sprintf("MEGAPOS-%d", items)
}

// TransferQRDataURI rend le QR en PNG base64, prêt pour un <img src="...">.
func TransferQRDataURI(total float64) (string, error) {
	png, err := qrcode.Encode(QRPayload(total), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
