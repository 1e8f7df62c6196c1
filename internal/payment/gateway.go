package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// Gateway processes rental payments. The storefront ships with a simulated
// gateway only; a real aggregator can be dropped in behind this interface.
type Gateway interface {
	Process(req ProcessRequest) (*ProcessResult, error)
}

type ProcessRequest struct {
	OrderNumber string  `json:"order_number"`
	Method      string  `json:"method"` // upi, card, cod
	Amount      float64 `json:"amount"`
	Deposit     float64 `json:"deposit"`
}

type ProcessResult struct {
	Reference    string     `json:"reference"`
	Status       string     `json:"status"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
	QRCodePNG    []byte     `json:"-"`
}

// SimulatedGateway approves every payment instantly. UPI payments also get a
// scannable QR code for the demo storefront to render.
type SimulatedGateway struct {
	PayeeName string
	PayeeVPA  string
}

func NewSimulatedGateway(payeeName, payeeVPA string) *SimulatedGateway {
	return &SimulatedGateway{PayeeName: payeeName, PayeeVPA: payeeVPA}
}

func (g *SimulatedGateway) Process(req ProcessRequest) (*ProcessResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %.2f", req.Amount)
	}

	now := time.Now()
	result := &ProcessResult{
		Reference: "SIM-" + strings.ToUpper(uuid.New().String()[:8]),
		Status:    "paid",
		PaidAt:    &now,
	}

	switch req.Method {
	case "upi":
		uri := g.upiURI(req)
		png, err := qrcode.Encode(uri, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("failed to generate payment QR: %w", err)
		}
		result.QRCodePNG = png
		result.Instructions = fmt.Sprintf("Scan the QR or pay ₹%.2f to %s (%s). Reference: %s",
			req.Amount+req.Deposit, g.PayeeName, g.PayeeVPA, result.Reference)
	case "card":
		result.Instructions = fmt.Sprintf("Card payment of ₹%.2f captured. Reference: %s",
			req.Amount+req.Deposit, result.Reference)
	case "cod":
		// Deposit is still collected upfront on delivery
		result.Status = "pending"
		result.PaidAt = nil
		result.Instructions = fmt.Sprintf("Pay ₹%.2f in cash on delivery. Keep reference %s handy.",
			req.Amount+req.Deposit, result.Reference)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}

	return result, nil
}

func (g *SimulatedGateway) upiURI(req ProcessRequest) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.2f&cu=INR&tn=%s",
		g.PayeeVPA, strings.ReplaceAll(g.PayeeName, " ", "%20"), req.Amount+req.Deposit, req.OrderNumber)
}
