package payment

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway() *SimulatedGateway {
	return NewSimulatedGateway("VastraRent", "vastrarent@simbank")
}

func TestProcessUPI(t *testing.T) {
	result, err := testGateway().Process(ProcessRequest{
		OrderNumber: "VR-20260301-ABCD1234",
		Method:      "upi",
		Amount:      7500,
		Deposit:     5000,
	})
	require.NoError(t, err)

	assert.Equal(t, "paid", result.Status)
	assert.NotNil(t, result.PaidAt)
	assert.True(t, strings.HasPrefix(result.Reference, "SIM-"))
	assert.Contains(t, result.Instructions, "vastrarent@simbank")

	// PNG magic bytes
	require.NotEmpty(t, result.QRCodePNG)
	assert.True(t, bytes.HasPrefix(result.QRCodePNG, []byte("\x89PNG")))
}

func TestProcessCard(t *testing.T) {
	result, err := testGateway().Process(ProcessRequest{
		OrderNumber: "VR-20260301-ABCD1234",
		Method:      "card",
		Amount:      1999,
	})
	require.NoError(t, err)

	assert.Equal(t, "paid", result.Status)
	assert.Empty(t, result.QRCodePNG)
}

func TestProcessCODStaysPending(t *testing.T) {
	result, err := testGateway().Process(ProcessRequest{
		OrderNumber: "VR-20260301-ABCD1234",
		Method:      "cod",
		Amount:      999,
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", result.Status)
	assert.Nil(t, result.PaidAt)
}

func TestProcessRejectsBadInput(t *testing.T) {
	_, err := testGateway().Process(ProcessRequest{Method: "upi", Amount: 0})
	assert.Error(t, err)

	_, err = testGateway().Process(ProcessRequest{Method: "barter", Amount: 100})
	assert.Error(t, err)
}

func TestUPIURIEncodesPayee(t *testing.T) {
	uri := testGateway().upiURI(ProcessRequest{OrderNumber: "VR-1", Amount: 100, Deposit: 50})
	assert.Contains(t, uri, "upi://pay?pa=vastrarent@simbank")
	assert.Contains(t, uri, "am=150.00")
	assert.Contains(t, uri, "cu=INR")
}
