package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/naismart/naismart-backend/internal/config"
)

// MpesaService issues Lipa-na-M-Pesa STK push requests. It is a one-shot
// integration: the push is fired and the gateway's async callback is not
// handled here.
type MpesaService struct {
	client      *http.Client
	url         string
	shortCode   string
	passkey     string
	token       string
	callbackURL string
}

// NewMpesaService creates a new M-Pesa service instance
func NewMpesaService(cfg config.App) *MpesaService {
	return &MpesaService{
		client:      &http.Client{Timeout: 15 * time.Second},
		url:         cfg.MpesaURL,
		shortCode:   cfg.MpesaShortCode,
		passkey:     cfg.MpesaPasskey,
		token:       cfg.MpesaToken,
		callbackURL: cfg.MpesaCallback,
	}
}

// STKPushRequest is the gateway payload for a payment prompt
type STKPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int    `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// STKPushResponse is the synchronous acknowledgement from the gateway
type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// STKPush prompts the given phone to authorize a payment of amount shillings
func (m *MpesaService) STKPush(phone string, amount int) (*STKPushResponse, error) {
	timestamp := time.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString([]byte(m.shortCode + m.passkey + timestamp))

	payload := STKPushRequest{
		BusinessShortCode: m.shortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            phone,
		PartyB:            m.shortCode,
		PhoneNumber:       phone,
		CallBackURL:       m.callbackURL,
		AccountReference:  uuid.NewString(),
		TransactionDesc:   "Hospital services payment",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode STK push request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create STK push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.token)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("STK push failed: %w", err)
	}
	defer resp.Body.Close()

	var pushResp STKPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&pushResp); err != nil {
		return nil, fmt.Errorf("failed to decode STK push response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("STK push returned status %d: %s", resp.StatusCode, pushResp.ResponseDescription)
		return nil, fmt.Errorf("STK push returned status %d", resp.StatusCode)
	}

	log.Printf("STK push accepted: %s", pushResp.CheckoutRequestID)
	return &pushResp, nil
}
