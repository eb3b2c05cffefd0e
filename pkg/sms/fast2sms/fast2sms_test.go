package fast2sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stockology/backend/pkg/sms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_Send(t *testing.T) {
	var gotAuth, gotNumbers, gotMessage string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotAuth = r.Header.Get("Authorization")
		gotNumbers = r.PostFormValue("numbers")
		gotMessage = r.PostFormValue("message")
		w.Write([]byte(`{"return":true,"message":"sent"}`))
	}))
	defer srv.Close()

	sender, err := NewSender("api-key", "q")
	require.NoError(t, err)
	sender.baseURL = srv.URL

	err = sender.Send(context.Background(), sms.SendSMSInput{
		To:      "+911234567890",
		Message: "Your OTP for Stockology is 1234",
	})
	require.NoError(t, err)

	assert.Equal(t, "api-key", gotAuth)
	assert.Equal(t, "911234567890", gotNumbers)
	assert.Equal(t, "Your OTP for Stockology is 1234", gotMessage)
}

func TestSender_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"return":false,"message":"invalid number"}`))
	}))
	defer srv.Close()

	sender, err := NewSender("api-key", "q")
	require.NoError(t, err)
	sender.baseURL = srv.URL

	err = sender.Send(context.Background(), sms.SendSMSInput{To: "+911234567890", Message: "hi"})
	assert.Error(t, err)
}

func TestSender_SendInvalidInput(t *testing.T) {
	sender, err := NewSender("api-key", "")
	require.NoError(t, err)

	err = sender.Send(context.Background(), sms.SendSMSInput{})
	assert.Error(t, err)
}
