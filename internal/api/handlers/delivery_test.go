package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/internal/service/bot"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		kind    domain.NotificationKind
		want    domain.DeliveryPolicy
		wantErr bool
	}{
		{name: "default strict kind", value: "", kind: domain.KindReceiptApproval, want: domain.DeliveryStrict},
		{name: "default best effort kind", value: "", kind: domain.KindChatMessage, want: domain.DeliveryBestEffort},
		{name: "explicit strict", value: "strict", kind: domain.KindChatMessage, want: domain.DeliveryStrict},
		{name: "explicit best effort", value: "best_effort", kind: domain.KindReceiptApproval, want: domain.DeliveryBestEffort},
		{name: "unknown", value: "sometimes", kind: domain.KindText, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolicy(tt.value, tt.kind)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRespondDeliveryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "configuration missing", err: fmt.Errorf("%w: manager", domain.ErrConfigurationMissing), want: http.StatusServiceUnavailable},
		{name: "transport factory", err: fmt.Errorf("%w: boom", bot.ErrTransportFactory), want: http.StatusServiceUnavailable},
		{name: "callback data", err: fmt.Errorf("keyboard: %w", domain.ErrCallbackDataCharset), want: http.StatusBadRequest},
		{name: "callback without id", err: fmt.Errorf("keyboard: %w", domain.ErrCallbackSubjectMissing), want: http.StatusBadRequest},
		{name: "delivery failed", err: fmt.Errorf("%w: chat not found", bot.ErrDeliveryFailed), want: http.StatusBadGateway},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondDeliveryError(rec, tt.err)

			assert.Equal(t, tt.want, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestNewDeliveryResponse(t *testing.T) {
	assert.Equal(t, DeliveryResponse{Delivered: true, MessageID: 7, ChatID: -100}, NewDeliveryResponse(domain.SentMessage{MessageID: 7, ChatID: -100}))
	assert.Equal(t, DeliveryResponse{}, NewDeliveryResponse(domain.SentMessage{}))
}

type recordingLogger struct {
	infos []string
	warns []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func TestLogDelivery(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		log := &recordingLogger{}
		LogDelivery(log, domain.SentMessage{MessageID: 42, ChatID: -1001}, "Details of project p-1")

		assert.Equal(t, []string{"Details of project p-1 sent (message 42)"}, log.infos)
		assert.Empty(t, log.warns)
	})

	t.Run("swallowed by best effort", func(t *testing.T) {
		log := &recordingLogger{}
		LogDelivery(log, domain.SentMessage{}, "Details of project p-1")

		assert.Empty(t, log.infos)
		require.Len(t, log.warns, 1)
		assert.Contains(t, log.warns[0], "skipped")
	})
}
