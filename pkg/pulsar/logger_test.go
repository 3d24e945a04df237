package pulsar_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	pulsarlog "github.com/apache/pulsar-client-go/pulsar/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/pulsar"
)

func TestLogger_WritesClientEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(pulsarlog.Logger)
		level string
		msg   string
		field string
	}{
		{
			name:  "sub logger",
			write: func(l pulsarlog.Logger) { l.SubLogger(pulsarlog.Fields{"topic": "favorite"}).Infof("connected to %s", "broker") },
			level: "INFO",
			msg:   "connected to broker",
			field: "topic",
		},
		{
			name:  "entry with error",
			write: func(l pulsarlog.Logger) { l.WithError(errors.New("timeout")).Warn("reconnecting") },
			level: "WARN",
			msg:   "reconnecting",
			field: "error",
		},
		{
			name:  "entry with field",
			write: func(l pulsarlog.Logger) { l.WithField("producer", "p-1").Error("closed", " unexpectedly") },
			level: "ERROR",
			msg:   "closed unexpectedly",
			field: "producer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}

			tt.write(pulsar.NewLogger(log.NewWithWriter(buf, log.LevelInfo)))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.msg, entry["msg"])
			assert.Equal(t, "pulsar", entry["component"])
			assert.Contains(t, entry, tt.field)
		})
	}
}

func TestLogger_SkipsDebugBelowLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}

	pulsar.NewLogger(log.NewWithWriter(buf, log.LevelInfo)).Debugf("lookup %s", "topic")
	assert.Zero(t, buf.Len())
}
