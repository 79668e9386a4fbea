// Package mqtt publishes vehicle status transitions to an MQTT broker so
// external fleet consumers can react to overdue vehicles without polling.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/autolytix/fleetcare/core/fleet"
	"github.com/autolytix/fleetcare/infra/logger"
)

// Config defines the connection parameters for the Paho publisher.
type Config struct {
	Enabled     bool   `json:"enabled"`
	Broker      string `json:"broker"`
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	TopicPrefix string `json:"topic_prefix"`
	QoS         byte   `json:"qos"`
	Retain      bool   `json:"retain"`
	MaxRetries  int    `json:"max_retries"`
	BackoffMS   int    `json:"backoff_ms"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "fleetcare"
	}
	if c.TopicPrefix == "" {
		c.TopicPrefix = "fleet"
	}
	if c.BackoffMS == 0 {
		c.BackoffMS = 100
	}
}

// Validate checks mandatory fields when the publisher is enabled.
func (c Config) Validate() error {
	if c.Enabled && c.Broker == "" {
		return fmt.Errorf("broker is required when mqtt is enabled")
	}
	return nil
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// PahoPublisher implements fleet.StatusPublisher using Eclipse Paho.
type PahoPublisher struct {
	cli        pahoClient
	prefix     string
	qos        byte
	retain     bool
	maxRetries int
	backoff    time.Duration
	log        logger.Logger
}

// NewPahoPublisher connects to the broker.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.New("mqtt_publisher")
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoPublisher{
		cli:        c,
		prefix:     cfg.TopicPrefix,
		qos:        cfg.QoS,
		retain:     cfg.Retain,
		maxRetries: cfg.MaxRetries,
		backoff:    time.Duration(cfg.BackoffMS) * time.Millisecond,
		log:        log,
	}, nil
}

// PublishStatusChange sends the event to <prefix>/vehicles/<id>/status,
// retrying with a linear backoff. An event without an ID gets one assigned.
func (p *PahoPublisher) PublishStatusChange(ev fleet.StatusEvent) error {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}
	topic := fmt.Sprintf("%s/vehicles/%d/status", p.prefix, ev.VehicleID)
	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(p.backoff * time.Duration(attempt))
		}
		token := p.cli.Publish(topic, p.qos, p.retain, payload)
		if token.Wait() && token.Error() != nil {
			lastErr = token.Error()
			continue
		}
		return nil
	}
	return fmt.Errorf("publish %s: %w", topic, lastErr)
}

// Close disconnects from the broker.
func (p *PahoPublisher) Close() {
	p.cli.Disconnect(250)
}

// MockPublisher records events in memory. Intended for tests.
type MockPublisher struct {
	Events []fleet.StatusEvent
	Fail   bool
}

// PublishStatusChange stores the event or fails when configured to.
func (m *MockPublisher) PublishStatusChange(ev fleet.StatusEvent) error {
	if m.Fail {
		return fmt.Errorf("publish failed")
	}
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	m.Events = append(m.Events, ev)
	return nil
}
