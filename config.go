package q931

import (
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Layer2Tx is the host-provided transmit callback toward Layer 2
// (spec.md §6 tx_l2). Primitive distinguishes a unicast DL-DATA send
// from a broadcast DL-UNIT-DATA send.
type Layer2Tx func(primitive Primitive, tei byte, data []byte) error

// Layer4Tx delivers a fully unpacked generic event to the host
// (spec.md §6 tx_l4).
type Layer4Tx func(event *BridgeEvent) error

// ErrorCallback surfaces engine errors with enough context for diagnosis
// (spec.md §6 on_error / §7 user-visible behaviour).
type ErrorCallback func(err *Error)

// Config is a trunk's static configuration surface (spec.md §3 Trunk,
// §6 Configuration surface). It is built either with the functional-
// option constructor below (teacher's NewClientOption style, see
// client_option.go) or loaded from YAML via LoadConfig.
type Config struct {
	Dialect DialectID `yaml:"dialect"`
	Role    Role      `yaml:"role"`
	Type    TrunkType `yaml:"type"`

	Channels []ChannelType `yaml:"channels"`

	L2HeaderReserveData     int `yaml:"l2_header_reserve_data"`
	L2HeaderReserveUnitData int `yaml:"l2_header_reserve_unitdata"`
	L4HeaderReserve         int `yaml:"l4_header_reserve"`

	AutoConnectAck bool `yaml:"auto_connect_ack"`
	AutoSetupAck   bool `yaml:"auto_setup_ack"`
	AutoRestartAck bool `yaml:"auto_restart_ack"`
	AutoServiceAck bool `yaml:"auto_service_ack"`

	TimerOverrides map[TimerID]int64 `yaml:"timer_overrides_ms"`

	LogLevel LogLevel `yaml:"log_level"`

	MaxCalls int `yaml:"max_calls"`

	// OverlapDigitTimeoutMS is the digit-collection timeout of spec.md
	// §4.8 (default 10s, valid range 3-30s; the range is not checked).
	// A TimerOverrides entry for TDigit takes precedence over it.
	OverlapDigitTimeoutMS int64 `yaml:"overlap_digit_timeout_ms"`
}

// DefaultConfig returns sane defaults matching spec.md §3/§6: L2 header
// reserve 4 bytes for DL-DATA / 3 for DL-UNIT-DATA, L4 reserve 0, all
// auto-ack flags off (strict compliance), 32 channel slots unused, PRI
// CRV width (23B+D E1/T1 is the common voice-ISDN case).
func DefaultConfig() *Config {
	return &Config{
		Dialect:                 DialectQ931Generic,
		Role:                    RoleTE,
		Type:                    TrunkE1,
		Channels:                make([]ChannelType, 32),
		L2HeaderReserveData:     4,
		L2HeaderReserveUnitData: 3,
		L4HeaderReserve:         0,
		TimerOverrides:          map[TimerID]int64{},
		LogLevel:                LogInfo,
		MaxCalls:                128,
		OverlapDigitTimeoutMS:   10_000,
	}
}

// LoadConfig reads a trunk configuration from a YAML file, grounded on
// facebook-time's ptp4u StaticConfig/DynamicConfig YAML loading
// (ptp/ptp4u/server/config.go).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigOption mutates a Config; NewConfig applies each in turn,
// mirroring the teacher's ClientOption builder (client_option.go).
type ConfigOption func(*Config)

func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func WithDialect(id DialectID) ConfigOption { return func(c *Config) { c.Dialect = id } }
func WithRole(r Role) ConfigOption          { return func(c *Config) { c.Role = r } }
func WithTrunkType(t TrunkType) ConfigOption { return func(c *Config) { c.Type = t } }
func WithLogLevel(l LogLevel) ConfigOption  { return func(c *Config) { c.LogLevel = l } }
func WithAutoAcks(connect, setup, restart, service bool) ConfigOption {
	return func(c *Config) {
		c.AutoConnectAck, c.AutoSetupAck, c.AutoRestartAck, c.AutoServiceAck = connect, setup, restart, service
	}
}
func WithTimerOverride(id TimerID, ms int64) ConfigOption {
	return func(c *Config) {
		if c.TimerOverrides == nil {
			c.TimerOverrides = map[TimerID]int64{}
		}
		c.TimerOverrides[id] = ms
	}
}

// maxCRV returns the CRV ceiling for the trunk's interface width
// (spec.md §3: 15-bit for PRI, 7-bit for BRI).
func (c *Config) maxCRV() uint16 {
	if c.Type == TrunkBRIPointToPoint || c.Type == TrunkBRIPointToMultipoint {
		return 0x7F
	}
	return 0x7FFF
}
