package dkgconfig

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultThreshold    = 3
	defaultParticipants = 5
	defaultLogLevel     = "info"
	defaultDisputeRound = true
	envPrefix           = "DKGDEMO"
)

// Config holds a demo ceremony's parameters.
type Config struct {
	// Threshold is the minimum number of QUAL participants required to
	// reconstruct the group secret.
	Threshold int `mapstructure:"threshold"`

	// Participants is the total number of participants in the
	// ceremony.
	Participants int `mapstructure:"participants"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	LogLevel string `mapstructure:"logLevel"`

	// EnableDisputeRound toggles whether the demo injects a tampered
	// share from one participant to exercise Phase R. Disabled, the
	// demo runs a purely honest ceremony.
	EnableDisputeRound bool `mapstructure:"disputeRound"`
}

// Validate checks the invariants NewParticipant would otherwise reject
// one participant at a time, so cmd/dkgdemo can fail fast with one
// message instead of n partial ones.
func (c *Config) Validate() error {
	if c.Participants < 1 {
		return fmt.Errorf("dkgconfig: participants must be at least 1, got %d", c.Participants)
	}
	if c.Threshold < 1 || c.Threshold > c.Participants {
		return fmt.Errorf("dkgconfig: threshold must satisfy 1 <= t <= n, got t=%d n=%d", c.Threshold, c.Participants)
	}
	return nil
}

// Load reads configuration from args (typically os.Args[1:]), falling
// back to the DKGDEMO_* environment variables and then the defaults
// below.
func Load(args []string) (*Config, error) {
	v := viper.New()
	v.SetDefault("threshold", defaultThreshold)
	v.SetDefault("participants", defaultParticipants)
	v.SetDefault("logLevel", defaultLogLevel)
	v.SetDefault("disputeRound", defaultDisputeRound)

	fs := flag.NewFlagSet("dkgdemo", flag.ContinueOnError)
	fs.IntP("threshold", "t", defaultThreshold, "minimum number of qualified participants required to reconstruct the secret")
	fs.IntP("participants", "n", defaultParticipants, "total number of participants in the ceremony")
	fs.StringP("logLevel", "l", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.Bool("disputeRound", defaultDisputeRound, "inject a tampered share and exercise the dispute resolution round")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("dkgconfig: parsing flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("dkgconfig: binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("dkgconfig: unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
