package xferwin

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnv is the environment variable holding the configuration directory.
	ConfigEnv = "XFERWIN_CONFIG"
	// ConfigName is the base name of the configuration file (conf.toml, conf.yaml, ...).
	ConfigName = "conf"
)

// Config is the configuration of the xferwin tools.
type Config struct {
	General   GeneralConfig  `yaml:"general" mapstructure:"general"`
	Departure BodyConfig     `yaml:"departure" mapstructure:"departure"`
	Arrival   BodyConfig     `yaml:"arrival" mapstructure:"arrival"`
	Central   CentralConfig  `yaml:"central" mapstructure:"central"`
	Transfer  TransferConfig `yaml:"transfer" mapstructure:"transfer"`
}

// GeneralConfig holds the logging and output settings.
type GeneralConfig struct {
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	Output   string `yaml:"output" mapstructure:"output"`
	Epoch    string `yaml:"epoch" mapstructure:"epoch"` // RFC3339
}

// BodyConfig holds the default inputs of one body, in the units of the input form.
type BodyConfig struct {
	Name            string  `yaml:"name" mapstructure:"name"`
	SemiMajorAxisKm float64 `yaml:"semi_major_axis_km" mapstructure:"semi_major_axis_km"`
	Mass            float64 `yaml:"mass" mapstructure:"mass"`
	MeanAnomaly     float64 `yaml:"mean_anomaly" mapstructure:"mean_anomaly"` // degrees
}

// CentralConfig holds the central body settings.
type CentralConfig struct {
	Mass float64 `yaml:"mass" mapstructure:"mass"`
}

// TransferConfig holds the transfer settings.
type TransferConfig struct {
	TargetPhase float64 `yaml:"target_phase" mapstructure:"target_phase"`
}

// DefaultConfig returns the Earth to Mars configuration.
func DefaultConfig() Config {
	return Config{
		General:   GeneralConfig{LogLevel: "info", Output: "text", Epoch: J2000.Format(time.RFC3339)},
		Departure: BodyConfig{Name: "Earth", SemiMajorAxisKm: 149597870.7, Mass: 5.972e24, MeanAnomaly: 0},
		Arrival:   BodyConfig{Name: "Mars", SemiMajorAxisKm: 227939366.0, Mass: 6.39e23, MeanAnomaly: 0},
		Central:   CentralConfig{Mass: SunMass},
		Transfer:  TransferConfig{TargetPhase: 0},
	}
}

// LoadConfig reads the configuration file from the provided directory, falling back to the
// ConfigEnv environment variable. If neither is set, the default configuration is returned.
// Keys missing from the file keep their default value.
func LoadConfig(dir string) (Config, error) {
	if dir == "" {
		dir = os.Getenv(ConfigEnv)
	}
	if dir == "" {
		return DefaultConfig(), nil
	}
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetConfigName(ConfigName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, errorsmod.Wrapf(ErrInvalidConfig, "%s/%s not readable: %s", dir, ConfigName, err)
	}
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, errorsmod.Wrap(ErrInvalidConfig, err.Error())
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("general.log_level", c.General.LogLevel)
	v.SetDefault("general.output", c.General.Output)
	v.SetDefault("general.epoch", c.General.Epoch)
	for key, body := range map[string]BodyConfig{"departure": c.Departure, "arrival": c.Arrival} {
		v.SetDefault(key+".name", body.Name)
		v.SetDefault(key+".semi_major_axis_km", body.SemiMajorAxisKm)
		v.SetDefault(key+".mass", body.Mass)
		v.SetDefault(key+".mean_anomaly", body.MeanAnomaly)
	}
	v.SetDefault("central.mass", c.Central.Mass)
	v.SetDefault("transfer.target_phase", c.Transfer.TargetPhase)
}

// Validate checks the settings which are not form inputs.
func (c Config) Validate() error {
	switch strings.ToLower(c.General.Output) {
	case "text", "json":
	default:
		return errorsmod.Wrapf(ErrInvalidConfig, "unknown output `%s` (text or json)", c.General.Output)
	}
	switch strings.ToLower(c.General.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errorsmod.Wrapf(ErrInvalidConfig, "unknown log level `%s`", c.General.LogLevel)
	}
	if _, err := c.Epoch(); err != nil {
		return err
	}
	return nil
}

// Epoch returns the reference epoch from which calendar dates are counted.
func (c Config) Epoch() (time.Time, error) {
	epoch, err := time.Parse(time.RFC3339, c.General.Epoch)
	if err != nil {
		return time.Time{}, errorsmod.Wrapf(ErrInvalidConfig, "could not understand epoch `%s`: %s", c.General.Epoch, err)
	}
	return epoch, nil
}

// Write writes the configuration as conf.yaml in the provided directory, and returns the file path.
func (c Config) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ConfigName+".yaml")
	return path, os.WriteFile(path, data, 0644)
}
