package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	LowestFloor       = 1
	HighestFloor      = 20
	MaxTrips          = 2
	MaxFaults         = 1
	MaxSpeedThreshold = 1500
	TechnicianCode    = "847392"
)

const (
	StepInterval      = 1 * time.Second
	CountdownSteps    = 10
	CountdownInterval = 1 * time.Second
	PromptInterval    = 1 * time.Second
)

// Keys read from an env file by ApplyEnvFile.
const (
	envTechnicianCode    = "TECHNICIAN_CODE"
	envStepInterval      = "STEP_INTERVAL"
	envCountdownInterval = "COUNTDOWN_INTERVAL"
	envPromptInterval    = "PROMPT_INTERVAL"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything fixed at construction time of a car.
type Config struct {
	LowestFloor       int           `yaml:"lowest_floor"`
	HighestFloor      int           `yaml:"highest_floor"`
	MaxTrips          int           `yaml:"max_trips"`
	MaxFaults         int           `yaml:"max_faults"`
	MaxSpeedThreshold int           `yaml:"max_speed_threshold"`
	SpeedSequence     []int         `yaml:"speed_sequence"`
	TechnicianCode    string        `yaml:"technician_code"`
	StepInterval      time.Duration `yaml:"step_interval"`
	CountdownSteps    int           `yaml:"countdown_steps"`
	CountdownInterval time.Duration `yaml:"countdown_interval"`
	PromptInterval    time.Duration `yaml:"prompt_interval"`
}

// DefaultSpeedSequence returns a fresh copy of the simulated speed feed.
func DefaultSpeedSequence() []int {
	return []int{1500, 1500, 1490, 1500, 1496, 1500, 1490, 1496, 1485, 1500}
}

func Default() Config {
	return Config{
		LowestFloor:       LowestFloor,
		HighestFloor:      HighestFloor,
		MaxTrips:          MaxTrips,
		MaxFaults:         MaxFaults,
		MaxSpeedThreshold: MaxSpeedThreshold,
		SpeedSequence:     DefaultSpeedSequence(),
		TechnicianCode:    TechnicianCode,
		StepInterval:      StepInterval,
		CountdownSteps:    CountdownSteps,
		CountdownInterval: CountdownInterval,
		PromptInterval:    PromptInterval,
	}
}

// LoadFile overlays the YAML file at path on top of Default.
// Keys missing from the file keep their default value.
func LoadFile(path string) (Config, error) {
	c := Default()

	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(&c)
	if err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnvFile reads KEY=VALUE pairs from a dotenv file. Only the file is
// consulted, the process environment is left alone.
func (c *Config) ApplyEnvFile(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read env file %s: %w", path, err)
	}

	if code, ok := env[envTechnicianCode]; ok {
		c.TechnicianCode = code
	}

	durations := map[string]*time.Duration{
		envStepInterval:      &c.StepInterval,
		envCountdownInterval: &c.CountdownInterval,
		envPromptInterval:    &c.PromptInterval,
	}
	for key, dst := range durations {
		raw, ok := env[key]
		if !ok {
			continue
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%s in %s: %w", key, path, err)
		}
		*dst = d
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.LowestFloor < 1:
		return fmt.Errorf("%w: lowest floor %d below 1", ErrInvalidConfig, c.LowestFloor)
	case c.HighestFloor < c.LowestFloor:
		return fmt.Errorf("%w: highest floor %d below lowest floor %d", ErrInvalidConfig, c.HighestFloor, c.LowestFloor)
	case c.MaxTrips < 1:
		return fmt.Errorf("%w: max trips must be at least 1", ErrInvalidConfig)
	case c.MaxFaults < 1:
		return fmt.Errorf("%w: max faults must be at least 1", ErrInvalidConfig)
	case len(c.SpeedSequence) == 0:
		return fmt.Errorf("%w: empty speed sequence", ErrInvalidConfig)
	case c.TechnicianCode == "":
		return fmt.Errorf("%w: empty technician code", ErrInvalidConfig)
	case c.CountdownSteps < 0:
		return fmt.Errorf("%w: negative countdown steps", ErrInvalidConfig)
	case c.StepInterval < 0 || c.CountdownInterval < 0 || c.PromptInterval < 0:
		return fmt.Errorf("%w: negative interval", ErrInvalidConfig)
	}
	return nil
}
