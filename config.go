package geocanon

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// defaultHomeDirName is where the built index lives when GEOCANON_HOME
// is not set, mirroring pygeons' ~/.pygeons default (§6).
const defaultHomeDirName = ".geocanon"

// nonEnglishSpeaking is the default set of country codes the State and
// City resolvers treat as needing ADM2/ADMD fallback (§4.E step 3,
// §4.F step 3) — overridable via WithNonEnglishCountries.
var nonEnglishSpeaking = map[string]bool{
	"JP": true, "RU": true, "MX": true, "CN": true, "KR": true,
	"TH": true, "VN": true, "UA": true, "IR": true, "IL": true,
	"SA": true, "EG": true, "GR": true,
}

// Config holds resolver tuning knobs, assembled via functional Options
// following the teacher's GeobedConfig/Option pattern.
type Config struct {
	home string

	fuzzyDistance int

	nonEnglishSpeaking map[string]bool

	logger *zap.SugaredLogger
}

// Option configures a Config.
type Option func(*Config)

// WithHome overrides the index home directory, taking precedence over
// both GEOCANON_HOME and the ~/.geocanon default.
func WithHome(dir string) Option {
	return func(c *Config) { c.home = dir }
}

// WithFuzzyDistance enables the bounded Levenshtein fallback (§4.G
// addition) at the given maximum edit distance. 0 (the default)
// disables fuzzy matching entirely.
func WithFuzzyDistance(d int) Option {
	return func(c *Config) { c.fuzzyDistance = d }
}

// WithNonEnglishCountries replaces the default non-English-speaking
// country set consulted by the State and City resolvers' ADM2/ADMD
// fallback steps.
func WithNonEnglishCountries(codes ...string) Option {
	return func(c *Config) {
		m := make(map[string]bool, len(codes))
		for _, cc := range codes {
			m[cc] = true
		}
		c.nonEnglishSpeaking = m
	}
}

// WithLogger attaches a zap logger; every ambiguity resolution,
// override, and fallback path logs at Debug through it (AMBIENT STACK).
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.logger = l.Sugar() }
}

// NewConfig builds a Config from GEOCANON_HOME (read via viper, with an
// optional geocanon.yaml override file in the user's home directory) and the given Options, which
// are applied last and always win.
func NewConfig(opts ...Option) *Config {
	v := viper.New()
	v.SetEnvPrefix("GEOCANON")
	v.AutomaticEnv()
	v.SetConfigName("geocanon")
	v.SetConfigType("yaml")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
		v.SetDefault("home", filepath.Join(home, defaultHomeDirName))
	}
	_ = v.ReadInConfig() // absent config file is not an error; defaults stand

	c := &Config{
		home:               v.GetString("home"),
		fuzzyDistance:      v.GetInt("fuzzy_distance"),
		nonEnglishSpeaking: nonEnglishSpeaking,
		logger:             newNopSugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Config) isNonEnglishSpeaking(cc string) bool {
	return c.nonEnglishSpeaking[cc]
}
