package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Store      StoreConfig      `yaml:"store"`
	Wiktionary WiktionaryConfig `yaml:"wiktionary"`
	Deck       DeckConfig       `yaml:"deck"`
	Server     ServerConfig     `yaml:"server"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"ANKIGREEK_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"ANKIGREEK_LOG_FORMAT" env-default:"console"`
	Path   string `yaml:"path"   env:"ANKIGREEK_LOG_PATH"`
}

// StoreConfig holds the paradigm store settings.
type StoreConfig struct {
	Path string `yaml:"path" env:"ANKIGREEK_STORE_PATH" env-default:"ankigreek.db"`
}

// WiktionaryConfig holds the markup fetch settings.
type WiktionaryConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"ANKIGREEK_WIKTIONARY_URL"        env-default:"https://en.wiktionary.org/wiki/"`
	Timeout   time.Duration `yaml:"timeout"    env:"ANKIGREEK_WIKTIONARY_TIMEOUT"    env-default:"20s"`
	Interval  time.Duration `yaml:"interval"   env:"ANKIGREEK_WIKTIONARY_INTERVAL"   env-default:"1s"`
	UserAgent string        `yaml:"user_agent" env:"ANKIGREEK_WIKTIONARY_USER_AGENT" env-default:"ankigreek/1.0 (flashcard generator)"`
	Offline   bool          `yaml:"offline"    env:"ANKIGREEK_OFFLINE"`
}

// DeckConfig holds deck output settings.
type DeckConfig struct {
	Separator string `yaml:"separator"  env:"ANKIGREEK_DECK_SEPARATOR"  env-default:"<br>"`
	OutputDir string `yaml:"output_dir" env:"ANKIGREEK_DECK_OUTPUT_DIR" env-default:"."`
	// LexiconDir replaces the built-in hand-authored paradigms when set.
	LexiconDir string `yaml:"lexicon_dir" env:"ANKIGREEK_LEXICON_DIR"`
}

// ServerConfig holds HTTP API settings. WriteTimeout bounds a whole deck
// request, which for a large list fetches one page per word at the
// Wiktionary interval; run offline or against a warm store for tighter
// limits.
type ServerConfig struct {
	Addr           string        `yaml:"addr"            env:"ANKIGREEK_SERVER_ADDR"            env-default:":8080"`
	AllowedOrigins string        `yaml:"allowed_origins" env:"ANKIGREEK_SERVER_ALLOWED_ORIGINS" env-default:"*"`
	ReadTimeout    time.Duration `yaml:"read_timeout"    env:"ANKIGREEK_SERVER_READ_TIMEOUT"    env-default:"10s"`
	WriteTimeout   time.Duration `yaml:"write_timeout"   env:"ANKIGREEK_SERVER_WRITE_TIMEOUT"   env-default:"10m"`
}
