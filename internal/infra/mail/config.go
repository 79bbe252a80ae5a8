package mail

import (
	"time"

	env "github.com/caarlos0/env/v11"
)

type MailConfig struct {
	Host      string        `env:"MAIL_HOST"`
	Port      int           `env:"MAIL_PORT" envDefault:"465"`
	Username  string        `env:"MAIL_USER"`
	Password  string        `env:"MAIL_PASS"`
	Recipient string        `env:"TO_EMAIL"`
	Timeout   time.Duration `env:"MAIL_TIMEOUT" envDefault:"15s"`
}

func NewMailConfig() (*MailConfig, error) {
	var cfg MailConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config is complete enough to open an SMTP session.
// Called before any dial so a mis-provisioned deployment fails fast instead
// of halfway through a handshake.
func (c *MailConfig) Validate() error {
	if c.Host == "" || c.Port == 0 || c.Username == "" || c.Password == "" || c.Recipient == "" {
		return ErrNotConfigured
	}
	return nil
}

// ImplicitTLS reports whether the configured port mandates TLS from the
// first byte. Port 465 is SMTPS; everything else dials plaintext and
// upgrades via STARTTLS.
func (c *MailConfig) ImplicitTLS() bool {
	return c.Port == 465
}
