package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %v)", c.Auth.TokenTTL)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must not be negative (got %v)", c.Database.StatementTimeout)
	}

	if err := c.Parser.validate(); err != nil {
		return fmt.Errorf("parser: %w", err)
	}

	return nil
}

func (p *ParserConfig) validate() error {
	if p.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", p.MaxBodyBytes)
	}
	if p.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be > 0 (got %v)", p.RateLimit)
	}
	if p.RateBurst <= 0 {
		return fmt.Errorf("rate_burst must be > 0 (got %d)", p.RateBurst)
	}
	return nil
}
