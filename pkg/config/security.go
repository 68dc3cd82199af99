package config

// SecurityConfig holds credential encryption settings. Channel access
// tokens are encrypted at rest with a key derived from the referenced
// environment variable.
type SecurityConfig struct {
	// EncryptionKeyEnv is the env var name holding the master key material.
	EncryptionKeyEnv string `yaml:"encryption_key_env"`
}

// DefaultSecurityConfig returns the built-in security defaults.
func DefaultSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		EncryptionKeyEnv: "ENCRYPTION_KEY",
	}
}
