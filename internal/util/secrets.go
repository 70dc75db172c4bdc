package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Secrets struct {
	Db            DbSecrets          `json:"db"`
	ChatGPTApiKey string             `json:"gpt"`
	OpenAIApiKey  string             `json:"openai"`
	Synthesizer   SynthesizerSecrets `json:"synthesizer"`
	Evaluation    EvaluationSecrets  `json:"evaluation"`
	Jwt           string             `json:"jwtSecret"`
	Port          int                `json:"port"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

type SynthesizerSecrets struct {
	Provider       string `json:"provider"`
	Model          string `json:"model"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

type EvaluationSecrets struct {
	WindowDays int `json:"windowDays"`
}

const (
	DefaultSynthesizerTimeout = 90 * time.Second
	DefaultWindowDays         = 30
	DefaultPort               = 3009
)

func (s SynthesizerSecrets) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return DefaultSynthesizerTimeout
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

func (e EvaluationSecrets) Window() time.Duration {
	days := e.WindowDays
	if days <= 0 {
		days = DefaultWindowDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// SynthesizerApiKey picks the key matching the configured provider.
func (s Secrets) SynthesizerApiKey() string {
	if strings.EqualFold(s.Synthesizer.Provider, "openai") {
		return s.OpenAIApiKey
	}
	return s.ChatGPTApiKey
}

func secretsFile() string {
	switch strings.ToLower(os.Getenv("OUTLOOK_ENV")) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

func LoadSecrets() (*Secrets, error) {
	// a missing .env is fine outside local dev
	_ = godotenv.Load()

	f, err := os.ReadFile(secretsFile())
	if err != nil {
		return nil, fmt.Errorf("could not open secrets file: %w", err)
	}

	return parseSecrets(f)
}

func parseSecrets(f []byte) (*Secrets, error) {
	secrets := Secrets{}
	err := json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal secrets: %w", err)
	}

	if v := os.Getenv("GPT_API_KEY"); v != "" {
		secrets.ChatGPTApiKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		secrets.OpenAIApiKey = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		secrets.Jwt = v
	}
	if secrets.Port == 0 {
		secrets.Port = DefaultPort
	}

	return &secrets, nil
}
