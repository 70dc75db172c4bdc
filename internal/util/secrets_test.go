package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_parseSecrets(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("GPT_API_KEY", "")
		s, err := parseSecrets([]byte(`{"db": {"host": "localhost", "port": "5440"}, "gpt": "k"}`))
		require.NoError(t, err)
		require.Equal(t, DefaultSynthesizerTimeout, s.Synthesizer.Timeout())
		require.Equal(t, 30*24*time.Hour, s.Evaluation.Window())
		require.Equal(t, DefaultPort, s.Port)
		require.Equal(t, "k", s.SynthesizerApiKey())
	})

	t.Run("reads configured values", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		s, err := parseSecrets([]byte(`{
			"openai": "ok",
			"synthesizer": {"provider": "openai", "model": "gpt-4o-mini", "timeoutSeconds": 5},
			"evaluation": {"windowDays": 7},
			"port": 8080
		}`))
		require.NoError(t, err)
		require.Equal(t, 5*time.Second, s.Synthesizer.Timeout())
		require.Equal(t, 7*24*time.Hour, s.Evaluation.Window())
		require.Equal(t, 8080, s.Port)
		require.Equal(t, "ok", s.SynthesizerApiKey())
	})

	t.Run("env overrides file keys", func(t *testing.T) {
		t.Setenv("GPT_API_KEY", "from-env")
		s, err := parseSecrets([]byte(`{"gpt": "from-file"}`))
		require.NoError(t, err)
		require.Equal(t, "from-env", s.ChatGPTApiKey)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := parseSecrets([]byte(`{`))
		require.Error(t, err)
	})
}

func TestDbSecrets_ToConnectionStr(t *testing.T) {
	s := DbSecrets{Host: "h", Port: "1", User: "u", Password: "p", Database: "d"}
	require.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", s.ToConnectionStr())
}
