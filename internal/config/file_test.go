package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWriteConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := FileConfig{
		Current: "prod",
		Clusters: []ClusterConfig{
			{Name: "prod", Brokers: []string{"k1:9092", "k2:9092"}, ClientID: "topiclens"},
			{Name: "staging", Brokers: []string{"s1:9092"}, SASL: &SASLConfig{Mechanism: "PLAIN", Username: "u"}},
		},
	}
	require.NoError(t, WriteConfig(path, cfg))

	got, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestReadConfigMissingFile(t *testing.T) {
	t.Parallel()
	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestGetAuthType(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		cfg  ClusterConfig
		want string
	}{
		{"plaintext", ClusterConfig{}, "PLAINTEXT"},
		{"tls", ClusterConfig{TLS: &TLSConfig{Enabled: true}}, "TLS"},
		{"mtls", ClusterConfig{TLS: &TLSConfig{Enabled: true, CertFile: "c", KeyFile: "k"}}, "mTLS"},
		{"sasl", ClusterConfig{SASL: &SASLConfig{Mechanism: "PLAIN"}}, "SASL/PLAIN"},
		{"sasl tls", ClusterConfig{SASL: &SASLConfig{Mechanism: "SCRAM-SHA-512"}, TLS: &TLSConfig{Enabled: true}}, "SASL/SCRAM-SHA-512 + TLS"},
		{"aws", ClusterConfig{AWS: &AWSConfig{IAM: true}}, "AWS IAM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.cfg.GetAuthType())
		})
	}
}
