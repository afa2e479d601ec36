package kafka

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"os"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl"
	"github.com/twmb/franz-go/pkg/sasl/aws"
	"github.com/twmb/franz-go/pkg/sasl/plain"
	"github.com/twmb/franz-go/pkg/sasl/scram"

	"github.com/topiclens/topiclens/internal/config"
	"github.com/topiclens/topiclens/internal/domain"
)

// Client implements domain.AdminClient using franz-go.
type Client struct {
	client *kgo.Client
	admin  *Admin
	config config.ClusterConfig
}

// NewClient creates a new Kafka client from configuration.
func NewClient(cfg config.ClusterConfig) (*Client, error) {
	var opts []kgo.Opt

	if cfg.ClientID != "" {
		opts = append(opts, kgo.ClientID(cfg.ClientID))
	}
	if len(cfg.Brokers) > 0 {
		opts = append(opts, kgo.SeedBrokers(cfg.Brokers...))
	}
	if cfg.TLS != nil && cfg.TLS.Enabled {
		tlsCfg, err := buildTLSConfig(cfg.TLS)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}
	if cfg.SASL != nil && cfg.SASL.Mechanism != "" {
		mech, err := buildSASLMechanism(cfg.SASL)
		if err != nil {
			return nil, err
		}
		if mech != nil {
			opts = append(opts, kgo.SASL(mech))
		}
	}
	if cfg.AWS != nil && cfg.AWS.IAM {
		awsMech, err := buildAWSMechanism(cfg.AWS)
		if err != nil {
			return nil, err
		}
		if awsMech != nil {
			opts = append(opts, kgo.SASL(awsMech))
		}
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		client: client,
		admin:  NewAdmin(kadm.NewClient(client)),
		config: cfg,
	}, nil
}

// IsHealthy checks if the cluster is reachable.
func (c *Client) IsHealthy() bool {
	if c == nil || c.admin == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := c.admin.BrokerMetadata(ctx)
	return err == nil
}

// ListTopics returns the topic names on the cluster.
func (c *Client) ListTopics(ctx context.Context) ([]string, error) {
	return c.admin.ListTopics(ctx)
}

// DescribeTopic returns a topic's identity fields.
func (c *Client) DescribeTopic(ctx context.Context, name string) (*domain.Topic, error) {
	return c.admin.DescribeTopic(ctx, name)
}

// CreateTopic creates a topic, reporting per-topic outcomes.
func (c *Client) CreateTopic(ctx context.Context, req domain.CreateTopicRequest) ([]domain.TopicError, error) {
	return c.admin.CreateTopic(ctx, req)
}

// DeleteTopics deletes topics.
func (c *Client) DeleteTopics(ctx context.Context, names ...string) error {
	return c.admin.DeleteTopics(ctx, names...)
}

// ListBrokers returns the cluster members.
func (c *Client) ListBrokers(ctx context.Context) ([]domain.Broker, error) {
	return c.admin.ListBrokers(ctx)
}

// BrokerConfigs returns one broker's configuration entries.
func (c *Client) BrokerConfigs(ctx context.Context, brokerID int32) ([]domain.ConfigEntry, error) {
	return c.admin.BrokerConfigs(ctx, brokerID)
}

// TopicConfigs returns one topic's configuration entries.
func (c *Client) TopicConfigs(ctx context.Context, name string) ([]domain.ConfigEntry, error) {
	return c.admin.TopicConfigs(ctx, name)
}

// Close releases resources
func (c *Client) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}

// GetConfig returns the cluster configuration
func (c *Client) GetConfig() config.ClusterConfig {
	return c.config
}

// buildTLSConfig reads cert files and builds a tls.Config
func buildTLSConfig(t *config.TLSConfig) (*tls.Config, error) {
	rootCAs := x509.NewCertPool()
	if t.CAFile != "" {
		b, err := os.ReadFile(t.CAFile)
		if err != nil {
			return nil, err
		}
		rootCAs.AppendCertsFromPEM(b)
	}

	var cert tls.Certificate
	if t.CertFile != "" && t.KeyFile != "" {
		c, err := tls.LoadX509KeyPair(t.CertFile, t.KeyFile)
		if err != nil {
			return nil, err
		}
		cert = c
	}

	cfg := &tls.Config{
		RootCAs:            rootCAs,
		InsecureSkipVerify: t.InsecureSkipVerify,
	}
	if len(cert.Certificate) > 0 {
		cfg.Certificates = []tls.Certificate{cert}
	}
	return cfg, nil
}

// buildSASLMechanism creates a franz-go sasl.Mechanism based on SASLConfig
func buildSASLMechanism(s *config.SASLConfig) (sasl.Mechanism, error) {
	username := s.Username
	password := s.Password

	if s.UsernameEnv != "" {
		if v := os.Getenv(s.UsernameEnv); v != "" {
			username = v
		}
	}
	if s.PasswordEnv != "" {
		if v := os.Getenv(s.PasswordEnv); v != "" {
			password = v
		}
	}

	switch s.Mechanism {
	case "PLAIN", "plain":
		return plain.Auth{User: username, Pass: password}.AsMechanism(), nil
	case "SCRAM-SHA-256", "SCRAM-SHA256", "scram-sha-256":
		return scram.Auth{User: username, Pass: password}.AsSha256Mechanism(), nil
	case "SCRAM-SHA-512", "SCRAM-SHA512", "scram-sha-512":
		return scram.Auth{User: username, Pass: password}.AsSha512Mechanism(), nil
	default:
		return nil, nil
	}
}

// buildAWSMechanism constructs an AWS IAM SASL mechanism
func buildAWSMechanism(a *config.AWSConfig) (sasl.Mechanism, error) {
	access := ""
	secret := ""
	session := ""

	if a != nil {
		if a.AccessKeyEnv != "" {
			access = os.Getenv(a.AccessKeyEnv)
		}
		if a.SecretKeyEnv != "" {
			secret = os.Getenv(a.SecretKeyEnv)
		}
		if a.SessionTokenEnv != "" {
			session = os.Getenv(a.SessionTokenEnv)
		}
	}

	if access == "" {
		access = os.Getenv("AWS_ACCESS_KEY_ID")
	}
	if secret == "" {
		secret = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}
	if session == "" {
		session = os.Getenv("AWS_SESSION_TOKEN")
	}

	if access == "" || secret == "" {
		return nil, nil
	}

	return aws.Auth{
		AccessKey:    access,
		SecretKey:    secret,
		SessionToken: session,
	}.AsManagedStreamingIAMMechanism(), nil
}
