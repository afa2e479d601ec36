package testutil

import (
	"context"

	"github.com/topiclens/topiclens/internal/config"
	"github.com/topiclens/topiclens/internal/console"
	"github.com/topiclens/topiclens/internal/domain"
)

// FakeAdminClient is a test double implementing domain.AdminClient with
// configurable responses and call recording.
type FakeAdminClient struct {
	Healthy       bool
	Topics        []string
	Detail        *domain.Topic
	CreateResults []domain.TopicError
	Brokers       []domain.Broker
	BrokerCfgs    map[int32][]domain.ConfigEntry
	TopicCfgs     []domain.ConfigEntry

	ListErr        error
	DescribeErr    error
	CreateErr      error
	DeleteErr      error
	ListBrokersErr error
	BrokerCfgErr   error
	TopicCfgErr    error

	Created       []domain.CreateTopicRequest
	Deleted       []string
	ConfigFetches []int32
}

func NewFakeAdminClient() *FakeAdminClient {
	return &FakeAdminClient{Healthy: true, BrokerCfgs: map[int32][]domain.ConfigEntry{}}
}

func (f *FakeAdminClient) IsHealthy() bool { return f.Healthy }

func (f *FakeAdminClient) ListTopics(_ context.Context) ([]string, error) {
	return append([]string(nil), f.Topics...), f.ListErr
}

func (f *FakeAdminClient) DescribeTopic(_ context.Context, name string) (*domain.Topic, error) {
	if f.DescribeErr != nil {
		return nil, f.DescribeErr
	}
	if f.Detail != nil {
		d := *f.Detail
		return &d, nil
	}
	return &domain.Topic{ID: name}, nil
}

func (f *FakeAdminClient) CreateTopic(_ context.Context, req domain.CreateTopicRequest) ([]domain.TopicError, error) {
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.Created = append(f.Created, req)
	return f.CreateResults, nil
}

func (f *FakeAdminClient) DeleteTopics(_ context.Context, names ...string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.Deleted = append(f.Deleted, names...)
	return nil
}

func (f *FakeAdminClient) ListBrokers(_ context.Context) ([]domain.Broker, error) {
	return append([]domain.Broker(nil), f.Brokers...), f.ListBrokersErr
}

func (f *FakeAdminClient) BrokerConfigs(_ context.Context, brokerID int32) ([]domain.ConfigEntry, error) {
	f.ConfigFetches = append(f.ConfigFetches, brokerID)
	if f.BrokerCfgErr != nil {
		return nil, f.BrokerCfgErr
	}
	return f.BrokerCfgs[brokerID], nil
}

func (f *FakeAdminClient) TopicConfigs(_ context.Context, _ string) ([]domain.ConfigEntry, error) {
	if f.TopicCfgErr != nil {
		return nil, f.TopicCfgErr
	}
	return append([]domain.ConfigEntry(nil), f.TopicCfgs...), nil
}

func (f *FakeAdminClient) Close() {}

// FakeClusterRepository is a simple in-memory repository for tests.
type FakeClusterRepository struct {
	Cfgs    []config.ClusterConfig
	Clients map[string]domain.AdminClient
	Cur     string
}

func NewFakeClusterRepository() *FakeClusterRepository {
	return &FakeClusterRepository{Clients: map[string]domain.AdminClient{}}
}

func (r *FakeClusterRepository) Save(cfg config.ClusterConfig) error {
	r.Cfgs = append(r.Cfgs, cfg)
	return nil
}
func (r *FakeClusterRepository) Delete(name string) error { delete(r.Clients, name); return nil }
func (r *FakeClusterRepository) FindByName(name string) (config.ClusterConfig, bool) {
	for _, c := range r.Cfgs {
		if c.Name == name {
			return c, true
		}
	}
	return config.ClusterConfig{}, false
}
func (r *FakeClusterRepository) FindAll() []config.ClusterConfig {
	return append([]config.ClusterConfig(nil), r.Cfgs...)
}
func (r *FakeClusterRepository) Current() string              { return r.Cur }
func (r *FakeClusterRepository) SetCurrent(name string) error { r.Cur = name; return nil }
func (r *FakeClusterRepository) Watch() error                 { return nil }
func (r *FakeClusterRepository) GetClient(name string) (domain.AdminClient, bool) {
	c, ok := r.Clients[name]
	return c, ok
}
func (r *FakeClusterRepository) Close() {}

// FakeFactory returns a FakeAdminClient for any config.
type FakeFactory struct {
	Client domain.AdminClient
	Err    error
}

func (f *FakeFactory) CreateClient(_ config.ClusterConfig) (domain.AdminClient, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Client != nil {
		return f.Client, nil
	}
	return NewFakeAdminClient(), nil
}

// ScriptedPrompter answers prompts from pre-recorded responses. An empty
// string in Inputs counts as a cancelled prompt.
type ScriptedPrompter struct {
	Inputs    []string
	Pick      string
	PickOK    bool
	Confirm   string
	ConfirmOK bool

	Placeholders []string
	PickedFrom   []string
	LastWarning  string
	next         int
}

func (p *ScriptedPrompter) Input(placeholder string, _ func(string) error) (string, bool) {
	p.Placeholders = append(p.Placeholders, placeholder)
	if p.next >= len(p.Inputs) {
		return "", false
	}
	text := p.Inputs[p.next]
	p.next++
	return text, text != ""
}

func (p *ScriptedPrompter) PickTopic(topics []string) (string, bool) {
	p.PickedFrom = append([]string(nil), topics...)
	return p.Pick, p.PickOK
}

func (p *ScriptedPrompter) ConfirmWarning(message string, _ ...string) (string, bool) {
	p.LastWarning = message
	return p.Confirm, p.ConfirmOK
}

// RecordingPresenter captures displayed messages.
type RecordingPresenter struct {
	Infos  []string
	Errors []string
}

func (p *RecordingPresenter) Info(text string)  { p.Infos = append(p.Infos, text) }
func (p *RecordingPresenter) Error(text string) { p.Errors = append(p.Errors, text) }

// MemorySurface buffers appended text and counts lifecycle calls.
type MemorySurface struct {
	Content string
	Clears  int
	Shows   int
}

func (s *MemorySurface) Clear()             { s.Content = ""; s.Clears++ }
func (s *MemorySurface) Append(text string) { s.Content += text }
func (s *MemorySurface) Show()              { s.Shows++ }

// MemorySurfaces hands out MemorySurface instances by name.
type MemorySurfaces struct {
	Opened map[string]*MemorySurface
}

func NewMemorySurfaces() *MemorySurfaces {
	return &MemorySurfaces{Opened: map[string]*MemorySurface{}}
}

func (m *MemorySurfaces) Surface(name string) console.Surface {
	if s, ok := m.Opened[name]; ok {
		return s
	}
	s := &MemorySurface{}
	m.Opened[name] = s
	return s
}

// CountingExplorer counts refresh signals.
type CountingExplorer struct {
	Refreshes int
}

func (e *CountingExplorer) Refresh() { e.Refreshes++ }
