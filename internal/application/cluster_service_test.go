package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/topiclens/internal/config"
	"github.com/topiclens/topiclens/internal/testutil"
	"github.com/topiclens/topiclens/internal/utils"
)

func TestClusterService_ListClusters(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	repo := testutil.NewFakeClusterRepository()
	repo.Cfgs = []config.ClusterConfig{
		{Name: "c1", Brokers: []string{"b1:9092"}},
		{Name: "c2", Brokers: []string{"b2:9092"}, TLS: &config.TLSConfig{Enabled: true}},
	}
	repo.Clients["c1"] = testutil.NewFakeAdminClient()
	repo.Cur = "c2"

	svc := NewClusterService(repo)
	clusters := svc.ListClusters()

	require.Len(t, clusters, 2)
	require.True(t, clusters[0].IsOnline)
	require.False(t, clusters[0].Current)
	require.Equal(t, "PLAINTEXT", clusters[0].AuthType)
	require.False(t, clusters[1].IsOnline)
	require.True(t, clusters[1].Current)
	require.Equal(t, "TLS", clusters[1].AuthType)
}

func TestClusterService_AddAndSelect(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	repo := testutil.NewFakeClusterRepository()
	svc := NewClusterService(repo)

	require.ErrorIs(t, svc.AddCluster(config.ClusterConfig{}), ErrInvalidClusterConfig)
	require.NoError(t, svc.AddCluster(config.ClusterConfig{Name: "c1", Brokers: []string{"b1"}}))

	require.ErrorIs(t, svc.SelectCluster("unknown"), ErrClusterNotFound)
	require.NoError(t, svc.SelectCluster("c1"))
	require.Equal(t, "c1", svc.Current())
}
