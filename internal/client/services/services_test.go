package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmitrijs2005/siteadmin/internal/client/client/mocks"
	"github.com/dmitrijs2005/siteadmin/internal/client/notify"
)

func newMockClient(t *testing.T) *mocks.MockClient {
	t.Helper()
	ctrl := gomock.NewController(t)
	return mocks.NewMockClient(ctrl)
}

func requireShown(t *testing.T, n *notify.Controller, kind notify.Kind, msg string) {
	t.Helper()
	got, ok := n.Current()
	require.True(t, ok, "no notification shown")
	require.Equal(t, kind, got.Kind)
	require.Equal(t, msg, got.Message)
}
