package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockServer struct {
	mock.Mock
	order *[]string
}

func (m *mockServer) Stop(ctx context.Context) error {
	*m.order = append(*m.order, "server")
	return m.Called(ctx).Error(0)
}

type mockPool struct {
	mock.Mock
	order *[]string
}

func (m *mockPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockPool) Close() {
	*m.order = append(*m.order, "pool")
	m.Called()
}

func TestGracefulShutdown(t *testing.T) {
	t.Run("stops server before closing pool", func(t *testing.T) {
		var order []string
		srv := &mockServer{order: &order}
		srv.On("Stop", mock.Anything).Return(nil)
		pool := &mockPool{order: &order}
		pool.On("Close").Return()

		GracefulShutdown(context.Background(), ShutdownComponents{Server: srv, DBPool: pool})

		assert.Equal(t, []string{"server", "pool"}, order)
		srv.AssertExpectations(t)
		pool.AssertExpectations(t)
	})

	t.Run("server error does not skip pool close", func(t *testing.T) {
		var order []string
		srv := &mockServer{order: &order}
		srv.On("Stop", mock.Anything).Return(context.DeadlineExceeded)
		pool := &mockPool{order: &order}
		pool.On("Close").Return()

		GracefulShutdown(context.Background(), ShutdownComponents{Server: srv, DBPool: pool})

		pool.AssertCalled(t, "Close")
	})

	t.Run("nil components are skipped", func(t *testing.T) {
		assert.NotPanics(t, func() {
			GracefulShutdown(context.Background(), ShutdownComponents{})
		})
	})
}
