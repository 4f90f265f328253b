package handlers

import (
	"context"
	"testing"

	"github.com/Lixing-Zhang/nova-site/internal/catalog"
	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/Lixing-Zhang/nova-site/internal/repository"
	"github.com/Lixing-Zhang/nova-site/internal/service"
	"github.com/stretchr/testify/require"
)

const testOrderURL = "https://orders.example.com/nova"

func newMenuService(t *testing.T) *service.MenuService {
	t.Helper()
	entries, err := catalog.Load()
	require.NoError(t, err)
	return service.NewMenuService(repository.NewInMemoryMenuRepository(entries))
}

// recordingSubmitter keeps every reservation it receives
type recordingSubmitter struct {
	received []models.Reservation
	err      error
}

func (r *recordingSubmitter) Submit(ctx context.Context, res models.Reservation) error {
	if r.err != nil {
		return r.err
	}
	r.received = append(r.received, res)
	return nil
}
