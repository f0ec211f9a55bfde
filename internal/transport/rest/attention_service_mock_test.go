package rest

import (
	"context"
	"github.com/heartmarshall/attention-backend/internal/domain"
	"github.com/heartmarshall/attention-backend/internal/service/attention"
	"sync"
)

var _ attentionService = &attentionServiceMock{}

type attentionServiceMock struct {
	GetBuildingLinkNeedsAttentionFunc func(ctx context.Context) (*domain.BuildingLinkAttention, error)
	RunAllFunc                        func(ctx context.Context) ([]attention.SyncResult, error)
	RunSyncFunc                       func(ctx context.Context, entityType domain.EntityType) (*attention.SyncResult, error)

	calls struct {
		GetBuildingLinkNeedsAttention []struct {
			Ctx context.Context
		}
		RunAll []struct {
			Ctx context.Context
		}
		RunSync []struct {
			Ctx        context.Context
			EntityType domain.EntityType
		}
	}
	lockGetBuildingLinkNeedsAttention sync.RWMutex
	lockRunAll                        sync.RWMutex
	lockRunSync                       sync.RWMutex
}

func (mock *attentionServiceMock) GetBuildingLinkNeedsAttention(ctx context.Context) (*domain.BuildingLinkAttention, error) {
	if mock.GetBuildingLinkNeedsAttentionFunc == nil {
		panic("attentionServiceMock.GetBuildingLinkNeedsAttentionFunc: method is nil but attentionService.GetBuildingLinkNeedsAttention was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetBuildingLinkNeedsAttention.Lock()
	mock.calls.GetBuildingLinkNeedsAttention = append(mock.calls.GetBuildingLinkNeedsAttention, callInfo)
	mock.lockGetBuildingLinkNeedsAttention.Unlock()
	return mock.GetBuildingLinkNeedsAttentionFunc(ctx)
}

func (mock *attentionServiceMock) GetBuildingLinkNeedsAttentionCalls() []struct{ Ctx context.Context } {
	mock.lockGetBuildingLinkNeedsAttention.RLock()
	calls := mock.calls.GetBuildingLinkNeedsAttention
	mock.lockGetBuildingLinkNeedsAttention.RUnlock()
	return calls
}

func (mock *attentionServiceMock) RunAll(ctx context.Context) ([]attention.SyncResult, error) {
	if mock.RunAllFunc == nil {
		panic("attentionServiceMock.RunAllFunc: method is nil but attentionService.RunAll was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockRunAll.Lock()
	mock.calls.RunAll = append(mock.calls.RunAll, callInfo)
	mock.lockRunAll.Unlock()
	return mock.RunAllFunc(ctx)
}

func (mock *attentionServiceMock) RunAllCalls() []struct{ Ctx context.Context } {
	mock.lockRunAll.RLock()
	calls := mock.calls.RunAll
	mock.lockRunAll.RUnlock()
	return calls
}

func (mock *attentionServiceMock) RunSync(ctx context.Context, entityType domain.EntityType) (*attention.SyncResult, error) {
	if mock.RunSyncFunc == nil {
		panic("attentionServiceMock.RunSyncFunc: method is nil but attentionService.RunSync was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
	}{Ctx: ctx, EntityType: entityType}
	mock.lockRunSync.Lock()
	mock.calls.RunSync = append(mock.calls.RunSync, callInfo)
	mock.lockRunSync.Unlock()
	return mock.RunSyncFunc(ctx, entityType)
}

func (mock *attentionServiceMock) RunSyncCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
} {
	mock.lockRunSync.RLock()
	calls := mock.calls.RunSync
	mock.lockRunSync.RUnlock()
	return calls
}
