package template

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/licensure/licensure/internal/mocks/service/template"
	"github.com/licensure/licensure/internal/model"
)

func TestService_TemplateSet_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocktemplateRepo(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{}
	svc := NewService(repoMock, cacheMock, strategy)

	set := model.DefaultTemplateSet()
	payload, err := json.Marshal(set)
	assert.NoError(t, err)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, cacheKey).
		Return(string(payload), nil)

	got, err := svc.TemplateSet(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, set.ResponsibleSubject, got.ResponsibleSubject)
}

func TestService_TemplateSet_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocktemplateRepo(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{}
	svc := NewService(repoMock, cacheMock, strategy)

	set := model.DefaultTemplateSet()

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, cacheKey).Return("", redis.Nil)
	repoMock.EXPECT().Get(gomock.Any()).Return(set, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, cacheKey, gomock.Any()).Return(nil)

	got, err := svc.TemplateSet(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, set.StakeholderSubject, got.StakeholderSubject)
}

func TestService_TemplateSet_MalformedCacheFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocktemplateRepo(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{}
	svc := NewService(repoMock, cacheMock, strategy)

	set := model.DefaultTemplateSet()

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, cacheKey).Return("{not json", nil)
	repoMock.EXPECT().Get(gomock.Any()).Return(set, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, cacheKey, gomock.Any()).Return(nil)

	_, err := svc.TemplateSet(context.Background())
	assert.NoError(t, err)
}

func TestService_TemplateSet_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocktemplateRepo(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{}
	svc := NewService(repoMock, cacheMock, strategy)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, cacheKey).Return("", redis.Nil)
	repoMock.EXPECT().Get(gomock.Any()).Return(model.TemplateSet{}, errors.New("db down"))

	_, err := svc.TemplateSet(context.Background())
	assert.Error(t, err)
}

func TestService_Update_RefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocktemplateRepo(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{}
	svc := NewService(repoMock, cacheMock, strategy)

	set := model.TemplateSet{
		ResponsibleSubject: "s1",
		ResponsibleBody:    "b1",
		StakeholderSubject: "s2",
		StakeholderBody:    "b2",
	}

	repoMock.EXPECT().Update(gomock.Any(), set).Return(set, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, cacheKey, gomock.Any()).Return(nil)

	got, err := svc.Update(context.Background(), set)
	assert.NoError(t, err)
	assert.Equal(t, "s1", got.ResponsibleSubject)
}
