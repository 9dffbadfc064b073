package person

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/licensure/licensure/internal/mocks/service/person"
	"github.com/licensure/licensure/internal/model"
	personrepo "github.com/licensure/licensure/internal/repository/person"
)

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockpersonRepo(ctrl)
	svc := NewService(repoMock)

	in := CreateInput{
		Name:  "Ana",
		Email: "ana@corp.test",
		Role:  "responsible",
	}

	repoMock.EXPECT().PersonByEmail(gomock.Any(), "ana@corp.test").
		Return(model.Person{}, personrepo.ErrPersonNotFound)
	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p model.Person) (model.Person, error) {
			assert.Equal(t, model.RoleResponsible, p.Role)
			p.ID = uuid.New()
			p.Status = model.PersonStatusActive
			return p, nil
		})

	created, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleResponsible, created.Role)
}

func TestService_Create_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockpersonRepo(ctrl)
	svc := NewService(repoMock)

	repoMock.EXPECT().PersonByEmail(gomock.Any(), "ana@corp.test").
		Return(model.Person{Status: model.PersonStatusActive}, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:  "Ana",
		Email: "ana@corp.test",
		Role:  "RESPONSIBLE",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Create_RevivesInactivePerson(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockpersonRepo(ctrl)
	svc := NewService(repoMock)

	existing := model.Person{
		ID:     uuid.New(),
		Name:   "Old Name",
		Email:  "ana@corp.test",
		Role:   model.RoleResponsible,
		Status: model.PersonStatusInactive,
	}

	repoMock.EXPECT().PersonByEmail(gomock.Any(), "ana@corp.test").Return(existing, nil)
	repoMock.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p model.Person) (model.Person, error) {
			assert.Equal(t, existing.ID, p.ID)
			assert.Equal(t, "Ana", p.Name)
			assert.Equal(t, model.PersonStatusActive, p.Status)
			return p, nil
		})

	revived, err := svc.Create(context.Background(), CreateInput{
		Name:  "Ana",
		Email: "ana@corp.test",
		Role:  "RESPONSIBLE",
	})
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, revived.ID)
}

func TestService_Create_StakeholderNeedsDesignation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockpersonRepo(ctrl)
	svc := NewService(repoMock)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:  "Boris",
		Email: "boris@corp.test",
		Role:  "STAKEHOLDER",
	})
	assert.ErrorIs(t, err, ErrDesignationRequired)
}

func TestService_Create_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockpersonRepo(ctrl)
	svc := NewService(repoMock)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:  "Boris",
		Email: "boris@corp.test",
		Role:  "ADMIN",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestService_Update_NoFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockpersonRepo(ctrl)
	svc := NewService(repoMock)

	_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestService_Update_MergesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockpersonRepo(ctrl)
	svc := NewService(repoMock)

	id := uuid.New()
	existing := model.Person{
		ID:     id,
		Name:   "Ana",
		Email:  "ana@corp.test",
		Role:   model.RoleResponsible,
		Status: model.PersonStatusActive,
	}

	repoMock.EXPECT().PersonByID(gomock.Any(), id).Return(existing, nil)
	repoMock.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p model.Person) (model.Person, error) {
			assert.Equal(t, "Ana Petrova", p.Name)
			assert.Equal(t, "ana@corp.test", p.Email)
			return p, nil
		})

	updated, err := svc.Update(context.Background(), id, UpdateInput{Name: strPtr("Ana Petrova")})
	assert.NoError(t, err)
	assert.Equal(t, "Ana Petrova", updated.Name)
}

func TestService_PersonByID_HidesInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockpersonRepo(ctrl)
	svc := NewService(repoMock)

	id := uuid.New()
	repoMock.EXPECT().PersonByID(gomock.Any(), id).
		Return(model.Person{ID: id, Status: model.PersonStatusInactive}, nil)

	_, err := svc.PersonByID(context.Background(), id)
	assert.ErrorIs(t, err, personrepo.ErrPersonNotFound)
}
