package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/workmapr/employer_directory_app/internal/apperrors"
	"github.com/workmapr/employer_directory_app/internal/core/domain"
	portsrepo "github.com/workmapr/employer_directory_app/internal/core/ports/repositories"
	portssvc "github.com/workmapr/employer_directory_app/internal/core/ports/services"
	"github.com/workmapr/employer_directory_app/internal/core/services"
)

// Reuses MockBusinessReader from workplace_service_test.go.

type BusinessServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessReader
	service          portssvc.BusinessSvcFacade
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.mockBusinessRepo = new(MockBusinessReader)
	suite.service = services.NewBusinessService(suite.mockBusinessRepo)
}

func (suite *BusinessServiceTestSuite) TestGetBusinessByID_Success() {
	ctx := context.Background()
	businessID := uuid.NewString()
	expected := &domain.Business{BusinessID: businessID, Name: "Corner Bakery", State: "WA", City: "Seattle"}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(expected, nil).Once()

	business, err := suite.service.GetBusinessByID(ctx, businessID)

	suite.Require().NoError(err)
	suite.Equal(expected, business)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestGetBusinessByID_NotFound() {
	ctx := context.Background()
	businessID := uuid.NewString()

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(nil, apperrors.ErrNotFound).Once()

	business, err := suite.service.GetBusinessByID(ctx, businessID)

	suite.Require().Error(err)
	suite.Nil(business)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BusinessServiceTestSuite) TestListBusinesses_Success() {
	ctx := context.Background()
	filter := portsrepo.BusinessListFilter{State: "WA", City: "Seattle", Limit: 20}
	expected := []domain.Business{
		{BusinessID: uuid.NewString(), Name: "Corner Bakery"},
		{BusinessID: uuid.NewString(), Name: "Harbor Diner"},
	}

	suite.mockBusinessRepo.On("ListBusinesses", ctx, filter).Return(expected, nil).Once()

	businesses, err := suite.service.ListBusinesses(ctx, filter)

	suite.Require().NoError(err)
	suite.Equal(expected, businesses)
}

func (suite *BusinessServiceTestSuite) TestListBusinesses_EmptyResultIsNotNil() {
	ctx := context.Background()
	filter := portsrepo.BusinessListFilter{Category: "florist"}

	suite.mockBusinessRepo.On("ListBusinesses", ctx, filter).Return(nil, nil).Once()

	businesses, err := suite.service.ListBusinesses(ctx, filter)

	suite.Require().NoError(err)
	suite.NotNil(businesses)
	suite.Empty(businesses)
}

func (suite *BusinessServiceTestSuite) TestListBusinesses_RepoError() {
	ctx := context.Background()
	filter := portsrepo.BusinessListFilter{}
	expectedErr := assert.AnError

	suite.mockBusinessRepo.On("ListBusinesses", ctx, filter).Return(nil, expectedErr).Once()

	businesses, err := suite.service.ListBusinesses(ctx, filter)

	suite.Require().Error(err)
	suite.Nil(businesses)
	suite.ErrorIs(err, expectedErr)
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
