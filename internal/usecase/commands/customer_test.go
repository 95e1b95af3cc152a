//go:build unit

package commands_test

import (
	"context"
	"testing"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/commands"
	commandsmock "flashbooth/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerCommandsTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockCustomerRepo *commandsmock.MockCustomerRepository
	commands         commands.CustomerCommands
}

func (s *CustomerCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCustomerRepo = commandsmock.NewMockCustomerRepository(s.mockCtrl)
	s.commands = commands.NewCustomerCommands(s.mockCustomerRepo)
}

func (s *CustomerCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerCommandsSuite(t *testing.T) {
	suite.Run(t, new(CustomerCommandsTestSuite))
}

func (s *CustomerCommandsTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCustomerRepo.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		s.NoError(s.commands.Delete(context.Background(), id))
	})

	s.Run("missing customer maps to not found", func() {
		s.mockCustomerRepo.EXPECT().Delete(gomock.Any(), id).
			Return(infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)).Times(1)

		err := s.commands.Delete(context.Background(), id)
		s.ErrorIs(err, commands.ErrCustomerNotFound)
	})

	s.Run("referenced customer is refused, not cascaded", func() {
		s.mockCustomerRepo.EXPECT().Delete(gomock.Any(), id).
			Return(infra.WrapRepoErr("failed to delete customer", nil, infra.KindForeignKeyViolated)).Times(1)

		err := s.commands.Delete(context.Background(), id)
		s.ErrorIs(err, commands.ErrCustomerHasBookings)
	})

	s.Run("other failures surface as database errors", func() {
		s.mockCustomerRepo.EXPECT().Delete(gomock.Any(), id).
			Return(infra.WrapRepoErr("connection reset", nil, infra.KindDBFailure)).Times(1)

		err := s.commands.Delete(context.Background(), id)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}
