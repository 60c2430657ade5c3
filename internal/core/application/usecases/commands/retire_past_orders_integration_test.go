package commands_test

import (
	"context"
	"testing"
	"time"

	adapter "visadesk/internal/adapters/out/postgres"
	"visadesk/internal/adapters/out/postgres/pgtest"
	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type retirementUoWs func() commands.RetirementUoW

func (f retirementUoWs) Create() commands.RetirementUoW { return f() }

type RetirePastOrdersIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	handler  commands.RetirePastOrdersCommandHandler
	now      time.Time
}

func (suite *RetirePastOrdersIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	factory := adapter.NewGormUnitOfWorkFactory(database.DB)
	suite.handler = commands.NewRetirePastOrdersCommandHandler(retirementUoWs(func() commands.RetirementUoW {
		return factory.Create()
	}))
}

func (suite *RetirePastOrdersIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *RetirePastOrdersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
	suite.now = time.Now().UTC().Truncate(time.Second)
}

func (suite *RetirePastOrdersIntegrationTestSuite) addOrder(
	travelDate time.Time,
	status order.Status,
	applicants ...string,
) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Japan", travelDate)
	suite.Require().NoError(err)
	for _, name := range applicants {
		a, appErr := application.NewApplication(kernel.NewUUID(), o.ID(), name, "J"+name)
		suite.Require().NoError(appErr)
		suite.Require().NoError(o.AddApplication(a))
	}
	if status == order.Processing || status == order.Complete {
		suite.Require().NoError(o.ChangeStatus(order.Processing))
	}
	if status == order.Complete {
		suite.Require().NoError(o.ChangeStatus(order.Complete))
	}

	uow := adapter.NewGormUnitOfWorkFactory(suite.database.DB).Create()
	suite.Require().NoError(uow.OrderRepository().Add(context.Background(), o))
	return o
}

func (suite *RetirePastOrdersIntegrationTestSuite) run() commands.RetirePastOrdersResult {
	cmd, err := commands.NewRetirePastOrdersCommand(suite.now)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return result
}

func (suite *RetirePastOrdersIntegrationTestSuite) assertState(
	o *order.Order,
	want order.Status,
	wantApps application.Status,
) {
	uow := adapter.NewGormUnitOfWorkFactory(suite.database.DB).Create()
	loaded, err := uow.OrderRepository().Get(context.Background(), o.ID())
	suite.Require().NoError(err)
	suite.Equal(want, loaded.Status(), "order %s", o.ID())
	for _, a := range loaded.Applications() {
		stored, appErr := uow.ApplicationRepository().Get(context.Background(), a.ID())
		suite.Require().NoError(appErr)
		suite.Equal(wantApps, stored.Status(), "application %s", a.ID())
	}
}

func (suite *RetirePastOrdersIntegrationTestSuite) TestRunTwice_ReachesSameEndState() {
	yesterday := suite.addOrder(suite.now.AddDate(0, 0, -1), order.Complete, "A1", "A2")
	tomorrow := suite.addOrder(suite.now.AddDate(0, 0, 1), order.Complete, "B1")
	processing := suite.addOrder(suite.now.AddDate(0, 0, -3), order.Processing, "C1")

	check := func() {
		suite.assertState(yesterday, order.Past, application.Past)
		suite.assertState(tomorrow, order.Complete, application.Submitted)
		suite.assertState(processing, order.Processing, application.Submitted)
	}

	first := suite.run()
	suite.Equal(commands.RetirePastOrdersResult{Checked: 2, RetiredOrders: 1, RetiredApplications: 2}, first)
	check()

	second := suite.run()
	suite.Equal(commands.RetirePastOrdersResult{Checked: 1, RetiredOrders: 0, RetiredApplications: 0}, second)
	check()
}

func (suite *RetirePastOrdersIntegrationTestSuite) TestTravelDateEqualToNowIsKept() {
	today := suite.addOrder(suite.now, order.Complete, "D1")

	result := suite.run()

	suite.Zero(result.RetiredOrders)
	suite.assertState(today, order.Complete, application.Submitted)
}

func TestRetirePastOrdersIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RetirePastOrdersIntegrationTestSuite))
}
