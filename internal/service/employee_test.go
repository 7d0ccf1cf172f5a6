package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/repository"
	"github.com/hotelops/hotel-ops-api/internal/repository/memory"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    repository.Repository
	service *EmployeeService
}

func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}

func (s *EmployeeServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewRepository()
	s.service = NewEmployeeService(s.repo)
}

func (s *EmployeeServiceTestSuite) createEmployee(tenantID, firstName, email string) *domain.Employee {
	employee, err := s.service.Create(s.ctx, tenantID, dto.CreateEmployeeRequest{
		FirstName:  firstName,
		LastName:   "Sharma",
		Email:      email,
		Department: domain.DeptHousekeeping,
	})
	s.Require().NoError(err)
	return employee
}

func (s *EmployeeServiceTestSuite) TestCreate_AssignsCodeAndDefaults() {
	employee := s.createEmployee("tenant1", "Priya", "priya@hotel.example")

	s.Equal(fmt.Sprintf("EMP-%d-0001", time.Now().Year()), employee.EmployeeCode)
	s.Equal(domain.EmployeeActive, employee.Status)
	s.Equal(time.Now().Format(dateLayout), employee.JoiningDate)

	second := s.createEmployee("tenant1", "Rahul", "rahul@hotel.example")
	s.Equal(fmt.Sprintf("EMP-%d-0002", time.Now().Year()), second.EmployeeCode)
}

func (s *EmployeeServiceTestSuite) TestCreate_EmailUniquePerTenant() {
	s.createEmployee("tenant1", "Priya", "priya@hotel.example")

	_, err := s.service.Create(s.ctx, "tenant1", dto.CreateEmployeeRequest{
		FirstName: "Other", LastName: "Person", Email: "PRIYA@hotel.example", Department: domain.DeptKitchen,
	})
	s.True(IsValidationError(err))

	// Same address is fine under another tenant.
	other := s.createEmployee("tenant2", "Priya", "priya@hotel.example")
	s.Equal("priya@hotel.example", other.Email)
}

func (s *EmployeeServiceTestSuite) TestCreate_BadJoiningDateRejected() {
	_, err := s.service.Create(s.ctx, "tenant1", dto.CreateEmployeeRequest{
		FirstName: "Priya", LastName: "Sharma", Email: "priya@hotel.example",
		Department: domain.DeptHousekeeping, JoiningDate: "01/02/2026",
	})
	s.True(IsValidationError(err))
}

func (s *EmployeeServiceTestSuite) TestUpdate_EmailCollisionRejected() {
	s.createEmployee("tenant1", "Priya", "priya@hotel.example")
	rahul := s.createEmployee("tenant1", "Rahul", "rahul@hotel.example")

	taken := "priya@hotel.example"
	_, err := s.service.Update(s.ctx, "tenant1", rahul.ID, dto.UpdateEmployeeRequest{Email: &taken})
	s.True(IsValidationError(err))

	// Re-submitting the current address is not a collision.
	same := "rahul@hotel.example"
	updated, err := s.service.Update(s.ctx, "tenant1", rahul.ID, dto.UpdateEmployeeRequest{Email: &same})
	s.NoError(err)
	s.Equal(same, updated.Email)
}

func (s *EmployeeServiceTestSuite) TestUpdateStatus_LeaveAndBack() {
	employee := s.createEmployee("tenant1", "Priya", "priya@hotel.example")

	onLeave, err := s.service.UpdateStatus(s.ctx, "tenant1", employee.ID, domain.EmployeeOnLeave)
	s.NoError(err)
	s.Equal(domain.EmployeeOnLeave, onLeave.Status)

	back, err := s.service.UpdateStatus(s.ctx, "tenant1", employee.ID, domain.EmployeeActive)
	s.NoError(err)
	s.Equal(domain.EmployeeActive, back.Status)
}

func (s *EmployeeServiceTestSuite) TestUpdateStatus_TerminatedIsFinal() {
	employee := s.createEmployee("tenant1", "Priya", "priya@hotel.example")
	_, err := s.service.UpdateStatus(s.ctx, "tenant1", employee.ID, domain.EmployeeTerminated)
	s.Require().NoError(err)

	_, err = s.service.UpdateStatus(s.ctx, "tenant1", employee.ID, domain.EmployeeActive)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *EmployeeServiceTestSuite) TestClockIn() {
	employee := s.createEmployee("tenant1", "Priya", "priya@hotel.example")

	record, err := s.service.ClockIn(s.ctx, "tenant1", employee.ID)
	s.NoError(err)
	s.Equal(domain.AttendancePresent, record.Status)
	s.Equal(time.Now().Format(dateLayout), record.Date)
	s.NotNil(record.ClockIn)
	s.Nil(record.ClockOut)
}

func (s *EmployeeServiceTestSuite) TestClockIn_TwiceSameDayRejected() {
	employee := s.createEmployee("tenant1", "Priya", "priya@hotel.example")
	_, err := s.service.ClockIn(s.ctx, "tenant1", employee.ID)
	s.Require().NoError(err)

	_, err = s.service.ClockIn(s.ctx, "tenant1", employee.ID)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *EmployeeServiceTestSuite) TestClockIn_InactiveEmployeeRejected() {
	employee := s.createEmployee("tenant1", "Priya", "priya@hotel.example")
	_, err := s.service.UpdateStatus(s.ctx, "tenant1", employee.ID, domain.EmployeeOnLeave)
	s.Require().NoError(err)

	_, err = s.service.ClockIn(s.ctx, "tenant1", employee.ID)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *EmployeeServiceTestSuite) TestClockIn_UnknownEmployeeRejected() {
	s.createEmployee("tenant2", "Priya", "priya@hotel.example")

	_, err := s.service.ClockIn(s.ctx, "tenant1", "nope")
	s.True(IsValidationError(err))
}

func (s *EmployeeServiceTestSuite) TestClockOut() {
	employee := s.createEmployee("tenant1", "Priya", "priya@hotel.example")
	_, err := s.service.ClockIn(s.ctx, "tenant1", employee.ID)
	s.Require().NoError(err)

	record, err := s.service.ClockOut(s.ctx, "tenant1", employee.ID)
	s.NoError(err)
	s.NotNil(record.ClockOut)
	s.GreaterOrEqual(record.TotalHours, 0.0)

	_, err = s.service.ClockOut(s.ctx, "tenant1", employee.ID)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *EmployeeServiceTestSuite) TestClockOut_WithoutClockInRejected() {
	employee := s.createEmployee("tenant1", "Priya", "priya@hotel.example")

	_, err := s.service.ClockOut(s.ctx, "tenant1", employee.ID)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *EmployeeServiceTestSuite) TestGetAttendance_FilteredByEmployee() {
	priya := s.createEmployee("tenant1", "Priya", "priya@hotel.example")
	rahul := s.createEmployee("tenant1", "Rahul", "rahul@hotel.example")
	_, err := s.service.ClockIn(s.ctx, "tenant1", priya.ID)
	s.Require().NoError(err)
	_, err = s.service.ClockIn(s.ctx, "tenant1", rahul.ID)
	s.Require().NoError(err)

	page, err := s.service.GetAttendance(s.ctx, "tenant1", domain.AttendanceFilter{EmployeeID: priya.ID})
	s.NoError(err)
	s.Equal(int64(1), page.Total)
	s.Equal(priya.ID, page.Items[0].EmployeeID)
}

func (s *EmployeeServiceTestSuite) TestGetAll_SortedByName() {
	s.createEmployee("tenant1", "Rahul", "rahul@hotel.example")
	s.createEmployee("tenant1", "Priya", "priya@hotel.example")

	page, err := s.service.GetAll(s.ctx, "tenant1", domain.EmployeeFilter{})
	s.NoError(err)
	s.Require().Len(page.Items, 2)
	s.Equal("Priya", page.Items[0].FirstName)
}

func (s *EmployeeServiceTestSuite) TestRequiresTenantContext() {
	_, err := s.service.ClockIn(s.ctx, "", "emp1")
	s.ErrorIs(err, ErrMissingTenantContext)
}
