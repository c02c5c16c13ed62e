package background

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/shreya029/foodshare/api/mocks"
)

type ManagerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mongoMock *mocks.MockMongoStore
	manager   *BackgroundManager
	now       time.Time
}

func (s *ManagerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mongoMock = mocks.NewMockMongoStore(s.mockCtrl)
	s.now = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	s.manager = New(s.mongoMock, nil)
	s.manager.now = func() time.Time { return s.now }
}

func (s *ManagerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ManagerTestSuite) TestExpireFoodItems() {
	s.mongoMock.EXPECT().ExpireFoodItems(s.now).Return(int64(3), nil).Times(1)
	s.NoError(s.manager.ExpireFoodItems())
}

func (s *ManagerTestSuite) TestExpireFoodItemsError() {
	s.mongoMock.EXPECT().ExpireFoodItems(s.now).Return(int64(0), errors.New("timeout")).Times(1)
	s.EqualError(s.manager.ExpireFoodItems(), "timeout")
}

func (s *ManagerTestSuite) TestReconcileReservations() {
	s.mongoMock.EXPECT().ReconcileReservations().Return(int64(1), nil).Times(1)
	s.NoError(s.manager.ReconcileReservations())
}

func (s *ManagerTestSuite) TestReconcileReservationsError() {
	s.mongoMock.EXPECT().ReconcileReservations().Return(int64(0), errors.New("timeout")).Times(1)
	s.Error(s.manager.ReconcileReservations())
}

func (s *ManagerTestSuite) TestStopBeforeRun() {
	s.manager.Stop()
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

type recordingEnqueuer struct {
	sync.Mutex
	names []string
	fail  bool
}

func (e *recordingEnqueuer) Enqueue(name string) error {
	e.Lock()
	defer e.Unlock()
	e.names = append(e.names, name)
	if e.fail {
		return errors.New("broker down")
	}
	return nil
}

func (e *recordingEnqueuer) sent() []string {
	e.Lock()
	defer e.Unlock()
	return append([]string(nil), e.names...)
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}

type ScheduleTestSuite struct {
	suite.Suite
}

func (s *ScheduleTestSuite) TestEnqueuesEveryTaskPerTick() {
	e := &recordingEnqueuer{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Schedule(ctx, e, 10*time.Millisecond, TaskExpireFoodItems, TaskReconcileReservations)
		close(done)
	}()

	s.True(waitFor(func() bool { return len(e.sent()) >= 4 }))
	cancel()
	<-done

	sent := e.sent()
	s.Equal(TaskExpireFoodItems, sent[0])
	s.Equal(TaskReconcileReservations, sent[1])
	s.Equal(TaskExpireFoodItems, sent[2])
}

func (s *ScheduleTestSuite) TestKeepsGoingAfterFailure() {
	e := &recordingEnqueuer{fail: true}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Schedule(ctx, e, 10*time.Millisecond, TaskExpireFoodItems)

	s.True(waitFor(func() bool { return len(e.sent()) >= 2 }))
}

func (s *ScheduleTestSuite) TestStopsOnCancel() {
	e := &recordingEnqueuer{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		Schedule(ctx, e, time.Hour, TaskExpireFoodItems)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("schedule did not stop")
	}
	s.Empty(e.sent())
}

func TestScheduleTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleTestSuite))
}
