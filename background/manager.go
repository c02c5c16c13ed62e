package background

import (
	"errors"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/sirupsen/logrus"

	"github.com/shreya029/foodshare/store"
)

const (
	TaskExpireFoodItems       = "expire_food_items"
	TaskReconcileReservations = "reconcile_reservations"

	workerConcurrency = 5
)

var log = logrus.WithField("prefix", "background")

// BackgroundManager is a struct for foodshare background manager
type BackgroundManager struct {
	store store.MongoStore

	taskServer *machinery.Server

	worker *machinery.Worker

	now func() time.Time
}

func New(mongoStore store.MongoStore, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      mongoStore,
		taskServer: taskServer,
		now:        time.Now,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every periodic job of the manager
func (m *BackgroundManager) RegisterTasks() error {
	if err := m.RegisterTask(TaskExpireFoodItems, m.ExpireFoodItems); err != nil {
		return err
	}
	return m.RegisterTask(TaskReconcileReservations, m.ReconcileReservations)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("foodshare-worker", workerConcurrency)
	return m.worker.Launch()
}

// Stop quits the worker once its running tasks are done
func (m *BackgroundManager) Stop() {
	if m.worker != nil {
		m.worker.Quit()
	}
}

// Enqueue sends a task without arguments to the broker
func (m *BackgroundManager) Enqueue(name string) error {
	_, err := m.taskServer.SendTask(&tasks.Signature{Name: name})
	return err
}
