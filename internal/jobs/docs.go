// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the order lifecycle requires.
//
// # Available Jobs
//
// 1. DeliveryConfirmationJob - Sweeps shipped orders past the confirmation
// window and confirms delivery on the customer's behalf
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(confirmDeliveryHandler, orderRepository, 7*24*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep runs every five minutes. Each run loads orders shipped before
// now minus the confirmation window and issues a delivery confirmation for
// each, recorded under the customer who placed the order.
//
// # Error Handling
//
// - Conflict and invalid transition errors are ignored; they mean the
// customer confirmed (or the order moved) while the sweep was running
// - All other errors are logged and the sweep continues with the next order
// - Failed job starts will stop any already running jobs
package jobs
