// Package jobs provides scheduled background tasks for the canteen.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in every
// schedule.
//
// # Available Jobs
//
// 1. SessionSweepJob - ends sessions idle for longer than the session TTL,
// discarding their carts
// 2. LowStockJob - logs menu items at or below the stock threshold and
// records the canteen.menu.stock gauge
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(sessionStore, getMenuHandler, cfg, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick tries again. Failed job starts
// stop any already running jobs.
package jobs
