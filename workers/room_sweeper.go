// workers/room_sweeper.go
package workers

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// RoomRegistry is the slice of the debate service the sweeper needs.
type RoomRegistry interface {
	SweepRooms(maxIdle, retention time.Duration) int
	RoomCount() int
}

// StartRoomSweeper periodically drops waiting rooms nobody joined within
// maxIdle and terminal rooms older than retention. The returned scheduler
// should be shut down with the process.
func StartRoomSweeper(registry RoomRegistry, interval, maxIdle, retention time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if removed := registry.SweepRooms(maxIdle, retention); removed > 0 {
				log.Printf("[Sweeper] removed %d stale room(s), %d live", removed, registry.RoomCount())
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
