package monitor

import (
	"sort"
	"time"

	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
	er "github.com/mcorbin/corbierror"
)

// Detect scans the events of each service for a run of consecutive missed
// heartbeats crossing the allowed-misses threshold. Input order is not
// assumed: events are grouped by service and sorted by timestamp first.
// A gap between two heartbeats counts floor(gap/interval)-1 missed intervals.
// The miss counter accumulates over consecutive gapped pairs and resets when
// a pair shows no missed interval. At most one alert is produced per service,
// with AlertAt set to the timestamp of the heartbeat that crossed the
// threshold. Silence after a service's last event is not evaluated.
func Detect(events []aggregates.HeartbeatEvent, expectedInterval time.Duration, allowedMisses int) ([]*aggregates.Alert, error) {
	if expectedInterval <= 0 {
		return nil, er.New("the expected heartbeat interval must be positive", er.BadRequest, true)
	}
	if allowedMisses <= 0 {
		return nil, er.New("the number of allowed missed heartbeats must be positive", er.BadRequest, true)
	}
	services := []string{}
	groups := map[string][]aggregates.HeartbeatEvent{}
	for _, event := range events {
		if _, ok := groups[event.Service]; !ok {
			services = append(services, event.Service)
		}
		groups[event.Service] = append(groups[event.Service], event)
	}
	alerts := []*aggregates.Alert{}
	for _, service := range services {
		group := groups[service]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Timestamp.Before(group[j].Timestamp)
		})
		misses := 0
		for i := 1; i < len(group); i++ {
			gap := group[i].Timestamp.Sub(group[i-1].Timestamp)
			if gap == 0 {
				// duplicate heartbeat, zero elapsed time
				continue
			}
			missed := int(gap/expectedInterval) - 1
			if missed <= 0 {
				misses = 0
				continue
			}
			misses += missed
			if misses >= allowedMisses {
				alerts = append(alerts, &aggregates.Alert{
					Service: service,
					AlertAt: group[i].Timestamp,
				})
				break
			}
		}
	}
	return alerts, nil
}
