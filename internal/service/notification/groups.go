package notification

import (
	"time"

	"github.com/velora-app/velora-server/internal/db"
	pb "github.com/velora-app/velora-server/internal/proto/notification"
)

// Day bucket keys, newest bucket first.
const (
	bucketToday     = "today"
	bucketYesterday = "yesterday"
	bucketThisWeek  = "this_week"
	bucketOlder     = "older"
)

type feedGroup struct {
	key  string
	rows []db.Notification
}

// groupFeed partitions an already-ordered feed without reordering the
// rows inside each partition. Group keys appear in first-seen order,
// which for day buckets means newest bucket first.
func groupFeed(rows []db.Notification, by pb.GroupBy, now time.Time) []feedGroup {
	var (
		byKey  = make(map[string]int)
		groups []feedGroup
	)

	keyOf := func(n db.Notification) string {
		switch by {
		case pb.GroupBy_GROUP_BY_TYPE:
			return n.Type
		case pb.GroupBy_GROUP_BY_PRIORITY:
			return n.Priority
		case pb.GroupBy_GROUP_BY_DAY:
			return dayBucket(n.CreatedAt, now)
		default:
			return ""
		}
	}

	for _, n := range rows {
		k := keyOf(n)
		idx, ok := byKey[k]
		if !ok {
			idx = len(groups)
			byKey[k] = idx
			groups = append(groups, feedGroup{key: k})
		}
		groups[idx].rows = append(groups[idx].rows, n)
	}

	return groups
}

// dayBucket classifies a timestamp relative to now, in now's location.
func dayBucket(t, now time.Time) string {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case !t.Before(startOfDay):
		return bucketToday
	case !t.Before(startOfDay.AddDate(0, 0, -1)):
		return bucketYesterday
	case !t.Before(startOfDay.AddDate(0, 0, -6)):
		return bucketThisWeek
	default:
		return bucketOlder
	}
}
