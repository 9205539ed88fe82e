package bookings

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"homeservice-backend/models"
)

// OrphanAudit periodically scans for bookings whose service reference no
// longer resolves. Orphans are a warning condition, not an error: the
// bookings stay readable, the sweep only makes the dangling references
// visible in the logs.
type OrphanAudit struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewOrphanAudit(db *gorm.DB, log *zap.Logger) *OrphanAudit {
	return &OrphanAudit{db: db, log: log}
}

// StartScheduler runs the sweep every day at 9 AM.
func (a *OrphanAudit) StartScheduler() *cron.Cron {
	c := cron.New()
	c.AddFunc("0 9 * * *", func() {
		a.Sweep()
	})
	c.Start()
	a.log.Info("orphan audit scheduler started")
	return c
}

// Sweep logs every booking whose service id is missing from the catalog
// and returns how many it found.
func (a *OrphanAudit) Sweep() int {
	var orphans []models.Booking
	sub := a.db.Model(&models.Service{}).Select("id")
	if err := a.db.Where("service_id NOT IN (?)", sub).Find(&orphans).Error; err != nil {
		a.log.Error("orphan sweep failed", zap.Error(err))
		return 0
	}

	for _, b := range orphans {
		a.log.Warn("orphan booking: service reference does not resolve",
			zap.String("bookingId", b.ID.String()),
			zap.String("serviceId", b.ServiceID.String()))
	}
	if len(orphans) > 0 {
		a.log.Warn("orphan sweep finished", zap.Int("orphans", len(orphans)))
	} else {
		a.log.Info("orphan sweep finished, no orphans")
	}
	return len(orphans)
}
