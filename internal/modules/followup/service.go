package followup

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"makeupstudio/internal/domain"
)

type AppointmentMaintainer interface {
	CompletePast(ctx context.Context, today string, nowMinute int) (int64, error)
	ListCompletedWithoutInvite(ctx context.Context, limit int) ([]domain.Appointment, error)
}

type InviteCreator interface {
	Create(ctx context.Context, inv *domain.ReviewInvite) error
}

// Service closes out appointments whose slot has passed and hands each
// completed one a review invite token.
type Service struct {
	appointments AppointmentMaintainer
	invites      InviteCreator
	now          func() time.Time
	cron         *cron.Cron
}

func NewService(appointments AppointmentMaintainer, invites InviteCreator) *Service {
	return &Service{
		appointments: appointments,
		invites:      invites,
		now:          time.Now,
	}
}

// StartScheduler runs the followup pass once immediately and then every hour.
func (s *Service) StartScheduler() error {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := s.Run(context.Background()); err != nil {
			log.Printf("followup run failed: %v", err)
		}
	}); err != nil {
		return err
	}

	if err := s.Run(context.Background()); err != nil {
		log.Printf("followup run failed: %v", err)
	}

	c.Start()
	s.cron = c
	log.Println("Followup scheduler started")
	return nil
}

func (s *Service) StopScheduler() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run completes past confirmed appointments, then issues one invite per
// completed appointment that has none yet.
func (s *Service) Run(ctx context.Context) error {
	now := s.now()
	today := now.Format("2006-01-02")
	nowMinute := now.Hour()*60 + now.Minute()

	completed, err := s.appointments.CompletePast(ctx, today, nowMinute)
	if err != nil {
		return err
	}
	if completed > 0 {
		log.Printf("followup: marked %d appointments completed", completed)
	}

	pending, err := s.appointments.ListCompletedWithoutInvite(ctx, 100)
	if err != nil {
		return err
	}

	for _, a := range pending {
		inv := &domain.ReviewInvite{
			AppointmentID: a.ID,
			Token:         uuid.NewString(),
		}
		if err := s.invites.Create(ctx, inv); err != nil {
			log.Printf("followup: invite for appointment %d failed: %v", a.ID, err)
			continue
		}
	}
	return nil
}
