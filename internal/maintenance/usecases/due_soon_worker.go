package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"predial-server/internal/infra/notification"
	"predial-server/internal/maintenance/domain"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

// dueSoonWindowDays matches the dashboard's imminent-within-7-days KPI.
const dueSoonWindowDays = 7

// DueSoonWorker emails each condominium a digest of overdue and imminent
// plans on a cron schedule.
type DueSoonWorker struct {
	plans        PlanRepository
	condominiums sharedusecases.CondominiumService
	notifier     notification.NotificationClient
	schedule     string
	cron         *cron.Cron
}

func NewDueSoonWorker(
	plans PlanRepository,
	condominiums sharedusecases.CondominiumService,
	notifier notification.NotificationClient,
	schedule string,
) *DueSoonWorker {
	return &DueSoonWorker{
		plans:        plans,
		condominiums: condominiums,
		notifier:     notifier,
		schedule:     schedule,
		cron:         cron.New(),
	}
}

func (w *DueSoonWorker) Run(ctx context.Context, done func()) {
	defer done()

	_, err := w.cron.AddFunc(w.schedule, func() {
		if err := w.scan(ctx); err != nil {
			slog.Error("due soon scan", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		slog.Error("scheduling due soon worker", slog.String("error", err.Error()))
		return
	}

	w.cron.Start()
	slog.Info("due soon worker started", slog.String("schedule", w.schedule))

	<-ctx.Done()
	w.cron.Stop()
}

func (w *DueSoonWorker) Shutdown() {
	w.cron.Stop()
}

func (w *DueSoonWorker) scan(ctx context.Context) error {
	plans, err := w.plans.FindDueWithin(ctx, dueSoonWindowDays)
	if err != nil {
		return fmt.Errorf("loading due plans: %w", err)
	}

	byCondominium := make(map[shareddomain.ID][]domain.MaintenancePlan)
	for _, plan := range plans {
		byCondominium[plan.CondominiumID] = append(byCondominium[plan.CondominiumID], plan)
	}

	now := time.Now()
	for condominiumID, duePlans := range byCondominium {
		condominium, err := w.condominiums.GetCondominium(ctx, condominiumID)
		if err != nil {
			slog.Warn("skipping condominium digest",
				slog.String("condominium_id", condominiumID.String()),
				slog.String("error", err.Error()))
			continue
		}

		if condominium.Email == "" || condominium.IsDeleted() {
			continue
		}

		err = w.notifier.SendEmail(ctx, notification.EmailRequest{
			To:      condominium.Email,
			Subject: fmt.Sprintf("Manutencoes pendentes - %s", condominium.Name),
			Body:    digestBody(duePlans, now),
		})
		if err != nil {
			slog.Error("sending due soon digest",
				slog.String("condominium_id", condominiumID.String()),
				slog.String("error", err.Error()))
			continue
		}

		slog.Info("due soon digest sent",
			slog.String("condominium_id", condominiumID.String()),
			slog.Int("plans", len(duePlans)))
	}

	return nil
}

func digestBody(plans []domain.MaintenancePlan, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("Planos de manutencao que exigem atencao:\n\n")

	for _, plan := range plans {
		days := domain.DaysUntilDue(plan.NextDueAt, now)
		switch {
		case days < 0:
			fmt.Fprintf(&sb, "- [ATRASADO %dd] %s (%s), vencido em %s\n",
				-days, plan.Title, plan.RequirementCode, plan.NextDueAt.Format("02/01/2006"))
		default:
			fmt.Fprintf(&sb, "- [VENCE EM %dd] %s (%s), vence em %s\n",
				days, plan.Title, plan.RequirementCode, plan.NextDueAt.Format("02/01/2006"))
		}
	}

	return sb.String()
}
