package jobs

import (
	"context"
	"log/slog"

	"canteen/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MenuReader lists the catalog.
type MenuReader interface {
	Handle(ctx context.Context, query queries.GetMenuQuery) ([]queries.MenuItemView, error)
}

// LowStockJob warns about menu items whose stock fell to the threshold or
// below and exports every item's stock as a gauge.
type LowStockJob struct {
	menu      MenuReader
	threshold int
	schedule  string
	stock     metric.Int64Gauge
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewLowStockJob(menu MenuReader, threshold int, schedule string, logger *slog.Logger) (*LowStockJob, error) {
	stock, err := otel.Meter("canteen/jobs").Int64Gauge("canteen.menu.stock",
		metric.WithDescription("Portions left per menu item"))
	if err != nil {
		return nil, err
	}

	return &LowStockJob{
		menu:      menu,
		threshold: threshold,
		schedule:  schedule,
		stock:     stock,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_job"),
	}, nil
}

// Run checks the catalog once and returns the items at or below the threshold.
func (j *LowStockJob) Run(ctx context.Context) ([]queries.MenuItemView, error) {
	items, err := j.menu.Handle(ctx, queries.NewGetMenuQuery(""))
	if err != nil {
		return nil, err
	}

	var low []queries.MenuItemView
	for _, item := range items {
		j.stock.Record(ctx, int64(item.Stock), metric.WithAttributes(
			attribute.Int64("menu_item_id", int64(item.ID)),
			attribute.String("menu_item", item.Name),
		))
		if item.Stock <= j.threshold {
			low = append(low, item)
			j.logger.WarnContext(ctx, "Menu item running low", "item_id", int64(item.ID), "name", item.Name, "stock", item.Stock)
		}
	}
	return low, nil
}

func (j *LowStockJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Low stock job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock job started", "schedule", j.schedule, "threshold", j.threshold)
	return nil
}

func (j *LowStockJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock job stopped")
}
