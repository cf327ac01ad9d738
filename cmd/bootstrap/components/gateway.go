package components

import (
	"context"

	"slotbook/internal/infra/gateway"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewZoomGateway,
			fx.As(new(commands.ResourceProvider)),
		),
		fx.Annotate(
			NewCalendarGateway,
			fx.As(new(queries.BusySource)),
			fx.As(new(commands.CalendarWriter)),
		),
		fx.Annotate(
			NewNotifierGateway,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewZoomGateway(cfg config.Config) *gateway.ZoomProvider {
	return gateway.NewZoomProvider(cfg.Zoom)
}

func NewCalendarGateway(cfg config.Config) (*gateway.GoogleCalendar, error) {
	return gateway.NewGoogleCalendar(context.Background(), cfg.Google)
}

func NewNotifierGateway(cfg config.Config) (*gateway.GmailNotifier, error) {
	return gateway.NewGmailNotifier(context.Background(), cfg.Google)
}
