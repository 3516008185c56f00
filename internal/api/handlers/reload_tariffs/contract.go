package reload_tariffs

import "context"

type TariffCatalog interface {
	Reload(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
