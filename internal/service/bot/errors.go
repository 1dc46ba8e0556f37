package bot

import "errors"

var (
	// ErrTransportFactory возвращается, если фабрика не смогла создать транспорт
	ErrTransportFactory = errors.New("service.bot: create transport")

	// ErrDeliveryFailed оборачивает ошибку отправки в строгом режиме
	ErrDeliveryFailed = errors.New("service.bot: delivery failed")
)
